package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// OrderItemInput is one catalog service requested by the client.
type OrderItemInput struct {
	ServiceID uuid.UUID
	Quantity  int
}

// CreateOrderInput defines the data required to place an order.
// ClientID is nil for guest checkouts.
type CreateOrderInput struct {
	ClientID        *uuid.UUID
	Items           []OrderItemInput
	DeliveryOption  entity.DeliveryOption
	DeliveryAddress string
	ContactName     string
	ContactEmail    string
	ContactPhone    string
	Notes           string
	PhotoKeys       []string
}

// UpdateOrderStatusInput carries a status transition requested by the
// assigned cobbler or an administrator.
type UpdateOrderStatusInput struct {
	Status entity.OrderStatus
}

// Actor identifies who is performing an operation, for authorization checks.
type Actor struct {
	UserID  uuid.UUID
	Roles   entity.Roles
	IsAdmin bool
}

// --- Output DTOs ---

// CreateOrderOutput returns the stored order. AssignedDistanceKm is only
// meaningful when the order came out accepted.
type CreateOrderOutput struct {
	Order              *entity.Order
	AssignedDistanceKm float64
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// CreateOrder prices the items, persists the order and tries to assign
	// the nearest approved cobbler. The order is stored as accepted when the
	// assignment produced a cobbler and as pending otherwise.
	CreateOrder(ctx context.Context, input CreateOrderInput) (*CreateOrderOutput, error)

	GetOrder(ctx context.Context, actor Actor, id uuid.UUID) (*entity.Order, error)
	TrackOrder(ctx context.Context, reference string) (*entity.Order, error)
	ListMyOrders(ctx context.Context, actor Actor) ([]*entity.Order, error)
	ListAllOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, input UpdateOrderStatusInput) (*entity.Order, error)

	// TrackingQR renders the QR code pointing at the public tracking page.
	TrackingQR(ctx context.Context, reference string) ([]byte, error)

	// UploadPhoto stores a shoe photo and returns its storage key, for use in
	// a subsequent CreateOrder call.
	UploadPhoto(ctx context.Context, contentType string, content []byte) (string, error)
}
