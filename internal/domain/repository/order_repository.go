// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderFilter narrows order listings. Zero values mean "no constraint".
type OrderFilter struct {
	ClientID  *uuid.UUID
	CobblerID *uuid.UUID
	Status    *entity.OrderStatus
	Since     *time.Time
	Until     *time.Time
}

// CobblerOrderStats aggregates per-cobbler order figures for reporting.
type CobblerOrderStats struct {
	CobblerID      uuid.UUID
	CompletedCount int64
	Revenue        float64
}

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// Create persists a new order together with its line items.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID, including line items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByReference retrieves an order by its public reference number.
	FindByReference(ctx context.Context, reference string) (*entity.Order, error)

	// List returns orders matching the filter, newest first.
	List(ctx context.Context, filter OrderFilter) ([]*entity.Order, error)

	// UpdateStatus transitions an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdatePaymentState records the payment state of an order.
	UpdatePaymentState(ctx context.Context, id uuid.UUID, state entity.PaymentState) error

	// AssignCobbler sets the cobbler responsible for an order.
	AssignCobbler(ctx context.Context, id uuid.UUID, cobblerID uuid.UUID) error

	// CountByStatus returns the number of orders per status.
	CountByStatus(ctx context.Context) (map[entity.OrderStatus]int64, error)

	// SumRevenue totals the amount of delivered paid orders in the given window.
	SumRevenue(ctx context.Context, since, until time.Time) (float64, error)

	// StatsByCobbler aggregates completed order counts and revenue per cobbler
	// in the given window.
	StatsByCobbler(ctx context.Context, since, until time.Time) ([]*CobblerOrderStats, error)
}
