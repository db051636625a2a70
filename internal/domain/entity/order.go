// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents where an order sits in its repair lifecycle.
type OrderStatus string

const (
	// OrderStatusPending is the initial status when no cobbler could be
	// assigned at creation time.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusAccepted is the initial status when nearest-partner
	// assignment produced a cobbler at creation time, or the status after a
	// cobbler explicitly claims a pending order.
	OrderStatusAccepted OrderStatus = "accepted"
	// OrderStatusInProgress means the cobbler started the repair.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusShipped means the repaired shoes are on their way back.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered means the client received the shoes.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled terminates the order.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusInProgress,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// PaymentState tracks whether an order has been paid.
type PaymentState string

const (
	// PaymentStateUnpaid is the initial payment state.
	PaymentStateUnpaid PaymentState = "unpaid"
	// PaymentStatePaid is set once the payment webhook confirms the charge.
	PaymentStatePaid PaymentState = "paid"
)

// DeliveryOption selects the shipping tier; prices come from Settings.
type DeliveryOption string

const (
	// DeliveryStandard is the default shipping tier.
	DeliveryStandard DeliveryOption = "standard"
	// DeliveryExpress is the faster, pricier shipping tier.
	DeliveryExpress DeliveryOption = "express"
)

// IsValid checks if the DeliveryOption is a valid value.
func (o DeliveryOption) IsValid() bool {
	return o == DeliveryStandard || o == DeliveryExpress
}

// Order is a repair order placed by a guest or an authenticated client.
// CobblerID and the initial status are written by nearest-partner
// assignment: status is accepted iff a cobbler was found at creation.
type Order struct {
	ID              uuid.UUID      // The Global Unique Identifier for the order.
	Reference       string         // Human-facing reference, format REF-XXXXXXXX.
	ClientID        *uuid.UUID     // Owning client account; nil for guest orders.
	CobblerID       *uuid.UUID     // Assigned cobbler; nil while unassigned.
	Status          OrderStatus    // Current lifecycle status.
	PaymentState    PaymentState   // Whether the order has been paid.
	Items           []OrderItem    // Cart lines, at least one.
	DeliveryOption  DeliveryOption // Shipping tier chosen at checkout.
	DeliveryAddress string         // Free-text delivery address; input to geocoding.
	ContactName     string         // Contact details captured at checkout.
	ContactEmail    string
	ContactPhone    string
	Notes           string    // Free-text customer notes for the cobbler.
	PhotoKeys       []string  // Blob storage keys of the shoe photos.
	Subtotal        float64   // Sum of item totals, in Currency.
	DeliveryFee     float64   // Delivery price from settings at creation time.
	Total           float64   // Subtotal + DeliveryFee.
	Currency        string    // ISO currency code, e.g. "CHF".
	CreatedAt       time.Time // Timestamp of when this order was placed.
	UpdatedAt       time.Time // Timestamp of the last modification.
}

// OrderItem is one cart line of an order.
type OrderItem struct {
	ID          uuid.UUID // The unique ID for this line.
	OrderID     uuid.UUID // Owning order.
	ServiceID   uuid.UUID // Catalog service being ordered.
	ServiceName string    // Denormalized name at order time.
	Quantity    int       // Number of pairs, at least one.
	UnitPrice   float64   // Catalog price at order time.
	Total       float64   // UnitPrice * Quantity.
}
