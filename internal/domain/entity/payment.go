// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus tracks the state of one payment attempt.
type TransactionStatus string

const (
	// TransactionPending is set when the checkout session is created.
	TransactionPending TransactionStatus = "pending"
	// TransactionPaid is set once the webhook confirms the charge.
	TransactionPaid TransactionStatus = "paid"
	// TransactionFailed is set when the session expires or the charge fails.
	TransactionFailed TransactionStatus = "failed"
)

// PaymentTransaction records one Stripe checkout session for an order.
// The commission split (platform fee + transfer to the cobbler's connected
// account) is captured at session-creation time from the settings document.
type PaymentTransaction struct {
	ID              uuid.UUID
	OrderID         uuid.UUID
	StripeSessionID string  // Checkout session identifier at Stripe.
	Amount          float64 // Total charged to the client, in Currency.
	ApplicationFee  float64 // Platform commission retained from the charge.
	Currency        string
	Status          TransactionStatus
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
