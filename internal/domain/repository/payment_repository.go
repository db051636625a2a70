// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTransactionNotFound is returned when a payment transaction is not found.
var ErrTransactionNotFound = errors.New("payment transaction not found")

// PaymentRepository defines the standard operations for payment transaction persistence.
type PaymentRepository interface {
	// Create persists a new payment transaction.
	Create(ctx context.Context, tx *entity.PaymentTransaction) error

	// FindByID retrieves a payment transaction by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PaymentTransaction, error)

	// FindBySessionID retrieves a payment transaction by its checkout session ID.
	FindBySessionID(ctx context.Context, sessionID string) (*entity.PaymentTransaction, error)

	// FindByOrderID retrieves the latest payment transaction attached to an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.PaymentTransaction, error)

	// UpdateStatus transitions a payment transaction to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.TransactionStatus) error
}
