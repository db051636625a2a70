// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when an order already carries a review.
	ErrDuplicateReview = errors.New("review already exists for this order")
)

// ReviewRepository defines the standard operations for review persistence.
type ReviewRepository interface {
	// Create persists a new review. At most one review may exist per order.
	Create(ctx context.Context, review *entity.Review) error

	// FindByOrderID retrieves the review attached to an order.
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error)

	// ListByCobbler returns all reviews received by a cobbler, newest first.
	ListByCobbler(ctx context.Context, cobblerID uuid.UUID) ([]*entity.Review, error)

	// AverageRatingByCobbler returns the mean rating and review count for a cobbler.
	AverageRatingByCobbler(ctx context.Context, cobblerID uuid.UUID) (float64, int64, error)
}
