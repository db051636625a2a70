package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to review a delivered order.
type CreateReviewInput struct {
	OrderID uuid.UUID
	Rating  int
	Comment string
}

// CobblerRating aggregates a cobbler's received reviews.
type CobblerRating struct {
	CobblerID   uuid.UUID
	Average     float64
	ReviewCount int64
}

// ReviewUsecase defines the interface for review operations.
type ReviewUsecase interface {
	// CreateReview stores a review. Only the client of a delivered order may
	// review it, and only once.
	CreateReview(ctx context.Context, actor Actor, input CreateReviewInput) (*entity.Review, error)

	ListCobblerReviews(ctx context.Context, cobblerID uuid.UUID) ([]*entity.Review, error)
	GetCobblerRating(ctx context.Context, cobblerID uuid.UUID) (*CobblerRating, error)
}
