package impl

import (
	"context"
	"log/slog"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	reviewRepo repository.ReviewRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	ReviewRepo repository.ReviewRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:  params.TxManager,
		reviewRepo: params.ReviewRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores a review after checking the business rules: only the
// client of a delivered order may review it, once, with a rating in 1..5.
func (srv *reviewService) CreateReview(ctx context.Context, actor usecase.Actor, input usecase.CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, domainerrors.ErrInvalidRating.WrapMessage("rating must be between 1 and 5")
	}

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.OrderRepo()
		reviewRepo := repoFactory.ReviewRepo()

		order, err := orderRepo.FindByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound.WrapMessage("no order with this id")
			}

			return errors.Wrap(err, "failed to find order")
		}

		if order.ClientID == nil || *order.ClientID != actor.UserID {
			return domainerrors.ErrReviewNotAllowed.WrapMessage("only the order's client may review it")
		}
		if order.Status != entity.OrderStatusDelivered {
			return domainerrors.ErrReviewNotAllowed.WrapMessage("only delivered orders can be reviewed")
		}
		if order.CobblerID == nil {
			return domainerrors.ErrReviewNotAllowed.WrapMessage("order has no cobbler to rate")
		}

		review = &entity.Review{
			OrderID:   order.ID,
			ClientID:  actor.UserID,
			CobblerID: *order.CobblerID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		if err := reviewRepo.Create(ctx, review); err != nil {
			if errors.Is(err, repository.ErrDuplicateReview) {
				return domainerrors.ErrReviewAlreadyExists.WrapMessage("order already carries a review")
			}

			return errors.Wrap(err, "failed to create review")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute review transaction")
	}

	srv.log(ctx).Info("Review created",
		slog.Any("orderID", review.OrderID), slog.Int("rating", review.Rating))

	return review, nil
}

// ListCobblerReviews returns a cobbler's received reviews, newest first.
func (srv *reviewService) ListCobblerReviews(ctx context.Context, cobblerID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByCobbler(ctx, cobblerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cobbler reviews")
	}

	return reviews, nil
}

// GetCobblerRating aggregates a cobbler's reviews into an average.
func (srv *reviewService) GetCobblerRating(ctx context.Context, cobblerID uuid.UUID) (*usecase.CobblerRating, error) {
	average, count, err := srv.reviewRepo.AverageRatingByCobbler(ctx, cobblerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute cobbler rating")
	}

	return &usecase.CobblerRating{
		CobblerID:   cobblerID,
		Average:     average,
		ReviewCount: count,
	}, nil
}
