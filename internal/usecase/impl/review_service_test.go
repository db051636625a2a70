package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	mockRepo "cordonnier/internal/mocks/repository"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewReviewService(ReviewServiceParams{
		TxManager:  txManager,
		ReviewRepo: reviewRepo,
		Logger:     logger,
	})

	return reviewServiceFixtures{
		service:    service,
		txManager:  txManager,
		reviewRepo: reviewRepo,
	}
}

func expectReviewTx(t *testing.T, fx reviewServiceFixtures, ctx context.Context, order *entity.Order, createErr error, txErr error) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)

			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			if txErr == nil || createErr != nil {
				mockReviewRepo.EXPECT().
					Create(ctx, mock.AnythingOfType("*entity.Review")).
					Run(func(ctx context.Context, review *entity.Review) {
						if createErr == nil {
							review.ID = uuid.New()
						}
					}).
					Return(createErr)
			}

			_ = fn(mockFactory)
		}).
		Return(txErr)
}

func TestReviewService_CreateReview_Success(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clientID := uuid.New()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		ClientID:  &clientID,
		CobblerID: &cobblerID,
		Status:    entity.OrderStatusDelivered,
	}

	expectReviewTx(t, fx, ctx, order, nil, nil)

	actor := usecase.Actor{UserID: clientID, Roles: entity.Roles{entity.RoleClient}}
	review, err := fx.service.CreateReview(ctx, actor, usecase.CreateReviewInput{
		OrderID: order.ID,
		Rating:  5,
		Comment: "Talons comme neufs.",
	})

	require.NoError(t, err)
	assert.Equal(t, cobblerID, review.CobblerID)
	assert.Equal(t, clientID, review.ClientID)
	assert.Equal(t, 5, review.Rating)
}

func TestReviewService_CreateReview_RatingOutOfRange(t *testing.T) {
	fx := createTestReviewService(t)

	actor := usecase.Actor{UserID: uuid.New()}
	review, err := fx.service.CreateReview(context.Background(), actor, usecase.CreateReviewInput{
		OrderID: uuid.New(),
		Rating:  6,
	})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRating))
}

func TestReviewService_CreateReview_NotTheClient(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clientID := uuid.New()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		ClientID:  &clientID,
		CobblerID: &cobblerID,
		Status:    entity.OrderStatusDelivered,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrReviewNotAllowed, "only the order's client may review it"))

	actor := usecase.Actor{UserID: uuid.New()}
	review, err := fx.service.CreateReview(ctx, actor, usecase.CreateReviewInput{OrderID: order.ID, Rating: 4})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotAllowed))
}

func TestReviewService_CreateReview_OrderNotDelivered(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clientID := uuid.New()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		ClientID:  &clientID,
		CobblerID: &cobblerID,
		Status:    entity.OrderStatusInProgress,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)
			mockReviewRepo := mockRepo.NewMockReviewRepository(t)

			mockFactory.EXPECT().OrderRepo().Return(mockOrderRepo)
			mockFactory.EXPECT().ReviewRepo().Return(mockReviewRepo)
			mockOrderRepo.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrReviewNotAllowed, "only delivered orders can be reviewed"))

	actor := usecase.Actor{UserID: clientID}
	review, err := fx.service.CreateReview(ctx, actor, usecase.CreateReviewInput{OrderID: order.ID, Rating: 4})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotAllowed))
}

func TestReviewService_CreateReview_Duplicate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	clientID := uuid.New()
	cobblerID := uuid.New()
	order := &entity.Order{
		ID:        uuid.New(),
		ClientID:  &clientID,
		CobblerID: &cobblerID,
		Status:    entity.OrderStatusDelivered,
	}

	expectReviewTx(t, fx, ctx, order, repository.ErrDuplicateReview,
		errors.Wrap(domainerrors.ErrReviewAlreadyExists, "order already carries a review"))

	actor := usecase.Actor{UserID: clientID}
	review, err := fx.service.CreateReview(ctx, actor, usecase.CreateReviewInput{OrderID: order.ID, Rating: 4})

	assert.Nil(t, review)
	assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))
}

func TestReviewService_GetCobblerRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	cobblerID := uuid.New()

	fx.reviewRepo.EXPECT().AverageRatingByCobbler(ctx, cobblerID).Return(4.5, int64(12), nil)

	rating, err := fx.service.GetCobblerRating(ctx, cobblerID)

	require.NoError(t, err)
	assert.InDelta(t, 4.5, rating.Average, 0.001)
	assert.Equal(t, int64(12), rating.ReviewCount)
}

func TestReviewService_GetCobblerRating_NoReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	cobblerID := uuid.New()

	fx.reviewRepo.EXPECT().AverageRatingByCobbler(ctx, cobblerID).Return(0.0, int64(0), nil)

	rating, err := fx.service.GetCobblerRating(ctx, cobblerID)

	require.NoError(t, err)
	assert.Zero(t, rating.Average)
	assert.Zero(t, rating.ReviewCount)
}

func TestReviewService_ListCobblerReviews(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	cobblerID := uuid.New()

	fx.reviewRepo.EXPECT().
		ListByCobbler(ctx, cobblerID).
		Return([]*entity.Review{{ID: uuid.New(), CobblerID: cobblerID, Rating: 5}}, nil)

	reviews, err := fx.service.ListCobblerReviews(ctx, cobblerID)

	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}
