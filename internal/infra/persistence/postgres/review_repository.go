package postgres

import (
	"context"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the domain.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review. The unique index on order_id enforces one
// review per order.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateReview
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt

	return nil
}

// FindByOrderID retrieves the review attached to an order.
func (repo *reviewRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	err := repo.db.WithContext(ctx).Where("order_id = ?", orderID).First(&reviewM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by order id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByCobbler returns all reviews received by a cobbler, newest first.
func (repo *reviewRepository) ListByCobbler(ctx context.Context, cobblerID uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []*model.ReviewModel
	err := repo.db.WithContext(ctx).
		Where("cobbler_id = ?", cobblerID).
		Order("created_at DESC").
		Find(&reviewMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by cobbler")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for _, reviewM := range reviewMs {
		reviews = append(reviews, toReviewDomain(reviewM))
	}

	return reviews, nil
}

// AverageRatingByCobbler returns the mean rating and review count for a cobbler.
func (repo *reviewRepository) AverageRatingByCobbler(ctx context.Context, cobblerID uuid.UUID) (float64, int64, error) {
	var row struct {
		Average *float64
		Count   int64
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Select("avg(rating) as average, count(*) as count").
		Where("cobbler_id = ?", cobblerID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to compute cobbler rating")
	}
	if row.Average == nil {
		return 0, 0, nil
	}

	return *row.Average, row.Count, nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ClientID:  data.ClientID,
		CobblerID: data.CobblerID,
		Rating:    data.Rating,
		Comment:   data.Comment,
		CreatedAt: data.CreatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM model for persistence.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:        data.ID,
		OrderID:   data.OrderID,
		ClientID:  data.ClientID,
		CobblerID: data.CobblerID,
		Rating:    data.Rating,
		Comment:   data.Comment,
	}
}
