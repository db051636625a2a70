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
	"gorm.io/gorm/clause"
)

// mediaRepository implements the domain.MediaRepository interface using GORM.
type mediaRepository struct {
	db *gorm.DB
}

// NewMediaRepository is the constructor for mediaRepository.
func NewMediaRepository(db *gorm.DB) repository.MediaRepository {
	return &mediaRepository{db: db}
}

// Upsert persists a media item, replacing any existing item at the same
// category and position.
func (repo *mediaRepository) Upsert(ctx context.Context, item *entity.MediaItem) error {
	itemM := fromMediaItemDomain(item)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "category"}, {Name: "position"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "storage_key", "content_type", "is_active", "updated_at",
			}),
		}).
		Create(itemM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert media item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// FindByID retrieves a media item by its unique ID.
func (repo *mediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaItem, error) {
	var itemM model.MediaItemModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media item by id")
	}

	return toMediaItemDomain(&itemM), nil
}

// FindByCategoryPosition retrieves the media item at a given slot.
func (repo *mediaRepository) FindByCategoryPosition(ctx context.Context, category string, position int) (*entity.MediaItem, error) {
	var itemM model.MediaItemModel
	err := repo.db.WithContext(ctx).
		Where("category = ? AND position = ?", category, position).
		First(&itemM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMediaNotFound
		}

		return nil, errors.Wrap(err, "failed to find media item by slot")
	}

	return toMediaItemDomain(&itemM), nil
}

// ListByCategory returns all media items of a category ordered by position.
func (repo *mediaRepository) ListByCategory(ctx context.Context, category string) ([]*entity.MediaItem, error) {
	var itemMs []*model.MediaItemModel
	err := repo.db.WithContext(ctx).
		Where("category = ?", category).
		Order("position").
		Find(&itemMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media items")
	}

	items := make([]*entity.MediaItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toMediaItemDomain(itemM))
	}

	return items, nil
}

// Delete removes a media item.
func (repo *mediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MediaItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete media item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMediaNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMediaItemDomain converts a GORM MediaItemModel to a domain MediaItem entity.
func toMediaItemDomain(data *model.MediaItemModel) *entity.MediaItem {
	if data == nil {
		return nil
	}

	return &entity.MediaItem{
		ID:          data.ID,
		Category:    data.Category,
		Title:       data.Title,
		Position:    data.Position,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMediaItemDomain converts a domain MediaItem entity to a GORM model for persistence.
func fromMediaItemDomain(data *entity.MediaItem) *model.MediaItemModel {
	if data == nil {
		return nil
	}

	return &model.MediaItemModel{
		ID:          data.ID,
		Category:    data.Category,
		Title:       data.Title,
		Position:    data.Position,
		StorageKey:  data.StorageKey,
		ContentType: data.ContentType,
		IsActive:    data.IsActive,
	}
}
