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

// catalogRepository implements the domain.CatalogRepository interface using GORM.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

// Create persists a new repair service.
func (repo *catalogRepository) Create(ctx context.Context, service *entity.RepairService) error {
	serviceM := fromRepairServiceDomain(service)

	if err := repo.db.WithContext(ctx).Create(serviceM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create repair service")
	}

	service.ID = serviceM.ID
	service.CreatedAt = serviceM.CreatedAt
	service.UpdatedAt = serviceM.UpdatedAt

	return nil
}

// FindByID retrieves a repair service by its unique ID.
func (repo *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RepairService, error) {
	var serviceM model.RepairServiceModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&serviceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find repair service by id")
	}

	return toRepairServiceDomain(&serviceM), nil
}

// FindByIDs retrieves several repair services at once.
func (repo *catalogRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RepairService, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var serviceMs []*model.RepairServiceModel
	err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&serviceMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find repair services by ids")
	}

	services := make([]*entity.RepairService, 0, len(serviceMs))
	for _, serviceM := range serviceMs {
		services = append(services, toRepairServiceDomain(serviceM))
	}

	return services, nil
}

// List returns repair services matching the filter, ordered by category then price.
func (repo *catalogRepository) List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.RepairService, error) {
	query := repo.db.WithContext(ctx).Order("category, price")

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Gender != "" {
		query = query.Where("gender IN ?", []string{filter.Gender, "mixte"})
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}

	var serviceMs []*model.RepairServiceModel
	if err := query.Find(&serviceMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list repair services")
	}

	services := make([]*entity.RepairService, 0, len(serviceMs))
	for _, serviceM := range serviceMs {
		services = append(services, toRepairServiceDomain(serviceM))
	}

	return services, nil
}

// Update modifies an existing repair service.
func (repo *catalogRepository) Update(ctx context.Context, service *entity.RepairService) error {
	serviceM := fromRepairServiceDomain(service)

	result := repo.db.WithContext(ctx).
		Model(&model.RepairServiceModel{}).
		Where("id = ?", service.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(serviceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update repair service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// Delete removes a repair service from the catalog.
func (repo *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RepairServiceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete repair service")
	}
	if result.RowsAffected == 0 {
		return repository.ErrServiceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRepairServiceDomain converts a GORM RepairServiceModel to a domain RepairService entity.
func toRepairServiceDomain(data *model.RepairServiceModel) *entity.RepairService {
	if data == nil {
		return nil
	}

	return &entity.RepairService{
		ID: data.ID,
		Name: entity.LocalizedText{
			FR: data.NameFR,
			EN: data.NameEN,
			DE: data.NameDE,
			IT: data.NameIT,
		},
		Description: entity.LocalizedText{
			FR: data.DescriptionFR,
			EN: data.DescriptionEN,
			DE: data.DescriptionDE,
			IT: data.DescriptionIT,
		},
		Price:         data.Price,
		EstimatedDays: data.EstimatedDays,
		Category:      data.Category,
		Gender:        data.Gender,
		ImageURL:      data.ImageURL,
		IsActive:      data.IsActive,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromRepairServiceDomain converts a domain RepairService entity to a GORM model for persistence.
func fromRepairServiceDomain(data *entity.RepairService) *model.RepairServiceModel {
	if data == nil {
		return nil
	}

	return &model.RepairServiceModel{
		ID:            data.ID,
		NameFR:        data.Name.FR,
		NameEN:        data.Name.EN,
		NameDE:        data.Name.DE,
		NameIT:        data.Name.IT,
		DescriptionFR: data.Description.FR,
		DescriptionEN: data.Description.EN,
		DescriptionDE: data.Description.DE,
		DescriptionIT: data.Description.IT,
		Price:         data.Price,
		EstimatedDays: data.EstimatedDays,
		Category:      data.Category,
		Gender:        data.Gender,
		ImageURL:      data.ImageURL,
		IsActive:      data.IsActive,
	}
}
