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

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListServices returns catalog entries matching the filter. Inactive entries
// only show up when explicitly requested, which the handlers gate to admins.
func (srv *catalogService) ListServices(ctx context.Context, input usecase.ListServicesInput) ([]*entity.RepairService, error) {
	filter := repository.ServiceFilter{
		Category:   input.Category,
		Gender:     input.Gender,
		ActiveOnly: !input.IncludeInactive,
	}

	services, err := srv.catalogRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog services")
	}

	return services, nil
}

// GetService loads one catalog entry.
func (srv *catalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.RepairService, error) {
	svc, err := srv.catalogRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound.WrapMessage("no catalog service with this id")
		}

		return nil, errors.Wrap(err, "failed to find catalog service")
	}

	return svc, nil
}

// CreateService stores a new catalog entry.
func (srv *catalogService) CreateService(ctx context.Context, input usecase.ServiceInput) (*entity.RepairService, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	svc := serviceFromInput(input)
	if err := srv.catalogRepo.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create catalog service")
	}

	srv.log(ctx).Info("Catalog service created",
		slog.Any("serviceID", svc.ID), slog.String("name", svc.Name.FR))

	return svc, nil
}

// UpdateService replaces an existing catalog entry with the input.
func (srv *catalogService) UpdateService(ctx context.Context, id uuid.UUID, input usecase.ServiceInput) (*entity.RepairService, error) {
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	svc := serviceFromInput(input)
	svc.ID = id

	if err := srv.catalogRepo.Update(ctx, svc); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound.WrapMessage("no catalog service with this id")
		}

		return nil, errors.Wrap(err, "failed to update catalog service")
	}

	return svc, nil
}

// DeleteService removes a catalog entry.
func (srv *catalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := srv.catalogRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return domainerrors.ErrServiceNotFound.WrapMessage("no catalog service with this id")
		}

		return errors.Wrap(err, "failed to delete catalog service")
	}

	srv.log(ctx).Info("Catalog service deleted", slog.Any("serviceID", id))

	return nil
}

func validateServiceInput(input usecase.ServiceInput) error {
	if input.Name.FR == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("the French name is required")
	}
	if input.Price < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("price cannot be negative")
	}

	return nil
}

func serviceFromInput(input usecase.ServiceInput) *entity.RepairService {
	return &entity.RepairService{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		EstimatedDays: input.EstimatedDays,
		Category:      input.Category,
		Gender:        input.Gender,
		ImageURL:      input.ImageURL,
		IsActive:      input.IsActive,
	}
}
