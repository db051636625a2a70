package usecase

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ServiceInput defines the data required to create or replace a catalog entry.
type ServiceInput struct {
	Name          entity.LocalizedText
	Description   entity.LocalizedText
	Price         float64
	EstimatedDays int
	Category      string
	Gender        string
	ImageURL      string
	IsActive      bool
}

// ListServicesInput narrows public catalog listings.
type ListServicesInput struct {
	Category string
	Gender   string
	// IncludeInactive is only honored for administrators.
	IncludeInactive bool
}

// CatalogUsecase defines the interface for repair catalog operations.
type CatalogUsecase interface {
	ListServices(ctx context.Context, input ListServicesInput) ([]*entity.RepairService, error)
	GetService(ctx context.Context, id uuid.UUID) (*entity.RepairService, error)

	// Admin catalog management.
	CreateService(ctx context.Context, input ServiceInput) (*entity.RepairService, error)
	UpdateService(ctx context.Context, id uuid.UUID, input ServiceInput) (*entity.RepairService, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}
