// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrServiceNotFound is returned when a repair service is not found.
var ErrServiceNotFound = errors.New("repair service not found")

// ServiceFilter narrows catalog listings. Zero values mean "no constraint".
type ServiceFilter struct {
	Category   string
	Gender     string
	ActiveOnly bool
}

// CatalogRepository defines the standard operations for the repair service catalog.
type CatalogRepository interface {
	// Create persists a new repair service.
	Create(ctx context.Context, service *entity.RepairService) error

	// FindByID retrieves a repair service by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RepairService, error)

	// FindByIDs retrieves several repair services at once, preserving no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.RepairService, error)

	// List returns repair services matching the filter.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.RepairService, error)

	// Update modifies an existing repair service.
	Update(ctx context.Context, service *entity.RepairService) error

	// Delete removes a repair service from the catalog.
	Delete(ctx context.Context, id uuid.UUID) error
}
