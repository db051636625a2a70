// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMediaNotFound is returned when a media item is not found.
var ErrMediaNotFound = errors.New("media item not found")

// MediaRepository defines the standard operations for site media persistence.
type MediaRepository interface {
	// Upsert persists a media item. An existing item holding the same
	// category and position is replaced.
	Upsert(ctx context.Context, item *entity.MediaItem) error

	// FindByID retrieves a media item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MediaItem, error)

	// FindByCategoryPosition retrieves the media item at a given slot.
	FindByCategoryPosition(ctx context.Context, category string, position int) (*entity.MediaItem, error)

	// ListByCategory returns all media items of a category ordered by position.
	ListByCategory(ctx context.Context, category string) ([]*entity.MediaItem, error)

	// Delete removes a media item.
	Delete(ctx context.Context, id uuid.UUID) error
}
