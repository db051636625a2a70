// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MediaItem is an image of the marketing media library (carousel, banners).
// Position is unique within a category; uploading to an occupied position
// replaces the previous item.
type MediaItem struct {
	ID          uuid.UUID
	Category    string // e.g. "carousel", "banner".
	Title       string
	Position    int    // Display order within the category.
	StorageKey  string // Blob storage key of the image payload.
	ContentType string // Image MIME type, validated at upload.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
