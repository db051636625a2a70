package usecase

import (
	"context"
	"io"

	"cordonnier/internal/domain/entity"

	"github.com/google/uuid"
)

// UploadMediaInput stores an image in a category slot. Uploading to an
// occupied slot replaces the previous item and its blob.
type UploadMediaInput struct {
	Category    string
	Title       string
	Position    int
	ContentType string
	Content     io.Reader
}

// MediaOutput streams a stored media blob.
type MediaOutput struct {
	ContentType string
	Content     io.ReadCloser
}

// MediaUsecase defines the interface for site media management.
type MediaUsecase interface {
	ListMedia(ctx context.Context, category string) ([]*entity.MediaItem, error)
	GetMediaContent(ctx context.Context, id uuid.UUID) (*MediaOutput, error)

	// Admin media management.
	UploadMedia(ctx context.Context, input UploadMediaInput) (*entity.MediaItem, error)
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}
