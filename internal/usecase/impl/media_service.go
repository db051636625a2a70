package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/domain/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	mediaRepo   repository.MediaRepository
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	MediaRepo   repository.MediaRepository
	FileStorage service.FileStorage
	Logger      *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		mediaRepo:   params.MediaRepo,
		fileStorage: params.FileStorage,
		logger:      params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMedia returns the media items of a category ordered by position.
func (srv *mediaService) ListMedia(ctx context.Context, category string) ([]*entity.MediaItem, error) {
	items, err := srv.mediaRepo.ListByCategory(ctx, category)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list media items")
	}

	return items, nil
}

// GetMediaContent streams the blob behind a media item.
func (srv *mediaService) GetMediaContent(ctx context.Context, id uuid.UUID) (*usecase.MediaOutput, error) {
	item, err := srv.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return nil, domainerrors.ErrMediaNotFound.WrapMessage("no media item with this id")
		}

		return nil, errors.Wrap(err, "failed to find media item")
	}

	content, contentType, err := srv.fileStorage.Download(ctx, item.StorageKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load media blob")
	}

	return &usecase.MediaOutput{ContentType: contentType, Content: content}, nil
}

// UploadMedia stores an image and registers it at its category slot. A slot
// already in use is replaced, its previous blob deleted.
func (srv *mediaService) UploadMedia(ctx context.Context, input usecase.UploadMediaInput) (*entity.MediaItem, error) {
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrUnsupportedMediaType.WrapMessage("media items must be images")
	}
	if input.Category == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("category is required")
	}
	if input.Position < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("position cannot be negative")
	}

	// The blob uploaded before the row: a dangling blob is harmless, a row
	// without its blob is not.
	key := fmt.Sprintf("media/%s/%s", input.Category, uuid.NewString())
	if err := srv.fileStorage.Upload(ctx, key, input.ContentType, input.Content); err != nil {
		return nil, errors.Wrap(err, "failed to store media blob")
	}

	previousKey := ""
	if existing, err := srv.mediaRepo.FindByCategoryPosition(ctx, input.Category, input.Position); err == nil {
		previousKey = existing.StorageKey
	}

	item := &entity.MediaItem{
		Category:    input.Category,
		Title:       input.Title,
		Position:    input.Position,
		StorageKey:  key,
		ContentType: input.ContentType,
		IsActive:    true,
	}
	if err := srv.mediaRepo.Upsert(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to register media item")
	}

	if previousKey != "" && previousKey != key {
		if err := srv.fileStorage.Delete(ctx, previousKey); err != nil {
			srv.log(ctx).Warn("Failed to delete replaced media blob",
				slog.String("key", previousKey), slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Media item stored",
		slog.String("category", input.Category), slog.Int("position", input.Position))

	return item, nil
}

// DeleteMedia removes a media item and its blob.
func (srv *mediaService) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	item, err := srv.mediaRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMediaNotFound) {
			return domainerrors.ErrMediaNotFound.WrapMessage("no media item with this id")
		}

		return errors.Wrap(err, "failed to find media item")
	}

	if err := srv.mediaRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete media item")
	}

	if err := srv.fileStorage.Delete(ctx, item.StorageKey); err != nil {
		srv.log(ctx).Warn("Failed to delete media blob",
			slog.String("key", item.StorageKey), slog.Any("error", err))
	}

	return nil
}
