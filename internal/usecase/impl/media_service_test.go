package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	mockRepo "cordonnier/internal/mocks/repository"
	mockSvc "cordonnier/internal/mocks/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mediaServiceFixtures holds all test dependencies for media service tests.
type mediaServiceFixtures struct {
	service     usecase.MediaUsecase
	mediaRepo   *mockRepo.MockMediaRepository
	fileStorage *mockSvc.MockFileStorage
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	mediaRepo := mockRepo.NewMockMediaRepository(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewMediaService(MediaServiceParams{
		MediaRepo:   mediaRepo,
		FileStorage: fileStorage,
		Logger:      logger,
	})

	return mediaServiceFixtures{
		service:     service,
		mediaRepo:   mediaRepo,
		fileStorage: fileStorage,
	}
}

func TestMediaService_UploadMedia_EmptySlot(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := usecase.UploadMediaInput{
		Category:    "carousel",
		Title:       "Atelier",
		Position:    0,
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	}

	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/jpeg", input.Content).
		Return(nil)
	fx.mediaRepo.EXPECT().
		FindByCategoryPosition(ctx, "carousel", 0).
		Return(nil, repository.ErrMediaNotFound)
	fx.mediaRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.MediaItem")).
		Run(func(ctx context.Context, item *entity.MediaItem) {
			item.ID = uuid.New()
		}).
		Return(nil)

	item, err := fx.service.UploadMedia(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "carousel", item.Category)
	assert.True(t, item.IsActive)
	assert.Contains(t, item.StorageKey, "media/carousel/")
}

func TestMediaService_UploadMedia_ReplacesOccupiedSlot(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	input := usecase.UploadMediaInput{
		Category:    "carousel",
		Position:    1,
		ContentType: "image/png",
		Content:     strings.NewReader("png-bytes"),
	}
	previous := &entity.MediaItem{
		ID:         uuid.New(),
		Category:   "carousel",
		Position:   1,
		StorageKey: "media/carousel/old-blob",
	}

	fx.fileStorage.EXPECT().
		Upload(ctx, mock.AnythingOfType("string"), "image/png", input.Content).
		Return(nil)
	fx.mediaRepo.EXPECT().
		FindByCategoryPosition(ctx, "carousel", 1).
		Return(previous, nil)
	fx.mediaRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.MediaItem")).
		Return(nil)
	fx.fileStorage.EXPECT().Delete(ctx, "media/carousel/old-blob").Return(nil)

	item, err := fx.service.UploadMedia(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, previous.StorageKey, item.StorageKey)
}

func TestMediaService_UploadMedia_RejectsNonImage(t *testing.T) {
	fx := createTestMediaService(t)

	item, err := fx.service.UploadMedia(context.Background(), usecase.UploadMediaInput{
		Category:    "carousel",
		ContentType: "video/mp4",
		Content:     strings.NewReader("x"),
	})

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedMediaType))
}

func TestMediaService_UploadMedia_MissingCategory(t *testing.T) {
	fx := createTestMediaService(t)

	item, err := fx.service.UploadMedia(context.Background(), usecase.UploadMediaInput{
		ContentType: "image/jpeg",
		Content:     strings.NewReader("x"),
	})

	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestMediaService_GetMediaContent(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	item := &entity.MediaItem{
		ID:          uuid.New(),
		StorageKey:  "media/carousel/blob",
		ContentType: "image/jpeg",
	}
	body := io.NopCloser(strings.NewReader("jpeg-bytes"))

	fx.mediaRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.fileStorage.EXPECT().Download(ctx, "media/carousel/blob").Return(body, "image/jpeg", nil)

	output, err := fx.service.GetMediaContent(ctx, item.ID)

	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", output.ContentType)
}

func TestMediaService_GetMediaContent_NotFound(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.mediaRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrMediaNotFound)

	output, err := fx.service.GetMediaContent(ctx, id)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrMediaNotFound))
}

func TestMediaService_DeleteMedia_RemovesBlob(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	item := &entity.MediaItem{
		ID:         uuid.New(),
		StorageKey: "media/carousel/blob",
	}

	fx.mediaRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.mediaRepo.EXPECT().Delete(ctx, item.ID).Return(nil)
	fx.fileStorage.EXPECT().Delete(ctx, "media/carousel/blob").Return(nil)

	err := fx.service.DeleteMedia(ctx, item.ID)

	assert.NoError(t, err)
}

func TestMediaService_DeleteMedia_BlobFailureDoesNotSurface(t *testing.T) {
	fx := createTestMediaService(t)

	ctx := context.Background()
	item := &entity.MediaItem{
		ID:         uuid.New(),
		StorageKey: "media/carousel/blob",
	}

	fx.mediaRepo.EXPECT().FindByID(ctx, item.ID).Return(item, nil)
	fx.mediaRepo.EXPECT().Delete(ctx, item.ID).Return(nil)
	fx.fileStorage.EXPECT().Delete(ctx, "media/carousel/blob").Return(errors.New("bucket unreachable"))

	err := fx.service.DeleteMedia(ctx, item.ID)

	assert.NoError(t, err, "the row is gone, a stray blob is tolerable")
}
