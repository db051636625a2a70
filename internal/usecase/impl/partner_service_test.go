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
	"cordonnier/internal/domain/service"
	mockRepo "cordonnier/internal/mocks/repository"
	mockSvc "cordonnier/internal/mocks/service"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	service     usecase.PartnerUsecase
	txManager   *mockRepo.MockTransactionManager
	userRepo    *mockRepo.MockUserRepository
	geocoder    *mockSvc.MockGeocoder
	fileStorage *mockSvc.MockFileStorage
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	geocoder := mockSvc.NewMockGeocoder(t)
	fileStorage := mockSvc.NewMockFileStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPartnerService(PartnerServiceParams{
		TxManager:   txManager,
		UserRepo:    userRepo,
		Geocoder:    geocoder,
		FileStorage: fileStorage,
		Logger:      logger,
	})

	return partnerServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		geocoder:    geocoder,
		fileStorage: fileStorage,
	}
}

func testCobblerUser(status entity.PartnerStatus) *entity.User {
	userID := uuid.New()

	return &entity.User{
		ID:      userID,
		Name:    "Test Cobbler",
		Email:   "cobbler@example.com",
		Address: "5 Avenue de la Harpe, 1007 Lausanne",
		CobblerProfile: &entity.CobblerProfile{
			UserID:      userID,
			CompanyName: "Cordonnerie de la Harpe",
			Status:      status,
		},
	}
}

func TestPartnerService_UpdateWorkshop_AddressChangeGeocodesStrict(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusApproved)
	newAddress := "Rue du Marché 4, 1204 Genève"
	coord := &entity.Coordinate{Latitude: 46.2044, Longitude: 6.1432}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			fx.geocoder.EXPECT().Geocode(ctx, newAddress, true).Return(coord, nil)

			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	updated, err := fx.service.UpdateWorkshop(ctx, user.ID, usecase.UpdateWorkshopInput{Address: &newAddress})

	require.NoError(t, err)
	assert.Equal(t, newAddress, updated.Address)
	assert.Equal(t, coord, updated.Coordinate)
}

func TestPartnerService_UpdateWorkshop_UnresolvableAddressRejected(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusApproved)
	newAddress := "nowhere at all"

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			fx.geocoder.EXPECT().Geocode(ctx, newAddress, true).Return(nil, service.ErrNoMatch)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrAddressNotGeocodable, "workshop address did not geocode"))

	updated, err := fx.service.UpdateWorkshop(ctx, user.ID, usecase.UpdateWorkshopInput{Address: &newAddress})

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressNotGeocodable))
}

func TestPartnerService_UploadDocument_RecordsKey(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)
	input := usecase.UploadDocumentInput{
		Kind:        "id_card_front",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	}

	fx.fileStorage.EXPECT().
		Upload(ctx, "partners/"+user.ID.String()+"/id_card_front", "image/jpeg", input.Content).
		Return(nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateCobblerProfile(ctx, user.CobblerProfile).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.UploadDocument(ctx, user.ID, input)

	require.NoError(t, err)
	assert.Equal(t, "partners/"+user.ID.String()+"/id_card_front", user.CobblerProfile.IDCardFrontKey)
}

func TestPartnerService_UploadDocument_UnknownKind(t *testing.T) {
	fx := createTestPartnerService(t)

	err := fx.service.UploadDocument(context.Background(), uuid.New(), usecase.UploadDocumentInput{
		Kind:        "passport_selfie",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("x"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartnerService_ApproveCobbler_GeocodesMissingCoordinate(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)
	coord := &entity.Coordinate{Latitude: 46.5197, Longitude: 6.6323}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			fx.geocoder.EXPECT().Geocode(ctx, user.Address, false).Return(coord, nil)

			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ApproveCobbler(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.PartnerStatusApproved, user.CobblerProfile.Status)
	assert.NotNil(t, user.CobblerProfile.ApprovedAt)
	assert.Equal(t, coord, user.Coordinate)
}

func TestPartnerService_ApproveCobbler_GeocodeMissDoesNotBlock(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			fx.geocoder.EXPECT().Geocode(ctx, user.Address, false).Return(nil, service.ErrNoMatch)

			mockUserRepo.EXPECT().Update(ctx, user).Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.ApproveCobbler(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, entity.PartnerStatusApproved, user.CobblerProfile.Status)
	assert.Nil(t, user.Coordinate, "cobbler stays out of assignment until the address resolves")
}

func TestPartnerService_ApproveCobbler_OnlyPending(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusApproved)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

			_ = fn(mockFactory)
		}).
		Return(errors.Wrap(domainerrors.ErrCobblerNotPending, "only pending applications can be approved"))

	err := fx.service.ApproveCobbler(ctx, user.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrCobblerNotPending))
}

func TestPartnerService_RejectCobbler_RecordsReason(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateCobblerProfile(ctx, user.CobblerProfile).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.RejectCobbler(ctx, user.ID, usecase.RejectCobblerInput{Reason: "missing registry extract"})

	require.NoError(t, err)
	assert.Equal(t, entity.PartnerStatusRejected, user.CobblerProfile.Status)
	assert.Equal(t, "missing registry extract", user.CobblerProfile.RejectionReason)
	assert.NotNil(t, user.CobblerProfile.RejectedAt)
}

func TestPartnerService_GetCobbler_NotACobbler(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)

	user, err := fx.service.GetCobbler(ctx, userID)

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrCobblerNotFound))
}

func TestPartnerService_DownloadDocument_NeverUploaded(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.DownloadDocument(ctx, user.ID, "registry_doc")

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDocumentNotFound))
}

func TestPartnerService_ListPendingCobblers(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	pending := []*entity.User{testCobblerUser(entity.PartnerStatusPending)}

	fx.userRepo.EXPECT().
		ListCobblersByStatus(ctx, entity.PartnerStatusPending).
		Return(pending, nil)

	users, err := fx.service.ListPendingCobblers(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestPartnerService_ListCobblers_UnknownStatus(t *testing.T) {
	fx := createTestPartnerService(t)

	users, err := fx.service.ListCobblers(context.Background(), entity.PartnerStatus("vanished"))

	assert.Nil(t, users)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPartnerService_SignTerms(t *testing.T) {
	fx := createTestPartnerService(t)

	ctx := context.Background()
	user := testCobblerUser(entity.PartnerStatusPending)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
			mockUserRepo.EXPECT().
				UpdateCobblerProfile(ctx, user.CobblerProfile).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	err := fx.service.SignTerms(ctx, user.ID, "203.0.113.7")

	require.NoError(t, err)
	require.NotNil(t, user.CobblerProfile.TermsSignedAt)
	assert.Equal(t, "203.0.113.7", user.CobblerProfile.TermsSignedIP)
}
