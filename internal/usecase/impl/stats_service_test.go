package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	mockRepo "cordonnier/internal/mocks/repository"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// statsServiceFixtures holds all test dependencies for stats service tests.
type statsServiceFixtures struct {
	service      usecase.StatsUsecase
	userRepo     *mockRepo.MockUserRepository
	orderRepo    *mockRepo.MockOrderRepository
	settingsRepo *mockRepo.MockSettingsRepository
}

func createTestStatsService(t *testing.T) statsServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewStatsService(StatsServiceParams{
		UserRepo:     userRepo,
		OrderRepo:    orderRepo,
		SettingsRepo: settingsRepo,
		Logger:       logger,
	})

	return statsServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
	}
}

func TestStatsService_Dashboard(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	byStatus := map[entity.OrderStatus]int64{
		entity.OrderStatusPending:   3,
		entity.OrderStatusDelivered: 12,
	}

	fx.userRepo.EXPECT().CountClients(ctx).Return(40, nil)
	fx.userRepo.EXPECT().CountCobblersByStatus(ctx, entity.PartnerStatusApproved).Return(7, nil)
	fx.userRepo.EXPECT().CountCobblersByStatus(ctx, entity.PartnerStatusPending).Return(2, nil)
	fx.orderRepo.EXPECT().CountByStatus(ctx).Return(byStatus, nil)
	fx.orderRepo.EXPECT().
		SumRevenue(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(ctx context.Context, since time.Time, until time.Time) {
			assert.InDelta(t, 30*24.0, until.Sub(since).Hours(), 1)
		}).
		Return(1840.50, nil)

	stats, err := fx.service.Dashboard(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.ClientCount)
	assert.Equal(t, int64(7), stats.ApprovedCobbler)
	assert.Equal(t, int64(2), stats.PendingCobbler)
	assert.Equal(t, byStatus, stats.OrdersByStatus)
	assert.Equal(t, 1840.50, stats.Revenue30Days)
}

func TestStatsService_Dashboard_RepoError(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().CountClients(ctx).Return(0, errors.New("connection reset"))

	stats, err := fx.service.Dashboard(ctx)

	assert.Nil(t, stats)
	assert.Error(t, err)
}

func TestStatsService_CobblerReport_SplitsCommission(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.orderRepo.EXPECT().StatsByCobbler(ctx, since, until).Return([]*repository.CobblerOrderStats{
		{CobblerID: cobblerID, CompletedCount: 4, Revenue: 200},
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(&entity.User{
		ID:             cobblerID,
		CobblerProfile: &entity.CobblerProfile{CompanyName: "Cordonnerie du Flon"},
	}, nil)

	rows, err := fx.service.CobblerReport(ctx, usecase.ReportInput{Since: since, Until: until})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Cordonnerie du Flon", rows[0].CompanyName)
	assert.Equal(t, int64(4), rows[0].CompletedCount)
	assert.Equal(t, 200.0, rows[0].Revenue)
	assert.Equal(t, 30.0, rows[0].Commission)
	assert.Equal(t, 170.0, rows[0].NetPayout)
}

func TestStatsService_CobblerReport_MissingProfileKeepsRow(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	cobblerID := uuid.New()
	since := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.orderRepo.EXPECT().StatsByCobbler(ctx, since, until).Return([]*repository.CobblerOrderStats{
		{CobblerID: cobblerID, CompletedCount: 1, Revenue: 50},
	}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, cobblerID).Return(nil, repository.ErrUserNotFound)

	rows, err := fx.service.CobblerReport(ctx, usecase.ReportInput{Since: since, Until: until})

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].CompanyName)
}

func TestStatsService_CobblerReport_EmptyWindow(t *testing.T) {
	fx := createTestStatsService(t)

	now := time.Now()

	rows, err := fx.service.CobblerReport(context.Background(), usecase.ReportInput{Since: now, Until: now})

	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStatsService_UpdateSettings_PartialUpdate(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	commission := 12.5
	expressPrice := 25.0

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)
	fx.settingsRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Settings")).Return(nil)

	settings, err := fx.service.UpdateSettings(ctx, usecase.UpdateSettingsInput{
		CommissionPercent:    &commission,
		ExpressDeliveryPrice: &expressPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.5, settings.PlatformCommission)
	assert.Equal(t, 25.0, settings.DeliveryExpressPrice)
	assert.Equal(t, 8.0, settings.DeliveryStandardPrice, "untouched fields keep their value")
	assert.Equal(t, "CHF", settings.Currency)
}

func TestStatsService_UpdateSettings_CommissionOutOfRange(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()
	commission := 140.0

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)

	settings, err := fx.service.UpdateSettings(ctx, usecase.UpdateSettingsInput{
		CommissionPercent: &commission,
	})

	assert.Nil(t, settings)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestStatsService_GetSettings(t *testing.T) {
	fx := createTestStatsService(t)

	ctx := context.Background()

	fx.settingsRepo.EXPECT().Get(ctx).Return(entity.DefaultSettings(), nil)

	settings, err := fx.service.GetSettings(ctx)

	require.NoError(t, err)
	assert.Equal(t, 15.0, settings.PlatformCommission)
}
