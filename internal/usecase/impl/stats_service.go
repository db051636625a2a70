package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "cordonnier/internal/delivery/context"
	"cordonnier/internal/domain/entity"
	domainerrors "cordonnier/internal/domain/errors"
	"cordonnier/internal/domain/repository"
	"cordonnier/internal/usecase"
	"cordonnier/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// statsService implements the StatsUsecase interface.
type statsService struct {
	userRepo     repository.UserRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	logger       *slog.Logger
}

// StatsServiceParams holds dependencies for StatsService, injected by Fx.
type StatsServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	OrderRepo    repository.OrderRepository
	SettingsRepo repository.SettingsRepository
	Logger       *slog.Logger
}

// NewStatsService is the constructor for statsService.
func NewStatsService(params StatsServiceParams) usecase.StatsUsecase {
	return &statsService{
		userRepo:     params.UserRepo,
		orderRepo:    params.OrderRepo,
		settingsRepo: params.SettingsRepo,
		logger:       params.Logger,
	}
}

func (srv *statsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard assembles the admin dashboard snapshot.
func (srv *statsService) Dashboard(ctx context.Context) (*usecase.DashboardStats, error) {
	clientCount, err := srv.userRepo.CountClients(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count clients")
	}

	approved, err := srv.userRepo.CountCobblersByStatus(ctx, entity.PartnerStatusApproved)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count approved cobblers")
	}

	pending, err := srv.userRepo.CountCobblersByStatus(ctx, entity.PartnerStatusPending)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending cobblers")
	}

	byStatus, err := srv.orderRepo.CountByStatus(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders by status")
	}

	now := time.Now()
	revenue, err := srv.orderRepo.SumRevenue(ctx, now.AddDate(0, 0, -30), now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum recent revenue")
	}

	return &usecase.DashboardStats{
		ClientCount:     clientCount,
		ApprovedCobbler: approved,
		PendingCobbler:  pending,
		OrdersByStatus:  byStatus,
		Revenue30Days:   revenue,
	}, nil
}

// CobblerReport builds the per-cobbler activity report for a window,
// splitting each cobbler's revenue into platform commission and net payout
// using the settings commission rate.
func (srv *statsService) CobblerReport(ctx context.Context, input usecase.ReportInput) ([]*usecase.CobblerReportRow, error) {
	if !input.Until.After(input.Since) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("report window is empty")
	}

	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	stats, err := srv.orderRepo.StatsByCobbler(ctx, input.Since, input.Until)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate cobbler stats")
	}

	rows := make([]*usecase.CobblerReportRow, 0, len(stats))
	for _, stat := range stats {
		row := &usecase.CobblerReportRow{
			CobblerID:      stat.CobblerID.String(),
			CompletedCount: stat.CompletedCount,
			Revenue:        stat.Revenue,
			Commission:     stat.Revenue * settings.PlatformCommission / 100,
		}
		row.NetPayout = row.Revenue - row.Commission

		if user, err := srv.userRepo.FindByID(ctx, stat.CobblerID); err == nil && user.CobblerProfile != nil {
			row.CompanyName = user.CobblerProfile.CompanyName
		}

		rows = append(rows, row)
	}

	srv.log(ctx).Debug("Cobbler report built",
		slog.Time("since", input.Since),
		slog.String("window", util.FormatDuration(input.Until.Sub(input.Since))),
		slog.Int("rows", len(rows)))

	return rows, nil
}

// GetSettings returns the platform settings document.
func (srv *statsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	return settings, nil
}

// UpdateSettings applies the provided optional fields and stores the document.
func (srv *statsService) UpdateSettings(ctx context.Context, input usecase.UpdateSettingsInput) (*entity.Settings, error) {
	settings, err := srv.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load platform settings")
	}

	if input.StandardDeliveryPrice != nil {
		settings.DeliveryStandardPrice = *input.StandardDeliveryPrice
	}
	if input.ExpressDeliveryPrice != nil {
		settings.DeliveryExpressPrice = *input.ExpressDeliveryPrice
	}
	if input.StandardDeliveryDays != nil {
		settings.DeliveryStandardDays = *input.StandardDeliveryDays
	}
	if input.ExpressDeliveryDays != nil {
		settings.DeliveryExpressDays = *input.ExpressDeliveryDays
	}
	if input.CommissionPercent != nil {
		if *input.CommissionPercent < 0 || *input.CommissionPercent > 100 {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("commission must be between 0 and 100")
		}
		settings.PlatformCommission = *input.CommissionPercent
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.VATPercent != nil {
		settings.VATRate = *input.VATPercent
	}

	if err := srv.settingsRepo.Save(ctx, settings); err != nil {
		return nil, errors.Wrap(err, "failed to save platform settings")
	}

	srv.log(ctx).Info("Platform settings updated")

	return settings, nil
}
