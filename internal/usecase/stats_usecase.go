package usecase

import (
	"context"
	"time"

	"cordonnier/internal/domain/entity"
)

// DashboardStats is the admin dashboard snapshot.
type DashboardStats struct {
	ClientCount     int64
	ApprovedCobbler int64
	PendingCobbler  int64
	OrdersByStatus  map[entity.OrderStatus]int64
	Revenue30Days   float64
}

// CobblerReportRow is one line of the periodic activity report.
type CobblerReportRow struct {
	CobblerID      string
	CompanyName    string
	CompletedCount int64
	Revenue        float64
	Commission     float64
	NetPayout      float64
}

// ReportInput bounds a report window.
type ReportInput struct {
	Since time.Time
	Until time.Time
}

// UpdateSettingsInput carries optional settings fields. Nil pointers are left untouched.
type UpdateSettingsInput struct {
	StandardDeliveryPrice *float64
	ExpressDeliveryPrice  *float64
	StandardDeliveryDays  *int
	ExpressDeliveryDays   *int
	CommissionPercent     *float64
	Currency              *string
	VATPercent            *float64
}

// StatsUsecase covers the admin dashboard, reports and platform settings.
type StatsUsecase interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	CobblerReport(ctx context.Context, input ReportInput) ([]*CobblerReportRow, error)

	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, input UpdateSettingsInput) (*entity.Settings, error)
}
