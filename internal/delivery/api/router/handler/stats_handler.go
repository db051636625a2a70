package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cordonnier/internal/delivery/api/response"
	"cordonnier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StatsHandlerParams holds dependencies for StatsHandler, injected by Fx.
type StatsHandlerParams struct {
	fx.In

	StatsUC usecase.StatsUsecase
	Logger  *slog.Logger
}

// StatsHandler holds dependencies for the admin dashboard, reports and
// platform settings handlers.
type StatsHandler struct {
	statsUC usecase.StatsUsecase
	logger  *slog.Logger
}

// NewStatsHandler is the constructor for StatsHandler.
func NewStatsHandler(params StatsHandlerParams) *StatsHandler {
	return &StatsHandler{
		statsUC: params.StatsUC,
		logger:  params.Logger,
	}
}

// UpdateSettingsRequest represents the request body for settings updates.
// Absent fields are left untouched.
type UpdateSettingsRequest struct {
	StandardDeliveryPrice *float64 `json:"standard_delivery_price"`
	ExpressDeliveryPrice  *float64 `json:"express_delivery_price"`
	StandardDeliveryDays  *int     `json:"standard_delivery_days"`
	ExpressDeliveryDays   *int     `json:"express_delivery_days"`
	CommissionPercent     *float64 `json:"commission_percent"`
	Currency              *string  `json:"currency"`
	VATPercent            *float64 `json:"vat_percent"`
}

// Dashboard returns the admin dashboard snapshot.
func (h *StatsHandler) Dashboard(c echo.Context) error {
	stats, err := h.statsUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// CobblerReport returns the per-cobbler activity report for a date window.
func (h *StatsHandler) CobblerReport(c echo.Context) error {
	since, err := time.Parse(time.RFC3339, c.QueryParam("since"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "since must be an RFC 3339 timestamp")
	}

	until, err := time.Parse(time.RFC3339, c.QueryParam("until"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "until must be an RFC 3339 timestamp")
	}

	rows, err := h.statsUC.CobblerReport(c.Request().Context(), usecase.ReportInput{Since: since, Until: until})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, rows)
}

// GetSettings returns the platform settings document.
func (h *StatsHandler) GetSettings(c echo.Context) error {
	settings, err := h.statsUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// UpdateSettings applies partial updates to the platform settings.
func (h *StatsHandler) UpdateSettings(c echo.Context) error {
	var req UpdateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}

	settings, err := h.statsUC.UpdateSettings(c.Request().Context(), usecase.UpdateSettingsInput{
		StandardDeliveryPrice: req.StandardDeliveryPrice,
		ExpressDeliveryPrice:  req.ExpressDeliveryPrice,
		StandardDeliveryDays:  req.StandardDeliveryDays,
		ExpressDeliveryDays:   req.ExpressDeliveryDays,
		CommissionPercent:     req.CommissionPercent,
		Currency:              req.Currency,
		VATPercent:            req.VATPercent,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}
