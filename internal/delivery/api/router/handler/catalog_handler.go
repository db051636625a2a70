package handler

import (
	"log/slog"
	"net/http"

	"cordonnier/internal/delivery/api/middleware"
	"cordonnier/internal/delivery/api/response"
	"cordonnier/internal/domain/entity"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for repair catalog handlers.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler.
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ServiceRequest represents the request body for creating or replacing a
// catalog entry.
type ServiceRequest struct {
	NameFR        string  `json:"name_fr" validate:"required"`
	NameEN        string  `json:"name_en"`
	NameDE        string  `json:"name_de"`
	NameIT        string  `json:"name_it"`
	DescriptionFR string  `json:"description_fr"`
	DescriptionEN string  `json:"description_en"`
	DescriptionDE string  `json:"description_de"`
	DescriptionIT string  `json:"description_it"`
	Price         float64 `json:"price" validate:"gte=0"`
	EstimatedDays int     `json:"estimated_days" validate:"gte=0"`
	Category      string  `json:"category"`
	Gender        string  `json:"gender"`
	ImageURL      string  `json:"image_url"`
	IsActive      bool    `json:"is_active"`
}

func (r *ServiceRequest) toInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:          entity.LocalizedText{FR: r.NameFR, EN: r.NameEN, DE: r.NameDE, IT: r.NameIT},
		Description:   entity.LocalizedText{FR: r.DescriptionFR, EN: r.DescriptionEN, DE: r.DescriptionDE, IT: r.DescriptionIT},
		Price:         r.Price,
		EstimatedDays: r.EstimatedDays,
		Category:      r.Category,
		Gender:        r.Gender,
		ImageURL:      r.ImageURL,
		IsActive:      r.IsActive,
	}
}

// ListServices returns catalog entries, filtered by category and gender.
// Inactive entries are only included for administrators asking for them.
func (h *CatalogHandler) ListServices(c echo.Context) error {
	isAdmin, _ := c.Get(middleware.ContextKeyIsAdmin).(bool)

	services, err := h.catalogUC.ListServices(c.Request().Context(), usecase.ListServicesInput{
		Category:        c.QueryParam("category"),
		Gender:          c.QueryParam("gender"),
		IncludeInactive: isAdmin && c.QueryParam("include_inactive") == "true",
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

// GetService returns one catalog entry.
func (h *CatalogHandler) GetService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	svc, err := h.catalogUC.GetService(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

// CreateService stores a new catalog entry.
func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.catalogUC.CreateService(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, svc)
}

// UpdateService replaces a catalog entry.
func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid service input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	svc, err := h.catalogUC.UpdateService(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, svc)
}

// DeleteService removes a catalog entry.
func (h *CatalogHandler) DeleteService(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid service ID")
	}

	if err := h.catalogUC.DeleteService(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Service deleted"})
}
