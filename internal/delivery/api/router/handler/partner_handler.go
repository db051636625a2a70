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

// PartnerHandlerParams holds dependencies for PartnerHandler, injected by Fx.
type PartnerHandlerParams struct {
	fx.In

	PartnerUC usecase.PartnerUsecase
	Logger    *slog.Logger
}

// PartnerHandler holds dependencies for cobbler self-service and the admin
// vetting workflow.
type PartnerHandler struct {
	partnerUC usecase.PartnerUsecase
	logger    *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler.
func NewPartnerHandler(params PartnerHandlerParams) *PartnerHandler {
	return &PartnerHandler{
		partnerUC: params.PartnerUC,
		logger:    params.Logger,
	}
}

// UpdateWorkshopRequest represents the request body for workshop updates.
// Absent fields are left untouched.
type UpdateWorkshopRequest struct {
	CompanyName *string `json:"company_name"`
	Address     *string `json:"address"`
	BankAccount *string `json:"bank_account"`
}

// RejectCobblerRequest represents the request body for a rejection.
type RejectCobblerRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// UpdateWorkshop applies partial updates to the caller's workshop profile.
// An address change is re-geocoded and rejected when it cannot be located.
func (h *PartnerHandler) UpdateWorkshop(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateWorkshopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid workshop input")
	}

	user, err := h.partnerUC.UpdateWorkshop(c.Request().Context(), userID, usecase.UpdateWorkshopInput{
		CompanyName: req.CompanyName,
		Address:     req.Address,
		BankAccount: req.BankAccount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// UploadDocument stores one vetting document for the caller. The document
// kind is a path parameter, the body is the raw file.
func (h *PartnerHandler) UploadDocument(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	err := h.partnerUC.UploadDocument(c.Request().Context(), userID, usecase.UploadDocumentInput{
		Kind:        c.Param("kind"),
		ContentType: c.Request().Header.Get(echo.HeaderContentType),
		Content:     c.Request().Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Document stored"})
}

// SignTerms records the caller's acceptance of the partner terms.
func (h *PartnerHandler) SignTerms(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.partnerUC.SignTerms(c.Request().Context(), userID, c.RealIP()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Terms signed"})
}

// PublicCobbler is the marketplace-facing view of an approved cobbler.
// Banking details, vetting documents and contact data stay internal.
type PublicCobbler struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"company_name"`
	Address     string    `json:"address"`
}

// ListPublicCobblers returns the approved workshops visible to visitors.
func (h *PartnerHandler) ListPublicCobblers(c echo.Context) error {
	users, err := h.partnerUC.ListCobblers(c.Request().Context(), entity.PartnerStatusApproved)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cobblers := make([]PublicCobbler, 0, len(users))
	for _, user := range users {
		if user.CobblerProfile == nil {
			continue
		}
		cobblers = append(cobblers, PublicCobbler{
			ID:          user.ID,
			CompanyName: user.CobblerProfile.CompanyName,
			Address:     user.Address,
		})
	}

	return response.Success(c, http.StatusOK, cobblers)
}

// ListPendingCobblers returns the applications awaiting vetting.
func (h *PartnerHandler) ListPendingCobblers(c echo.Context) error {
	users, err := h.partnerUC.ListPendingCobblers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// ListCobblers returns cobbler accounts in a given vetting status.
func (h *PartnerHandler) ListCobblers(c echo.Context) error {
	users, err := h.partnerUC.ListCobblers(c.Request().Context(), entity.PartnerStatus(c.QueryParam("status")))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, users)
}

// GetCobbler returns one cobbler account with its profile.
func (h *PartnerHandler) GetCobbler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cobbler ID")
	}

	user, err := h.partnerUC.GetCobbler(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// ApproveCobbler approves a pending application.
func (h *PartnerHandler) ApproveCobbler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cobbler ID")
	}

	if err := h.partnerUC.ApproveCobbler(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cobbler approved"})
}

// RejectCobbler rejects a pending application with a reason.
func (h *PartnerHandler) RejectCobbler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cobbler ID")
	}

	var req RejectCobblerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.partnerUC.RejectCobbler(c.Request().Context(), id, usecase.RejectCobblerInput{Reason: req.Reason}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cobbler rejected"})
}

// DownloadDocument streams a stored vetting document to an administrator.
func (h *PartnerHandler) DownloadDocument(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cobbler ID")
	}

	doc, err := h.partnerUC.DownloadDocument(c.Request().Context(), id, c.Param("kind"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer doc.Content.Close()

	return c.Stream(http.StatusOK, doc.ContentType, doc.Content)
}
