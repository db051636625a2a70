package handler

import (
	"io"
	"log/slog"
	"net/http"

	"cordonnier/internal/delivery/api/middleware"
	"cordonnier/internal/delivery/api/response"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// StartCheckoutRequest represents the request body for opening a checkout session.
type StartCheckoutRequest struct {
	OrderID    uuid.UUID `json:"order_id" validate:"required"`
	SuccessURL string    `json:"success_url" validate:"required,url"`
	CancelURL  string    `json:"cancel_url" validate:"required,url"`
}

// OnboardingRequest represents the request body for starting account onboarding.
type OnboardingRequest struct {
	ReturnURL  string `json:"return_url" validate:"required,url"`
	RefreshURL string `json:"refresh_url" validate:"required,url"`
}

// StartCheckout opens a hosted checkout page for an unpaid order.
func (h *PaymentHandler) StartCheckout(c echo.Context) error {
	var req StartCheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.paymentUC.StartCheckout(c.Request().Context(), usecase.StartCheckoutInput{
		OrderID:    req.OrderID,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"session_id":   output.SessionID,
		"checkout_url": output.CheckoutURL,
	})
}

// HandleWebhook receives provider webhooks. The raw body is needed for
// signature verification, so this route must bypass body parsing middleware.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read webhook payload")
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.paymentUC.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusOK)
}

// ConfirmCheckout polls a checkout session and settles it when paid.
// Fallback for environments where webhooks cannot reach the server.
func (h *PaymentHandler) ConfirmCheckout(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_ID", "Session ID is required")
	}

	order, err := h.paymentUC.ConfirmCheckout(c.Request().Context(), sessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// StartOnboarding creates or reuses the caller's connected account and
// returns the hosted onboarding URL.
func (h *PaymentHandler) StartOnboarding(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid onboarding input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.paymentUC.StartOnboarding(c.Request().Context(), userID, req.ReturnURL, req.RefreshURL)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"account_id":     output.AccountID,
		"onboarding_url": output.OnboardingURL,
	})
}

// OnboardingStatus reports whether the caller's connected account can
// receive payouts.
func (h *PaymentHandler) OnboardingStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	status, err := h.paymentUC.OnboardingStatus(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, status)
}
