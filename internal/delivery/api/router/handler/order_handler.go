package handler

import (
	"io"
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

// Shoe photos arrive as raw uploads, capped before reading.
const maxPhotoBytes = 10 << 20

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// OrderItemRequest is one catalog service in the cart.
type OrderItemRequest struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// CreateOrderRequest represents the request body for placing an order.
// Guests identify themselves through the contact fields only.
type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryOption  string             `json:"delivery_option" validate:"required,oneof=standard express"`
	DeliveryAddress string             `json:"delivery_address" validate:"required"`
	ContactName     string             `json:"contact_name" validate:"required"`
	ContactEmail    string             `json:"contact_email" validate:"required,email"`
	ContactPhone    string             `json:"contact_phone"`
	Notes           string             `json:"notes"`
	PhotoKeys       []string           `json:"photo_keys"`
}

// UpdateOrderStatusRequest represents the request body for a status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateOrder places an order, for a guest or a logged-in client.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{ServiceID: item.ServiceID, Quantity: item.Quantity})
	}

	input := usecase.CreateOrderInput{
		Items:           items,
		DeliveryOption:  entity.DeliveryOption(req.DeliveryOption),
		DeliveryAddress: req.DeliveryAddress,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
		PhotoKeys:       req.PhotoKeys,
	}
	if userID, ok := middleware.GetUserID(c); ok {
		input.ClientID = &userID
	}

	output, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"order":       output.Order,
		"distance_km": output.AssignedDistanceKm,
	})
}

// GetOrder returns one order, visible to its client, its assigned cobbler
// and administrators.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), middleware.GetActor(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TrackOrder returns the public tracking view of an order by its reference.
func (h *OrderHandler) TrackOrder(c echo.Context) error {
	order, err := h.orderUC.TrackOrder(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// TrackingQR renders the QR code of the public tracking page as a PNG.
func (h *OrderHandler) TrackingQR(c echo.Context) error {
	png, err := h.orderUC.TrackingQR(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMyOrders returns the caller's orders: placed ones for clients,
// assigned ones for cobblers.
func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), middleware.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListAllOrders returns every order, optionally narrowed by status.
func (h *OrderHandler) ListAllOrders(c echo.Context) error {
	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderUC.ListAllOrders(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// UpdateStatus moves an order through its lifecycle.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), middleware.GetActor(c), id, usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// UploadPhoto stores a shoe photo ahead of order creation and returns its key.
func (h *OrderHandler) UploadPhoto(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	content, err := io.ReadAll(io.LimitReader(c.Request().Body, maxPhotoBytes+1))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Could not read photo upload")
	}
	if len(content) > maxPhotoBytes {
		return response.Error(c, http.StatusRequestEntityTooLarge, "PHOTO_TOO_LARGE", "Photo exceeds the upload limit", nil)
	}

	key, err := h.orderUC.UploadPhoto(c.Request().Context(), contentType, content)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"photo_key": key})
}
