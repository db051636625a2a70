package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"cordonnier/internal/delivery/api/response"
	"cordonnier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler holds dependencies for site media handlers.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// ListMedia returns the media items of a category, ordered by position.
func (h *MediaHandler) ListMedia(c echo.Context) error {
	items, err := h.mediaUC.ListMedia(c.Request().Context(), c.Param("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// GetMediaContent streams the image behind a media item.
func (h *MediaHandler) GetMediaContent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	output, err := h.mediaUC.GetMediaContent(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer output.Content.Close()

	return c.Stream(http.StatusOK, output.ContentType, output.Content)
}

// UploadMedia stores an image in a category slot. The image arrives as the
// raw request body, the slot through query parameters.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	position, err := strconv.Atoi(c.QueryParam("position"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Position must be an integer")
	}

	item, err := h.mediaUC.UploadMedia(c.Request().Context(), usecase.UploadMediaInput{
		Category:    c.Param("category"),
		Title:       c.QueryParam("title"),
		Position:    position,
		ContentType: c.Request().Header.Get(echo.HeaderContentType),
		Content:     c.Request().Body,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// DeleteMedia removes a media item and its blob.
func (h *MediaHandler) DeleteMedia(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid media ID")
	}

	if err := h.mediaUC.DeleteMedia(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Media deleted"})
}
