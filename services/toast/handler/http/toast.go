package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/toast"
)

// ShowToastRequest shows a toast to the calling session
type ShowToastRequest struct {
	Message    string           `json:"message" validate:"required"`
	Type       models.ToastType `json:"type" validate:"omitempty,oneof=success error warning info"`
	DurationMs int              `json:"duration,omitempty" validate:"gte=0"`
}

// ToastHandler handles HTTP requests for the session toast queue
type ToastHandler struct {
	toastUC toast.ToastUC
}

// NewToastHandler creates a new toast HTTP handler
func NewToastHandler(toastUC toast.ToastUC) *ToastHandler {
	return &ToastHandler{
		toastUC: toastUC,
	}
}

// ListToasts returns the visible toasts of the session
func (h *ToastHandler) ListToasts(c echo.Context) error {
	toasts := h.toastUC.List(c.Request().Context())
	return utils.SuccessResponse(c, http.StatusOK, "", toasts)
}

// ShowToast enqueues a toast
func (h *ToastHandler) ShowToast(c echo.Context) error {
	var req ShowToastRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid toast request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	id := h.toastUC.Show(c.Request().Context(), req.Message, req.Type, time.Duration(req.DurationMs)*time.Millisecond)
	return utils.SuccessResponse(c, http.StatusCreated, "Toast shown", map[string]string{"id": id})
}

// DismissToast starts the exit phase of a toast
func (h *ToastHandler) DismissToast(c echo.Context) error {
	if !h.toastUC.Dismiss(c.Request().Context(), c.Param("id")) {
		return utils.NotFoundResponse(c, "Toast not found")
	}
	return c.NoContent(http.StatusNoContent)
}
