package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/middleware"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/notification"
)

// NotificationHandler serves the notifications of the signed in user's role
type NotificationHandler struct {
	byRole map[models.Role]notification.NotificationUC
}

// NewNotificationHandler creates a handler from one use case per role
func NewNotificationHandler(ucs ...notification.NotificationUC) *NotificationHandler {
	byRole := make(map[models.Role]notification.NotificationUC, len(ucs))
	for _, uc := range ucs {
		byRole[uc.Role()] = uc
	}
	return &NotificationHandler{byRole: byRole}
}

func (h *NotificationHandler) forUser(c echo.Context) (notification.NotificationUC, error) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return nil, utils.UnauthorizedResponse(c, "Please sign in to continue", "")
	}
	uc, ok := h.byRole[user.Role]
	if !ok {
		return nil, utils.ForbiddenResponse(c, "Notifications are not available for this account")
	}
	return uc, nil
}

func (h *NotificationHandler) failure(c echo.Context, err error, msg string) error {
	if errors.Is(err, notification.ErrNotificationNotFound) {
		return utils.NotFoundResponse(c, "Notification not found")
	}
	if errors.Is(err, notification.ErrNoUser) {
		return utils.UnauthorizedResponse(c, "Please sign in to continue", "")
	}
	logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}

// GetNotifications lists notifications, newest first
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	list, err := uc.GetNotifications(c.Request().Context())
	if err != nil {
		return h.failure(c, err, "Failed to get notifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notifications retrieved successfully", list)
}

// GetUnreadCount returns the unread badge count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	count, err := uc.GetUnreadCount(c.Request().Context())
	if err != nil {
		return h.failure(c, err, "Failed to count notifications")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Unread count retrieved successfully", map[string]int{"count": count})
}

// AddNotification stores a notification for the current role
func (h *NotificationHandler) AddNotification(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	var req models.CreateNotificationRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid notification request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	n, err := uc.AddNotification(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to add notification")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Notification added successfully", n)
}

// MarkAsRead marks one notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	if err := uc.MarkAsRead(c.Request().Context(), c.Param("id")); err != nil {
		return h.failure(c, err, "Failed to mark notification as read")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllAsRead marks every notification as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	if err := uc.MarkAllAsRead(c.Request().Context()); err != nil {
		return h.failure(c, err, "Failed to mark notifications as read")
	}
	return utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}

// DeleteNotification removes a notification
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	uc, err := h.forUser(c)
	if uc == nil {
		return err
	}

	if err := uc.DeleteNotification(c.Request().Context(), c.Param("id")); err != nil {
		return h.failure(c, err, "Failed to delete notification")
	}
	return c.NoContent(http.StatusNoContent)
}
