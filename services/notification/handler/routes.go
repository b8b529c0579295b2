package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/notification"
	httpHandler "github.com/troski/troski/services/notification/handler/http"
	nsqHandler "github.com/troski/troski/services/notification/handler/nsq"
)

// Handler combines all handlers for the notification service
type Handler struct {
	notificationHTTP *httpHandler.NotificationHandler
	bookingEvents    *nsqHandler.BookingEventHandler
}

// NewHandler creates a new combined handler
func NewHandler(riderUC, driverUC notification.NotificationUC) *Handler {
	return &Handler{
		notificationHTTP: httpHandler.NewNotificationHandler(riderUC, driverUC),
		bookingEvents:    nsqHandler.NewBookingEventHandler(riderUC, driverUC),
	}
}

// RegisterRoutes registers the notification routes behind the signed in user check
func (h *Handler) RegisterRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	notifications := e.Group("/notifications", requireUser)
	notifications.GET("", h.notificationHTTP.GetNotifications)
	notifications.GET("/unread-count", h.notificationHTTP.GetUnreadCount)
	notifications.POST("", h.notificationHTTP.AddNotification)
	notifications.PATCH("/read-all", h.notificationHTTP.MarkAllAsRead)
	notifications.PATCH("/:id/read", h.notificationHTTP.MarkAsRead)
	notifications.DELETE("/:id", h.notificationHTTP.DeleteNotification)
}

// InitNSQConsumers starts the booking event consumers
func (h *Handler) InitNSQConsumers(cfg models.NSQConfig) error {
	return h.bookingEvents.InitConsumers(cfg)
}

// StopNSQConsumers stops the booking event consumers
func (h *Handler) StopNSQConsumers() {
	h.bookingEvents.Stop()
}
