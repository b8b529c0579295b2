package handler

import (
	"github.com/labstack/echo/v4"
	wspkg "github.com/troski/troski/internal/pkg/websocket"
	"github.com/troski/troski/services/toast"
	httpHandler "github.com/troski/troski/services/toast/handler/http"
	wsHandler "github.com/troski/troski/services/toast/handler/websocket"
)

// Handler combines all handlers for the toast service
type Handler struct {
	toastHTTP *httpHandler.ToastHandler
	toastWS   *wsHandler.ToastStream
}

// NewHandler creates a new combined handler
func NewHandler(toastUC toast.ToastUC, manager *wspkg.Manager) *Handler {
	return &Handler{
		toastHTTP: httpHandler.NewToastHandler(toastUC),
		toastWS:   wsHandler.NewToastStream(toastUC, manager),
	}
}

// RegisterRoutes registers the toast routes. Toasts belong to the browser session, not a user.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	toasts := e.Group("/toasts")
	toasts.GET("", h.toastHTTP.ListToasts)
	toasts.POST("", h.toastHTTP.ShowToast)
	toasts.DELETE("/:id", h.toastHTTP.DismissToast)

	e.GET("/ws/toasts", h.toastWS.HandleWebSocket)
}
