package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/services/support"
	httpHandler "github.com/troski/troski/services/support/handler/http"
)

// Handler combines all handlers for the support service
type Handler struct {
	supportHTTP *httpHandler.SupportHandler
}

// NewHandler creates a new combined handler
func NewHandler(supportUC support.SupportUC) *Handler {
	return &Handler{
		supportHTTP: httpHandler.NewSupportHandler(supportUC),
	}
}

// RegisterRoutes registers the support routes behind the signed in user check
func (h *Handler) RegisterRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	tickets := e.Group("/support/tickets", requireUser)
	tickets.GET("", h.supportHTTP.ListTickets)
	tickets.POST("", h.supportHTTP.CreateTicket)
	tickets.GET("/:id", h.supportHTTP.GetTicket)
	tickets.PATCH("/:id/status", h.supportHTTP.UpdateStatus)
	tickets.GET("/:id/messages", h.supportHTTP.ListMessages)
	tickets.POST("/:id/messages", h.supportHTTP.AddMessage)
}
