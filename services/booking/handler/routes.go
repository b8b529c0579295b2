package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/services/booking"
	httpHandler "github.com/troski/troski/services/booking/handler/http"
)

// Handler combines all handlers for the booking service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC booking.BookingUC) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
	}
}

// RegisterRoutes registers the booking routes behind the signed in user check
func (h *Handler) RegisterRoutes(e *echo.Echo, requireUser echo.MiddlewareFunc) {
	bookings := e.Group("/bookings", requireUser)
	bookings.POST("/estimate", h.bookingHTTP.EstimateRide)
	bookings.POST("", h.bookingHTTP.BookRide)
	bookings.GET("/:id", h.bookingHTTP.GetBooking)
	bookings.POST("/:id/cancel", h.bookingHTTP.CancelRide)
	bookings.POST("/:id/rate", h.bookingHTTP.RateDriver)
}
