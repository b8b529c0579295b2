package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/booking"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC booking.BookingUC
}

// NewBookingHandler creates a new booking HTTP handler
func NewBookingHandler(bookingUC booking.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// EstimateRide handles fare estimate requests
func (h *BookingHandler) EstimateRide(c echo.Context) error {
	var req models.EstimateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid estimate request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	result := h.bookingUC.EstimateRide(c.Request().Context(), req.Pickup, req.Dropoff)
	return utils.ActionResponse(c, result)
}

// BookRide handles ride booking requests
func (h *BookingHandler) BookRide(c echo.Context) error {
	var req models.BookRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid booking request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	result := h.bookingUC.BookRide(c.Request().Context(), req.Pickup, req.Dropoff, req.PaymentMethod)
	return utils.ActionResponse(c, result)
}

// GetBooking returns a stored booking
func (h *BookingHandler) GetBooking(c echo.Context) error {
	bookingID := c.Param("id")

	result, err := h.bookingUC.GetBooking(c.Request().Context(), bookingID)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return utils.NotFoundResponse(c, "Booking not found")
	}
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to get booking",
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return utils.InternalServerErrorResponse(c, "Failed to get booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", result)
}

// CancelRide handles ride cancellation
func (h *BookingHandler) CancelRide(c echo.Context) error {
	var req models.CancelRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid cancel request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result := h.bookingUC.CancelRide(c.Request().Context(), c.Param("id"), req.Reason)
	return utils.ActionResponse(c, result)
}

// RateDriver handles driver ratings
func (h *BookingHandler) RateDriver(c echo.Context) error {
	var req models.RateRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid rating request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	result := h.bookingUC.RateDriver(c.Request().Context(), c.Param("id"), req.Rating, req.Comment)
	return utils.ActionResponse(c, result)
}
