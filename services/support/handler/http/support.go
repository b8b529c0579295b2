package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/validator"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/support"
)

// SupportHandler handles HTTP requests for support tickets
type SupportHandler struct {
	supportUC support.SupportUC
}

// NewSupportHandler creates a new support HTTP handler
func NewSupportHandler(supportUC support.SupportUC) *SupportHandler {
	return &SupportHandler{
		supportUC: supportUC,
	}
}

// ListTickets returns the user's tickets
func (h *SupportHandler) ListTickets(c echo.Context) error {
	tickets, err := h.supportUC.ListTickets(c.Request().Context())
	if err != nil {
		return h.failure(c, err, "Failed to get tickets")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Tickets retrieved successfully", tickets)
}

// GetTicket returns one ticket
func (h *SupportHandler) GetTicket(c echo.Context) error {
	ticket, err := h.supportUC.GetTicket(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.failure(c, err, "Failed to get ticket")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket retrieved successfully", ticket)
}

// CreateTicket opens a ticket
func (h *SupportHandler) CreateTicket(c echo.Context) error {
	var req models.CreateTicketRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid ticket request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	ticket, err := h.supportUC.CreateTicket(c.Request().Context(), req)
	if err != nil {
		return h.failure(c, err, "Failed to create ticket")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Ticket created successfully", ticket)
}

// ListMessages returns a ticket thread
func (h *SupportHandler) ListMessages(c echo.Context) error {
	messages, err := h.supportUC.ListMessages(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.failure(c, err, "Failed to get messages")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved successfully", messages)
}

// AddMessage posts to a ticket thread
func (h *SupportHandler) AddMessage(c echo.Context) error {
	var req models.AddMessageRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid message request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	msg, err := h.supportUC.AddMessage(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return h.failure(c, err, "Failed to add message")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message added successfully", msg)
}

// UpdateStatus changes a ticket status
func (h *SupportHandler) UpdateStatus(c echo.Context) error {
	var req models.UpdateTicketStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Invalid status request", logger.Err(err))
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, validator.Message(err))
	}

	ticket, err := h.supportUC.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return h.failure(c, err, "Failed to update ticket")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", ticket)
}

func (h *SupportHandler) failure(c echo.Context, err error, msg string) error {
	switch {
	case errors.Is(err, support.ErrTicketNotFound):
		return utils.NotFoundResponse(c, "Ticket not found")
	case errors.Is(err, support.ErrTicketClosed):
		return utils.ErrorResponseHandler(c, http.StatusConflict, "This ticket is closed")
	case errors.Is(err, support.ErrInvalidStatus):
		return utils.BadRequestResponse(c, "Invalid ticket status")
	case errors.Is(err, support.ErrNoUser):
		return utils.UnauthorizedResponse(c, "Please sign in to continue", "")
	}

	logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	return utils.InternalServerErrorResponse(c, msg)
}
