package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/services/support"
)

const (
	senderUser  = "user"
	senderAgent = "agent"

	defaultPriority = "medium"
)

// ListTickets returns the signed in user's tickets, newest first
func (uc *SupportUC) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	return uc.supportRepo.ListTickets(ctx, userID)
}

// GetTicket returns a ticket owned by the signed in user
func (uc *SupportUC) GetTicket(ctx context.Context, id string) (*models.SupportTicket, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	ticket, err := uc.supportRepo.GetTicket(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, support.ErrTicketNotFound
	}
	return ticket, nil
}

// CreateTicket opens a ticket for the signed in user
func (uc *SupportUC) CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*models.SupportTicket, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = defaultPriority
	}

	now := uc.now()
	ticket := &models.SupportTicket{
		ID:          uuid.NewString(),
		UserID:      userID,
		Subject:     req.Subject,
		Description: req.Description,
		Category:    req.Category,
		Priority:    priority,
		Status:      models.TicketStatusOpen,
		BookingID:   req.BookingID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.supportRepo.CreateTicket(ctx, ticket); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Support ticket created",
		logger.String("ticket_id", ticket.ID),
		logger.String("category", ticket.Category))
	return ticket, nil
}

// AddMessage posts to the thread of an open ticket
func (uc *SupportUC) AddMessage(ctx context.Context, ticketID string, req models.AddMessageRequest) (*models.TicketMessage, error) {
	ticket, err := uc.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketStatusClosed {
		return nil, support.ErrTicketClosed
	}

	msg := &models.TicketMessage{
		ID:         uuid.NewString(),
		TicketID:   ticket.ID,
		SenderID:   ticket.UserID,
		SenderType: senderUser,
		Message:    req.Message,
		CreatedAt:  uc.now(),
	}
	if err := uc.supportRepo.AddMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ListMessages returns a ticket thread, oldest first
func (uc *SupportUC) ListMessages(ctx context.Context, ticketID string) ([]models.TicketMessage, error) {
	if _, err := uc.GetTicket(ctx, ticketID); err != nil {
		return nil, err
	}
	return uc.supportRepo.ListMessages(ctx, ticketID)
}

// UpdateStatus moves a ticket to another status
func (uc *SupportUC) UpdateStatus(ctx context.Context, ticketID string, status models.TicketStatus) (*models.SupportTicket, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", support.ErrInvalidStatus, status)
	}

	ticket, err := uc.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	if err := uc.supportRepo.UpdateStatus(ctx, ticket.ID, status, now); err != nil {
		if errors.Is(err, support.ErrTicketNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update ticket %s: %w", ticket.ID, err)
	}

	ticket.Status = status
	ticket.UpdatedAt = now
	return ticket, nil
}

func currentUser(ctx context.Context) (string, error) {
	userID := session.UserIDFromContext(ctx)
	if userID == "" {
		return "", support.ErrNoUser
	}
	return userID, nil
}
