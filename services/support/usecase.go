package support

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// SupportUC defines the support ticket operations of the signed in user
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/troski/troski/services/support SupportUC
type SupportUC interface {
	ListTickets(ctx context.Context) ([]models.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*models.SupportTicket, error)
	CreateTicket(ctx context.Context, req models.CreateTicketRequest) (*models.SupportTicket, error)
	AddMessage(ctx context.Context, ticketID string, req models.AddMessageRequest) (*models.TicketMessage, error)
	ListMessages(ctx context.Context, ticketID string) ([]models.TicketMessage, error)
	UpdateStatus(ctx context.Context, ticketID string, status models.TicketStatus) (*models.SupportTicket, error)
}
