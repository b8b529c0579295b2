package support

import (
	"context"
	"time"

	"github.com/troski/troski/internal/pkg/models"
)

// SupportRepo stores support tickets and their message threads
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/troski/troski/services/support SupportRepo
type SupportRepo interface {
	ListTickets(ctx context.Context, userID string) ([]models.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*models.SupportTicket, error)
	CreateTicket(ctx context.Context, ticket *models.SupportTicket) error
	UpdateStatus(ctx context.Context, id string, status models.TicketStatus, updatedAt time.Time) error
	AddMessage(ctx context.Context, msg *models.TicketMessage) error
	ListMessages(ctx context.Context, ticketID string) ([]models.TicketMessage, error)
}
