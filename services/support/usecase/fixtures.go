package usecase

import (
	"time"

	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/models"
)

// Fixtures returns sample tickets, newest first, and their messages
func Fixtures(now time.Time) ([]models.SupportTicket, []models.TicketMessage) {
	opened := now.Add(-26 * time.Hour)
	resolved := now.Add(-72 * time.Hour)

	tickets := []models.SupportTicket{
		{
			ID:          "ticket-2",
			UserID:      constants.MockRiderID,
			Subject:     "Charged twice for a trip",
			Description: "My mobile money wallet was debited twice for the same ride.",
			Category:    "payment",
			Priority:    "high",
			Status:      models.TicketStatusInProgress,
			CreatedAt:   opened,
			UpdatedAt:   opened.Add(2 * time.Hour),
		},
		{
			ID:          "ticket-1",
			UserID:      constants.MockRiderID,
			Subject:     "Left my bag in the car",
			Description: "I left a black backpack on the back seat after my trip to Osu.",
			Category:    "lost_item",
			Priority:    "medium",
			Status:      models.TicketStatusResolved,
			CreatedAt:   resolved,
			UpdatedAt:   resolved.Add(5 * time.Hour),
		},
		{
			ID:          "ticket-3",
			UserID:      constants.MockDriverID,
			Subject:     "Payout delayed",
			Description: "My weekly payout has not arrived.",
			Category:    "payment",
			Priority:    "medium",
			Status:      models.TicketStatusOpen,
			CreatedAt:   now.Add(-3 * time.Hour),
			UpdatedAt:   now.Add(-3 * time.Hour),
		},
	}

	messages := []models.TicketMessage{
		{ID: "message-1", TicketID: "ticket-2", SenderID: constants.MockRiderID, SenderType: senderUser, Message: "The second debit was at 14:02.", CreatedAt: opened.Add(time.Hour)},
		{ID: "message-2", TicketID: "ticket-2", SenderID: "agent-1", SenderType: senderAgent, Message: "Thanks, we are checking with the payment provider.", CreatedAt: opened.Add(2 * time.Hour)},
		{ID: "message-3", TicketID: "ticket-1", SenderID: "agent-1", SenderType: senderAgent, Message: "The driver has your bag and will drop it off today.", CreatedAt: resolved.Add(5 * time.Hour)},
	}

	return tickets, messages
}
