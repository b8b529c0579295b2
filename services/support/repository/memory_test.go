package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/support"
)

func TestMemorySupportRepo(t *testing.T) {
	now := time.Now()
	repo := NewMemorySupportRepository(
		[]models.SupportTicket{
			{ID: "ticket-2", UserID: "u-1", Status: models.TicketStatusOpen},
			{ID: "ticket-1", UserID: "u-1", Status: models.TicketStatusResolved},
			{ID: "ticket-3", UserID: "u-2", Status: models.TicketStatusOpen},
		},
		[]models.TicketMessage{{ID: "message-1", TicketID: "ticket-2", Message: "first"}},
	)
	ctx := context.Background()

	require.NoError(t, repo.CreateTicket(ctx, &models.SupportTicket{ID: "ticket-4", UserID: "u-1"}))

	tickets, err := repo.ListTickets(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, "ticket-4", tickets[0].ID)

	require.NoError(t, repo.AddMessage(ctx, &models.TicketMessage{ID: "message-2", TicketID: "ticket-2", Message: "second", CreatedAt: now}))
	assert.ErrorIs(t, repo.AddMessage(ctx, &models.TicketMessage{TicketID: "missing"}), support.ErrTicketNotFound)

	messages, err := repo.ListMessages(ctx, "ticket-2")
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, []string{messages[0].Message, messages[1].Message})

	require.NoError(t, repo.UpdateStatus(ctx, "ticket-2", models.TicketStatusClosed, now))
	ticket, err := repo.GetTicket(ctx, "ticket-2")
	require.NoError(t, err)
	assert.Equal(t, models.TicketStatusClosed, ticket.Status)
	assert.Equal(t, now, ticket.UpdatedAt)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", models.TicketStatusClosed, now), support.ErrTicketNotFound)
	_, err = repo.GetTicket(ctx, "missing")
	assert.ErrorIs(t, err, support.ErrTicketNotFound)
}
