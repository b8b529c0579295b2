package repository

import (
	"context"
	"sync"
	"time"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/support"
)

// MemorySupportRepo keeps tickets in process. Tickets are held newest first.
type MemorySupportRepo struct {
	mu       sync.RWMutex
	tickets  []models.SupportTicket
	messages map[string][]models.TicketMessage
}

// NewMemorySupportRepository creates a repository seeded with the given records
func NewMemorySupportRepository(tickets []models.SupportTicket, messages []models.TicketMessage) *MemorySupportRepo {
	r := &MemorySupportRepo{
		tickets:  append([]models.SupportTicket(nil), tickets...),
		messages: make(map[string][]models.TicketMessage),
	}
	for _, m := range messages {
		r.messages[m.TicketID] = append(r.messages[m.TicketID], m)
	}
	return r
}

// ListTickets returns the user's tickets, newest first
func (r *MemorySupportRepo) ListTickets(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tickets := []models.SupportTicket{}
	for _, t := range r.tickets {
		if t.UserID == userID {
			tickets = append(tickets, t)
		}
	}
	return tickets, nil
}

// GetTicket returns one ticket
func (r *MemorySupportRepo) GetTicket(ctx context.Context, id string) (*models.SupportTicket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.index(id); i >= 0 {
		ticket := r.tickets[i]
		return &ticket, nil
	}
	return nil, support.ErrTicketNotFound
}

// CreateTicket puts the ticket in front
func (r *MemorySupportRepo) CreateTicket(ctx context.Context, ticket *models.SupportTicket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tickets = append([]models.SupportTicket{*ticket}, r.tickets...)
	return nil
}

// UpdateStatus changes a ticket status
func (r *MemorySupportRepo) UpdateStatus(ctx context.Context, id string, status models.TicketStatus, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(id)
	if i < 0 {
		return support.ErrTicketNotFound
	}
	r.tickets[i].Status = status
	r.tickets[i].UpdatedAt = updatedAt
	return nil
}

// AddMessage appends to the thread
func (r *MemorySupportRepo) AddMessage(ctx context.Context, msg *models.TicketMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.index(msg.TicketID)
	if i < 0 {
		return support.ErrTicketNotFound
	}
	r.tickets[i].UpdatedAt = msg.CreatedAt
	r.messages[msg.TicketID] = append(r.messages[msg.TicketID], *msg)
	return nil
}

// ListMessages returns the thread, oldest first
func (r *MemorySupportRepo) ListMessages(ctx context.Context, ticketID string) ([]models.TicketMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.TicketMessage{}, r.messages[ticketID]...), nil
}

func (r *MemorySupportRepo) index(id string) int {
	for i := range r.tickets {
		if r.tickets[i].ID == id {
			return i
		}
	}
	return -1
}
