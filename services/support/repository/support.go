package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/support"
)

// SupportRepo stores tickets in PostgreSQL
type SupportRepo struct {
	db *sqlx.DB
}

// NewSupportRepository creates a PostgreSQL support repository
func NewSupportRepository(db *sqlx.DB) *SupportRepo {
	return &SupportRepo{db: db}
}

const ticketColumns = `id, user_id, subject, description, category, priority, status,
		COALESCE(booking_id, '') AS booking_id, created_at, updated_at`

// ListTickets returns the user's tickets, newest first
func (r *SupportRepo) ListTickets(ctx context.Context, userID string) ([]models.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM support_tickets
		WHERE user_id = $1
		ORDER BY created_at DESC`

	tickets := []models.SupportTicket{}
	if err := r.db.SelectContext(ctx, &tickets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

// GetTicket returns one ticket
func (r *SupportRepo) GetTicket(ctx context.Context, id string) (*models.SupportTicket, error) {
	query := `SELECT ` + ticketColumns + `
		FROM support_tickets
		WHERE id = $1`

	var ticket models.SupportTicket
	if err := r.db.GetContext(ctx, &ticket, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, support.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &ticket, nil
}

// CreateTicket inserts a ticket
func (r *SupportRepo) CreateTicket(ctx context.Context, ticket *models.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (
			id, user_id, subject, description, category, priority, status, booking_id, created_at, updated_at
		) VALUES (
			:id, :user_id, :subject, :description, :category, :priority, :status, NULLIF(:booking_id, ''), :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, ticket); err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

// UpdateStatus changes a ticket status
func (r *SupportRepo) UpdateStatus(ctx context.Context, id string, status models.TicketStatus, updatedAt time.Time) error {
	query := `UPDATE support_tickets SET status = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, status, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	return expectOneRow(result)
}

// AddMessage appends a message and bumps the ticket's updated_at in one transaction
func (r *SupportRepo) AddMessage(ctx context.Context, msg *models.TicketMessage) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE support_tickets SET updated_at = $1 WHERE id = $2`, msg.CreatedAt, msg.TicketID)
	if err != nil {
		return fmt.Errorf("failed to touch ticket: %w", err)
	}
	if err := expectOneRow(result); err != nil {
		return err
	}

	query := `
		INSERT INTO support_messages (id, ticket_id, sender_id, sender_type, message, created_at)
		VALUES (:id, :ticket_id, :sender_id, :sender_type, :message, :created_at)`
	if _, err := tx.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to add message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit message: %w", err)
	}
	return nil
}

// ListMessages returns a ticket thread, oldest first
func (r *SupportRepo) ListMessages(ctx context.Context, ticketID string) ([]models.TicketMessage, error) {
	query := `
		SELECT id, ticket_id, sender_id, sender_type, message, created_at
		FROM support_messages
		WHERE ticket_id = $1
		ORDER BY created_at ASC`

	messages := []models.TicketMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, ticketID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}

func expectOneRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return support.ErrTicketNotFound
	}
	return nil
}
