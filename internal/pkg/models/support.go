package models

import (
	"time"
)

// TicketStatus represents the state of a support ticket
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// Valid reports whether the status is known
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// SupportTicket is a rider or driver support request
type SupportTicket struct {
	ID          string       `json:"id" db:"id"`
	UserID      string       `json:"userId" db:"user_id"`
	Subject     string       `json:"subject" db:"subject"`
	Description string       `json:"description" db:"description"`
	Category    string       `json:"category" db:"category"`
	Priority    string       `json:"priority" db:"priority"`
	Status      TicketStatus `json:"status" db:"status"`
	BookingID   string       `json:"bookingId,omitempty" db:"booking_id"`
	CreatedAt   time.Time    `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time    `json:"updatedAt" db:"updated_at"`
}

// TicketMessage is a single message in a ticket thread
type TicketMessage struct {
	ID         string    `json:"id" db:"id"`
	TicketID   string    `json:"ticketId" db:"ticket_id"`
	SenderID   string    `json:"senderId" db:"sender_id"`
	SenderType string    `json:"senderType" db:"sender_type"` // user or agent
	Message    string    `json:"message" db:"message"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// CreateTicketRequest opens a support ticket
type CreateTicketRequest struct {
	Subject     string `json:"subject" validate:"required"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	BookingID   string `json:"bookingId,omitempty"`
}

// AddMessageRequest appends to a ticket thread
type AddMessageRequest struct {
	Message string `json:"message" validate:"required"`
}

// UpdateTicketStatusRequest changes a ticket status
type UpdateTicketStatusRequest struct {
	Status TicketStatus `json:"status" validate:"required"`
}
