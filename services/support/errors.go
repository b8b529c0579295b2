package support

import "errors"

var (
	// ErrTicketNotFound is returned for unknown tickets and tickets of other users
	ErrTicketNotFound = errors.New("ticket not found")
	// ErrTicketClosed is returned when posting to a closed ticket
	ErrTicketClosed = errors.New("ticket is closed")
	// ErrInvalidStatus is returned for unknown ticket statuses
	ErrInvalidStatus = errors.New("invalid ticket status")
	// ErrNoUser is returned when the request carries no signed in user
	ErrNoUser = errors.New("no signed in user")
)
