package booking

import "errors"

// ErrBookingNotFound is returned when no booking has the requested id
var ErrBookingNotFound = errors.New("booking not found")

// RejectedError is a failure the backend reports with a rider facing message
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return e.Message
}
