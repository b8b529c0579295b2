package booking

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// BookingRepo defines the interface for booking data access operations
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/troski/troski/services/booking BookingRepo
type BookingRepo interface {
	SaveBooking(ctx context.Context, booking *models.BookingResult) error
	GetBooking(ctx context.Context, bookingID string) (*models.BookingResult, error)
}
