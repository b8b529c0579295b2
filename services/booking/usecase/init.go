package usecase

import (
	"time"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/booking"
)

// BookingUC implements the booking use case interface
type BookingUC struct {
	bookingGW   booking.BookingGW
	bookingRepo booking.BookingRepo
	publisher   booking.EventPublisher
	notifier    booking.Notifier
	geocoder    booking.Geocoder
	now         func() time.Time
}

// NewBookingUC creates a new booking use case. The publisher, notifier and geocoder are optional.
func NewBookingUC(
	bookingGW booking.BookingGW,
	bookingRepo booking.BookingRepo,
	publisher booking.EventPublisher,
	notifier booking.Notifier,
	geocoder booking.Geocoder,
) *BookingUC {
	return &BookingUC{
		bookingGW:   bookingGW,
		bookingRepo: bookingRepo,
		publisher:   publisher,
		notifier:    notifier,
		geocoder:    geocoder,
		now:         models.Now,
	}
}
