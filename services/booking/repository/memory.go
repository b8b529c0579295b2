package repository

import (
	"context"
	"sync"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/booking"
)

// MemoryBookingRepo keeps bookings in process, for mock mode without Redis
type MemoryBookingRepo struct {
	mu       sync.RWMutex
	bookings map[string]models.BookingResult
}

// NewMemoryBookingRepository creates an empty in-memory booking repository
func NewMemoryBookingRepository() *MemoryBookingRepo {
	return &MemoryBookingRepo{bookings: make(map[string]models.BookingResult)}
}

// SaveBooking stores a copy of the booking
func (r *MemoryBookingRepo) SaveBooking(ctx context.Context, b *models.BookingResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.BookingID] = *b
	return nil
}

// GetBooking returns a copy of the stored booking
func (r *MemoryBookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.BookingResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, booking.ErrBookingNotFound
	}
	return &b, nil
}
