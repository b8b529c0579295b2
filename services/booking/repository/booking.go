package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/database"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/booking"
)

// BookingRepo implements the booking repository on Redis
type BookingRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewBookingRepository creates a Redis backed booking repository
func NewBookingRepository(cfg *models.Config, redisClient *database.RedisClient) *BookingRepo {
	ttl := cfg.Booking.BookingTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &BookingRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveBooking stores the booking, refreshing its expiry
func (r *BookingRepo) SaveBooking(ctx context.Context, b *models.BookingResult) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	key := fmt.Sprintf(constants.KeyBooking, b.BookingID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store booking: %w", err)
	}
	return nil
}

// GetBooking loads a booking by id
func (r *BookingRepo) GetBooking(ctx context.Context, bookingID string) (*models.BookingResult, error) {
	key := fmt.Sprintf(constants.KeyBooking, bookingID)
	data, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, booking.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	var b models.BookingResult
	if err := json.Unmarshal([]byte(data), &b); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking: %w", err)
	}
	return &b, nil
}
