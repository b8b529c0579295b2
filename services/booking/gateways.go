package booking

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// BookingGW performs ride operations against a backend, simulated or live
//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/troski/troski/services/booking BookingGW,EventPublisher,Notifier,Geocoder
type BookingGW interface {
	EstimateRide(ctx context.Context, pickup, dropoff models.Location) (*models.FareEstimateResult, error)
	BookRide(ctx context.Context, req models.BookRequest) (*models.BookingResult, error)
	CancelRide(ctx context.Context, bookingID, reason string) error
	RateDriver(ctx context.Context, bookingID string, rating int, comment string) error
}

// EventPublisher publishes booking events to the message bus
type EventPublisher interface {
	Publish(topic string, message interface{}) error
}

// Notifier shows a toast to the session in ctx
type Notifier interface {
	Notify(ctx context.Context, message string, toastType models.ToastType)
}

// Geocoder resolves a free text address to coordinates
type Geocoder interface {
	Enabled() bool
	Geocode(ctx context.Context, query string) (models.Location, error)
}
