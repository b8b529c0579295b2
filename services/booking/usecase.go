package booking

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// BookingUC defines the interface for booking business logic.
// Ride operations never fail with an error: every outcome is an ActionResult.
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/troski/troski/services/booking BookingUC
type BookingUC interface {
	EstimateRide(ctx context.Context, pickup, dropoff models.Location) *models.ActionResult
	BookRide(ctx context.Context, pickup, dropoff models.Location, paymentMethod models.PaymentMethod) *models.ActionResult
	CancelRide(ctx context.Context, bookingID, reason string) *models.ActionResult
	RateDriver(ctx context.Context, bookingID string, rating int, comment string) *models.ActionResult
	GetBooking(ctx context.Context, bookingID string) (*models.BookingResult, error)
}
