package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/troski/troski/internal/pkg/constants"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/internal/utils"
	"github.com/troski/troski/services/booking"
)

// EstimateRide quotes a fare between pickup and dropoff
func (uc *BookingUC) EstimateRide(ctx context.Context, pickup, dropoff models.Location) *models.ActionResult {
	pickup = uc.resolveLocation(ctx, pickup)
	dropoff = uc.resolveLocation(ctx, dropoff)

	estimate, err := uc.bookingGW.EstimateRide(ctx, pickup, dropoff)
	if err != nil {
		logger.WarnCtx(ctx, "Fare estimate failed", logger.Err(err))
		return uc.finish(ctx, failure(err, "Unable to estimate fare. Please try again."), err)
	}

	logger.InfoCtx(ctx, "Fare estimated",
		logger.Float64("fare", estimate.Fare),
		logger.Int("duration_min", estimate.Duration),
		logger.Bool("same_cell", utils.SameCell(pickup, dropoff)))

	return uc.finish(ctx, models.Succeeded("Fare estimated successfully", models.EstimateData{
		EstimatedFare: fmt.Sprintf("%.2f", estimate.Fare),
		EstimatedTime: estimate.Duration,
		Estimate:      *estimate,
	}), nil)
}

// BookRide books a ride and assigns a driver
func (uc *BookingUC) BookRide(ctx context.Context, pickup, dropoff models.Location, paymentMethod models.PaymentMethod) *models.ActionResult {
	req := models.BookRequest{
		Pickup:        uc.resolveLocation(ctx, pickup),
		Dropoff:       uc.resolveLocation(ctx, dropoff),
		PaymentMethod: paymentMethod,
	}

	result, err := uc.bookingGW.BookRide(ctx, req)
	if err != nil {
		logger.WarnCtx(ctx, "Ride booking failed", logger.Err(err))
		return uc.finish(ctx, failure(err, "Unable to book ride. Please try again."), err)
	}
	if result.RiderID == "" {
		result.RiderID = session.UserIDFromContext(ctx)
	}

	if err := uc.bookingRepo.SaveBooking(ctx, result); err != nil {
		logger.ErrorCtx(ctx, "Failed to store booking",
			logger.String("booking_id", result.BookingID),
			logger.Err(err))
	}
	uc.publish(ctx, constants.TopicBookingCreated, uc.event(result, ""))

	logger.InfoCtx(ctx, "Ride booked",
		logger.String("booking_id", result.BookingID),
		logger.Float64("fare", result.Fare))

	message := "Ride booked successfully!"
	if result.Driver != nil {
		message = fmt.Sprintf("Ride booked! %s is on the way in %d minutes.", result.Driver.Name, result.EstimatedArrival)
	}
	return uc.finish(ctx, models.Succeeded(message, result), nil)
}

// CancelRide cancels a confirmed booking
func (uc *BookingUC) CancelRide(ctx context.Context, bookingID, reason string) *models.ActionResult {
	existing, result := uc.lookup(ctx, bookingID)
	if result != nil {
		return uc.finish(ctx, result, nil)
	}

	switch existing.Status {
	case models.BookingStatusCancelled:
		return uc.finish(ctx, models.Failed("This ride has already been cancelled.", models.ToastWarning), nil)
	case models.BookingStatusCompleted:
		return uc.finish(ctx, models.Failed("Completed rides cannot be cancelled.", models.ToastWarning), nil)
	}

	if err := uc.bookingGW.CancelRide(ctx, bookingID, reason); err != nil {
		logger.WarnCtx(ctx, "Ride cancellation failed",
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return uc.finish(ctx, failure(err, "Unable to cancel ride. Please try again."), err)
	}

	existing.Status = models.BookingStatusCancelled
	existing.UpdatedAt = uc.now()
	if err := uc.bookingRepo.SaveBooking(ctx, existing); err != nil {
		logger.ErrorCtx(ctx, "Failed to update cancelled booking",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}
	uc.publish(ctx, constants.TopicBookingCancelled, uc.event(existing, reason))

	logger.InfoCtx(ctx, "Ride cancelled", logger.String("booking_id", bookingID))
	return uc.finish(ctx, models.Succeeded("Ride cancelled successfully.", existing), nil)
}

// RateDriver rates the driver of a booking from 1 to 5
func (uc *BookingUC) RateDriver(ctx context.Context, bookingID string, rating int, comment string) *models.ActionResult {
	if rating < 1 || rating > 5 {
		return uc.finish(ctx, models.Failed("Rating must be between 1 and 5.", models.ToastWarning), nil)
	}

	existing, result := uc.lookup(ctx, bookingID)
	if result != nil {
		return uc.finish(ctx, result, nil)
	}
	if existing.Status == models.BookingStatusCancelled {
		return uc.finish(ctx, models.Failed("Cancelled rides cannot be rated.", models.ToastWarning), nil)
	}

	if err := uc.bookingGW.RateDriver(ctx, bookingID, rating, comment); err != nil {
		logger.WarnCtx(ctx, "Driver rating failed",
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return uc.finish(ctx, failure(err, "Unable to submit rating. Please try again."), err)
	}

	existing.Rating = rating
	existing.UpdatedAt = uc.now()
	if err := uc.bookingRepo.SaveBooking(ctx, existing); err != nil {
		logger.ErrorCtx(ctx, "Failed to store rating",
			logger.String("booking_id", bookingID),
			logger.Err(err))
	}

	event := uc.event(existing, "")
	event.Rating = rating
	uc.publish(ctx, constants.TopicDriverRated, event)

	return uc.finish(ctx, models.Succeeded("Thank you for rating your driver!", nil), nil)
}

// GetBooking returns one of the caller's stored bookings
func (uc *BookingUC) GetBooking(ctx context.Context, bookingID string) (*models.BookingResult, error) {
	result, err := uc.load(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking %s: %w", bookingID, err)
	}
	return result, nil
}

// load reads a booking of the caller. Bookings of other riders are reported as not found.
func (uc *BookingUC) load(ctx context.Context, bookingID string) (*models.BookingResult, error) {
	existing, err := uc.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if existing.RiderID != session.UserIDFromContext(ctx) {
		logger.WarnCtx(ctx, "Booking requested by another user", logger.String("booking_id", bookingID))
		return nil, booking.ErrBookingNotFound
	}
	return existing, nil
}

// lookup loads a booking, or returns the failure result to resolve with
func (uc *BookingUC) lookup(ctx context.Context, bookingID string) (*models.BookingResult, *models.ActionResult) {
	existing, err := uc.load(ctx, bookingID)
	if errors.Is(err, booking.ErrBookingNotFound) {
		return nil, models.Failed("Booking not found.", models.ToastWarning)
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to load booking",
			logger.String("booking_id", bookingID),
			logger.Err(err))
		return nil, models.Failed("Something went wrong. Please try again.", models.ToastError)
	}
	return existing, nil
}

// resolveLocation geocodes a location that only carries an address
func (uc *BookingUC) resolveLocation(ctx context.Context, loc models.Location) models.Location {
	if loc.HasCoordinates() || uc.geocoder == nil || !uc.geocoder.Enabled() {
		return loc
	}

	query := loc.Label()
	if query == "" {
		return loc
	}

	found, err := uc.geocoder.Geocode(ctx, query)
	if err != nil {
		logger.WarnCtx(ctx, "Geocoding failed", logger.String("query", query), logger.Err(err))
		return loc
	}
	return loc.WithCoordinates(found.Latitude, found.Longitude)
}

func (uc *BookingUC) event(b *models.BookingResult, reason string) models.BookingEvent {
	event := models.BookingEvent{
		BookingID:     b.BookingID,
		RiderID:       b.RiderID,
		Status:        b.Status,
		Fare:          b.Fare,
		PickupGeohash: b.PickupLocation.Geohash(),
		Pickup:        b.PickupLocation.Label(),
		Dropoff:       b.DropoffLocation.Label(),
		Reason:        reason,
		OccurredAt:    uc.now(),
	}
	if b.Driver != nil {
		event.DriverID = b.Driver.ID
		event.DriverName = b.Driver.Name
	}
	return event
}

func (uc *BookingUC) publish(ctx context.Context, topic string, event models.BookingEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.Publish(topic, event); err != nil {
		logger.ErrorCtx(ctx, "Failed to publish booking event",
			logger.String("topic", topic),
			logger.String("booking_id", event.BookingID),
			logger.Err(err))
	}
}

// finish toasts the result to the session. Upstream API errors were already
// toasted by the API client and are not repeated.
func (uc *BookingUC) finish(ctx context.Context, result *models.ActionResult, cause error) *models.ActionResult {
	if uc.notifier == nil {
		return result
	}
	if _, ok := apiclient.AsAPIError(cause); ok {
		return result
	}
	uc.notifier.Notify(ctx, result.Message, result.ToastType)
	return result
}

// failure folds any gateway error into a failed result
func failure(err error, fallback string) *models.ActionResult {
	var rejected *booking.RejectedError
	if errors.As(err, &rejected) {
		return models.Failed(rejected.Message, models.ToastError)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return models.Failed("The request was cancelled. Please try again.", models.ToastWarning)
	}
	if apiErr, ok := apiclient.AsAPIError(err); ok {
		toastType := models.ToastError
		if apiErr.Kind == apiclient.KindValidation || apiErr.Kind == apiclient.KindNotFound {
			toastType = models.ToastWarning
		}
		return models.Failed(apiErr.Message, toastType)
	}
	return models.Failed(fallback, models.ToastError)
}
