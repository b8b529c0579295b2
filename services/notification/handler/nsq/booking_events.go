package nsq

import (
	"context"
	"fmt"

	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	nsqpkg "github.com/troski/troski/internal/pkg/nsq"
	"github.com/troski/troski/services/notification"
)

// BookingEventHandler turns booking events into rider and driver notifications
type BookingEventHandler struct {
	riderUC   notification.NotificationUC
	driverUC  notification.NotificationUC
	consumers []*nsqpkg.Consumer
}

// NewBookingEventHandler creates a new booking event handler
func NewBookingEventHandler(riderUC, driverUC notification.NotificationUC) *BookingEventHandler {
	return &BookingEventHandler{
		riderUC:  riderUC,
		driverUC: driverUC,
	}
}

// InitConsumers subscribes to the booking topics
func (h *BookingEventHandler) InitConsumers(cfg models.NSQConfig) error {
	handlers := map[string]nsqpkg.MessageHandler{
		constants.TopicBookingCreated:   h.handleBookingCreated,
		constants.TopicBookingCancelled: h.handleBookingCancelled,
		constants.TopicDriverRated:      h.handleDriverRated,
	}

	for topic, handler := range handlers {
		consumer, err := nsqpkg.NewConsumer(topic, cfg.NotificationsCh, handler)
		if err != nil {
			h.Stop()
			return fmt.Errorf("failed to create consumer for %s: %w", topic, err)
		}
		if err := consumer.Connect(cfg.NSQDAddress, cfg.LookupdAddress); err != nil {
			consumer.Stop()
			h.Stop()
			return fmt.Errorf("failed to subscribe to %s: %w", topic, err)
		}
		h.consumers = append(h.consumers, consumer)
	}

	logger.Info("Booking event consumers started", logger.Int("topics", len(handlers)))
	return nil
}

// Stop stops every consumer
func (h *BookingEventHandler) Stop() {
	for _, c := range h.consumers {
		c.Stop()
	}
	h.consumers = nil
}

func (h *BookingEventHandler) handleBookingCreated(msg []byte) error {
	var event models.BookingEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal booking created event", logger.Err(err))
		return err
	}

	logger.Info("Received booking created event",
		logger.String("booking_id", event.BookingID),
		logger.String("driver_id", event.DriverID))

	ctx := context.Background()
	data := map[string]interface{}{"bookingId": event.BookingID}

	if err := h.notify(ctx, h.riderUC, models.CreateNotificationRequest{
		UserID:  event.RiderID,
		Type:    models.NotificationRideAccepted,
		Title:   "Ride booked",
		Message: fmt.Sprintf("%s is on the way to %s.", event.DriverName, event.Pickup),
		Data:    data,
	}); err != nil {
		return err
	}
	return h.notify(ctx, h.driverUC, models.CreateNotificationRequest{
		UserID:  event.DriverID,
		Type:    models.NotificationRideRequest,
		Title:   "New ride request",
		Message: fmt.Sprintf("Pickup at %s, drop off at %s.", event.Pickup, event.Dropoff),
		Data:    data,
	})
}

func (h *BookingEventHandler) handleBookingCancelled(msg []byte) error {
	var event models.BookingEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal booking cancelled event", logger.Err(err))
		return err
	}

	logger.Info("Received booking cancelled event",
		logger.String("booking_id", event.BookingID),
		logger.String("reason", event.Reason))

	ctx := context.Background()
	message := "Your ride was cancelled."
	if event.Reason != "" {
		message = fmt.Sprintf("Your ride was cancelled: %s", event.Reason)
	}
	data := map[string]interface{}{"bookingId": event.BookingID}

	if err := h.notify(ctx, h.riderUC, models.CreateNotificationRequest{
		UserID:  event.RiderID,
		Type:    models.NotificationRideCancelled,
		Title:   "Ride cancelled",
		Message: message,
		Data:    data,
	}); err != nil {
		return err
	}
	if event.DriverID == "" {
		return nil
	}
	return h.notify(ctx, h.driverUC, models.CreateNotificationRequest{
		UserID:  event.DriverID,
		Type:    models.NotificationRideCancelled,
		Title:   "Ride cancelled",
		Message: "The rider cancelled the trip.",
		Data:    data,
	})
}

func (h *BookingEventHandler) handleDriverRated(msg []byte) error {
	var event models.BookingEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal driver rated event", logger.Err(err))
		return err
	}

	logger.Info("Received driver rated event",
		logger.String("booking_id", event.BookingID),
		logger.Int("rating", event.Rating))

	stars := "stars"
	if event.Rating == 1 {
		stars = "star"
	}
	return h.notify(context.Background(), h.driverUC, models.CreateNotificationRequest{
		UserID:  event.DriverID,
		Type:    models.NotificationRating,
		Title:   "New rating",
		Message: fmt.Sprintf("A rider rated you %d %s.", event.Rating, stars),
		Data:    map[string]interface{}{"bookingId": event.BookingID, "rating": event.Rating},
	})
}

func (h *BookingEventHandler) notify(ctx context.Context, uc notification.NotificationUC, req models.CreateNotificationRequest) error {
	if uc == nil {
		return nil
	}
	if _, err := uc.AddNotification(ctx, req); err != nil {
		return fmt.Errorf("failed to store %s notification: %w", req.Type, err)
	}
	return nil
}
