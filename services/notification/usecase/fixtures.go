package usecase

import (
	"time"

	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/models"
)

// Fixtures returns the sample notifications of a role, newest first
func Fixtures(role models.Role, now time.Time) []models.Notification {
	switch role {
	case models.RoleRider:
		return []models.Notification{
			{
				ID:        "rider-notif-3",
				UserID:    constants.MockRiderID,
				Type:      models.NotificationRideAccepted,
				Title:     "Driver on the way",
				Message:   "Kwame is 3 minutes away in a Toyota Corolla (GR-2345-21).",
				CreatedAt: now.Add(-5 * time.Minute),
			},
			{
				ID:        "rider-notif-2",
				UserID:    constants.MockRiderID,
				Type:      models.NotificationPromotion,
				Title:     "Weekend offer",
				Message:   "Get 20% off your next 3 rides this weekend.",
				CreatedAt: now.Add(-3 * time.Hour),
			},
			{
				ID:        "rider-notif-1",
				UserID:    constants.MockRiderID,
				Type:      models.NotificationRideCompleted,
				Title:     "Trip completed",
				Message:   "Your trip to Kotoka International Airport cost GHS 24.50. Rate your driver!",
				IsRead:    true,
				Data:      map[string]interface{}{"fare": 24.5},
				CreatedAt: now.Add(-24 * time.Hour),
			},
		}
	case models.RoleDriver:
		return []models.Notification{
			{
				ID:        "driver-notif-3",
				UserID:    constants.MockDriverID,
				Type:      models.NotificationRideRequest,
				Title:     "New ride request",
				Message:   "Pickup at Accra Mall, 1.2 km away.",
				CreatedAt: now.Add(-2 * time.Minute),
			},
			{
				ID:        "driver-notif-2",
				UserID:    constants.MockDriverID,
				Type:      models.NotificationPayment,
				Title:     "Payout sent",
				Message:   "GHS 312.40 was sent to your mobile money wallet.",
				CreatedAt: now.Add(-6 * time.Hour),
			},
			{
				ID:        "driver-notif-1",
				UserID:    constants.MockDriverID,
				Type:      models.NotificationRating,
				Title:     "New rating",
				Message:   "A rider rated you 5 stars.",
				IsRead:    true,
				CreatedAt: now.Add(-48 * time.Hour),
			},
		}
	}
	return nil
}
