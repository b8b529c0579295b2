package notification

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// NotificationUC defines the notification operations of one role
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/troski/troski/services/notification NotificationUC
type NotificationUC interface {
	Role() models.Role
	GetNotifications(ctx context.Context) ([]models.Notification, error)
	GetUnreadCount(ctx context.Context) (int, error)
	AddNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error)
	MarkAsRead(ctx context.Context, id string) error
	MarkAllAsRead(ctx context.Context) error
	DeleteNotification(ctx context.Context, id string) error
}
