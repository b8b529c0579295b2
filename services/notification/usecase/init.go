package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/notification"
)

// NotificationUC implements the notification use case for a single role.
// The zero value is not initialized and rejects every call.
type NotificationUC struct {
	role             models.Role
	notificationRepo notification.NotificationRepo
	now              func() time.Time
}

// NewNotificationUC creates the notification use case of role and seeds its fixtures
func NewNotificationUC(ctx context.Context, role models.Role, notificationRepo notification.NotificationRepo) (*NotificationUC, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", notification.ErrInvalidRole, role)
	}

	uc := &NotificationUC{
		role:             role,
		notificationRepo: notificationRepo,
		now:              models.Now,
	}
	if err := notificationRepo.Seed(ctx, role, Fixtures(role, uc.now())); err != nil {
		return nil, fmt.Errorf("failed to seed %s notifications: %w", role, err)
	}
	return uc, nil
}
