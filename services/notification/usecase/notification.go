package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	"github.com/troski/troski/services/notification"
)

// Role returns the role the use case was built for
func (uc *NotificationUC) Role() models.Role {
	return uc.role
}

func (uc *NotificationUC) ready() error {
	if uc == nil || uc.notificationRepo == nil || !uc.role.Valid() {
		return notification.ErrNotInitialized
	}
	return nil
}

// owner returns the signed in user whose notifications the call may touch
func (uc *NotificationUC) owner(ctx context.Context) (string, error) {
	if err := uc.ready(); err != nil {
		return "", err
	}
	userID := session.UserIDFromContext(ctx)
	if userID == "" {
		return "", notification.ErrNoUser
	}
	return userID, nil
}

// GetNotifications returns the caller's unexpired notifications, newest first
func (uc *NotificationUC) GetNotifications(ctx context.Context) ([]models.Notification, error) {
	userID, err := uc.owner(ctx)
	if err != nil {
		return nil, err
	}

	all, err := uc.notificationRepo.List(ctx, uc.role, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	now := uc.now()
	visible := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !models.IsExpired(n.ExpiresAt, now) {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// GetUnreadCount counts unread, unexpired notifications
func (uc *NotificationUC) GetUnreadCount(ctx context.Context) (int, error) {
	notifications, err := uc.GetNotifications(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if !n.IsRead {
			count++
		}
	}
	return count, nil
}

// AddNotification stores a new notification in front of the others. A signed in caller
// always owns what it adds; req.UserID only addresses a recipient from background consumers.
func (uc *NotificationUC) AddNotification(ctx context.Context, req models.CreateNotificationRequest) (*models.Notification, error) {
	if err := uc.ready(); err != nil {
		return nil, err
	}

	userID := session.UserIDFromContext(ctx)
	if userID == "" {
		userID = req.UserID
	}
	if userID == "" {
		return nil, notification.ErrNoUser
	}

	n := &models.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		Data:      req.Data,
		CreatedAt: uc.now(),
		ExpiresAt: req.ExpiresAt,
	}
	if err := uc.notificationRepo.Add(ctx, uc.role, n); err != nil {
		return nil, fmt.Errorf("failed to add notification: %w", err)
	}

	logger.DebugCtx(ctx, "Notification added",
		logger.String("role", string(uc.role)),
		logger.String("notification_id", n.ID),
		logger.String("type", string(n.Type)))
	return n, nil
}

// MarkAsRead marks one of the caller's notifications as read
func (uc *NotificationUC) MarkAsRead(ctx context.Context, id string) error {
	userID, err := uc.owner(ctx)
	if err != nil {
		return err
	}
	if err := uc.notificationRepo.MarkRead(ctx, uc.role, userID, id); err != nil {
		return fmt.Errorf("failed to mark notification %s as read: %w", id, err)
	}
	return nil
}

// MarkAllAsRead marks every notification of the caller as read
func (uc *NotificationUC) MarkAllAsRead(ctx context.Context) error {
	userID, err := uc.owner(ctx)
	if err != nil {
		return err
	}
	if err := uc.notificationRepo.MarkAllRead(ctx, uc.role, userID); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// DeleteNotification removes one of the caller's notifications
func (uc *NotificationUC) DeleteNotification(ctx context.Context, id string) error {
	userID, err := uc.owner(ctx)
	if err != nil {
		return err
	}
	if err := uc.notificationRepo.Delete(ctx, uc.role, userID, id); err != nil {
		return fmt.Errorf("failed to delete notification %s: %w", id, err)
	}
	return nil
}
