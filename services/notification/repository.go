package notification

import (
	"context"

	"github.com/troski/troski/internal/pkg/models"
)

// NotificationRepo stores notifications per role, newest first. Reads and writes
// only see the notifications owned by userID.
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/troski/troski/services/notification NotificationRepo
type NotificationRepo interface {
	Seed(ctx context.Context, role models.Role, fixtures []models.Notification) error
	List(ctx context.Context, role models.Role, userID string) ([]models.Notification, error)
	Add(ctx context.Context, role models.Role, n *models.Notification) error
	MarkRead(ctx context.Context, role models.Role, userID, id string) error
	MarkAllRead(ctx context.Context, role models.Role, userID string) error
	Delete(ctx context.Context, role models.Role, userID, id string) error
}
