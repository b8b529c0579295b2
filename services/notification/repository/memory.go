package repository

import (
	"context"
	"sync"

	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/notification"
)

// MemoryNotificationRepo keeps one slice per role in process
type MemoryNotificationRepo struct {
	mu     sync.RWMutex
	byRole map[models.Role][]models.Notification
}

// NewMemoryNotificationRepository creates an empty in-memory repository
func NewMemoryNotificationRepository() *MemoryNotificationRepo {
	return &MemoryNotificationRepo{byRole: make(map[models.Role][]models.Notification)}
}

// Seed stores the fixtures when the role has no notifications yet
func (r *MemoryNotificationRepo) Seed(ctx context.Context, role models.Role, fixtures []models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.byRole[role]) == 0 {
		r.byRole[role] = append([]models.Notification(nil), fixtures...)
	}
	return nil
}

// List returns a copy of the user's notifications, newest first
func (r *MemoryNotificationRepo) List(ctx context.Context, role models.Role, userID string) ([]models.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Notification{}
	for _, n := range r.byRole[role] {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Add puts the notification in front
func (r *MemoryNotificationRepo) Add(ctx context.Context, role models.Role, n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byRole[role] = append([]models.Notification{*n}, r.byRole[role]...)
	return nil
}

// MarkRead marks one of the user's notifications as read
func (r *MemoryNotificationRepo) MarkRead(ctx context.Context, role models.Role, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byRole[role]
	for i := range list {
		if list[i].ID == id && list[i].UserID == userID {
			list[i].IsRead = true
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}

// MarkAllRead marks every notification of the user as read
func (r *MemoryNotificationRepo) MarkAllRead(ctx context.Context, role models.Role, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.byRole[role]
	for i := range list {
		if list[i].UserID == userID {
			list[i].IsRead = true
		}
	}
	return nil
}

// Delete filters the user's notification out
func (r *MemoryNotificationRepo) Delete(ctx context.Context, role models.Role, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byRole[role]
	for i := range list {
		if list[i].ID == id && list[i].UserID == userID {
			kept := make([]models.Notification, 0, len(list)-1)
			kept = append(kept, list[:i]...)
			r.byRole[role] = append(kept, list[i+1:]...)
			return nil
		}
	}
	return notification.ErrNotificationNotFound
}
