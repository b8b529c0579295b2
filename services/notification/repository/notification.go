package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/database"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/notification"
)

// maxTxRetries bounds optimistic retries when another writer touches the list
const maxTxRetries = 3

// NotificationRepo stores each role's notifications in a Redis list, newest at the head
type NotificationRepo struct {
	redisClient *database.RedisClient
}

// NewNotificationRepository creates a Redis backed notification repository
func NewNotificationRepository(redisClient *database.RedisClient) *NotificationRepo {
	return &NotificationRepo{redisClient: redisClient}
}

func listKey(role models.Role) string {
	return fmt.Sprintf(constants.KeyNotifications, role)
}

// Seed pushes the fixtures when the role's list is empty
func (r *NotificationRepo) Seed(ctx context.Context, role models.Role, fixtures []models.Notification) error {
	if len(fixtures) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(fixtures))
	for _, n := range fixtures {
		data, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		values = append(values, data)
	}

	key := listKey(role)
	return r.update(ctx, key, func(tx *redis.Tx) error {
		n, err := tx.LLen(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, key, values...)
			return nil
		})
		return err
	})
}

// List returns the user's notifications, newest first
func (r *NotificationRepo) List(ctx context.Context, role models.Role, userID string) ([]models.Notification, error) {
	raw, err := r.redisClient.Client.LRange(ctx, listKey(role), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]models.Notification, 0, len(raw))
	for _, item := range raw {
		var n models.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// Add pushes the notification to the head of the list
func (r *NotificationRepo) Add(ctx context.Context, role models.Role, n *models.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := r.redisClient.Client.LPush(ctx, listKey(role), data).Err(); err != nil {
		return fmt.Errorf("failed to add notification: %w", err)
	}
	return nil
}

// MarkRead marks one of the user's notifications as read in place
func (r *NotificationRepo) MarkRead(ctx context.Context, role models.Role, userID, id string) error {
	key := listKey(role)
	return r.update(ctx, key, func(tx *redis.Tx) error {
		items, err := loadList(ctx, tx, key)
		if err != nil {
			return err
		}
		for i, item := range items {
			if item.n.ID != id || item.n.UserID != userID {
				continue
			}
			if item.n.IsRead {
				return nil
			}
			item.n.IsRead = true
			data, err := json.Marshal(item.n)
			if err != nil {
				return err
			}
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.LSet(ctx, key, int64(i), data)
				return nil
			})
			return err
		}
		return notification.ErrNotificationNotFound
	})
}

// MarkAllRead marks every unread notification of the user as read
func (r *NotificationRepo) MarkAllRead(ctx context.Context, role models.Role, userID string) error {
	key := listKey(role)
	return r.update(ctx, key, func(tx *redis.Tx) error {
		items, err := loadList(ctx, tx, key)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for i, item := range items {
				if item.n.IsRead || item.n.UserID != userID {
					continue
				}
				item.n.IsRead = true
				data, err := json.Marshal(item.n)
				if err != nil {
					return err
				}
				pipe.LSet(ctx, key, int64(i), data)
			}
			return nil
		})
		return err
	})
}

// Delete removes the user's notification from the list
func (r *NotificationRepo) Delete(ctx context.Context, role models.Role, userID, id string) error {
	key := listKey(role)
	return r.update(ctx, key, func(tx *redis.Tx) error {
		items, err := loadList(ctx, tx, key)
		if err != nil {
			return err
		}
		for _, item := range items {
			if item.n.ID != id || item.n.UserID != userID {
				continue
			}
			_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.LRem(ctx, key, 1, item.raw)
				return nil
			})
			return err
		}
		return notification.ErrNotificationNotFound
	})
}

type listItem struct {
	raw string
	n   models.Notification
}

func loadList(ctx context.Context, tx *redis.Tx, key string) ([]listItem, error) {
	raw, err := tx.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	items := make([]listItem, 0, len(raw))
	for _, item := range raw {
		var n models.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			return nil, fmt.Errorf("failed to unmarshal notification: %w", err)
		}
		items = append(items, listItem{raw: item, n: n})
	}
	return items, nil
}

// update runs fn in a WATCH transaction on key, retrying when the list changed underneath
func (r *NotificationRepo) update(ctx context.Context, key string, fn func(tx *redis.Tx) error) error {
	for i := 0; i < maxTxRetries; i++ {
		err := r.redisClient.Client.Watch(ctx, fn, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil && !errors.Is(err, notification.ErrNotificationNotFound) {
			return fmt.Errorf("notification update failed: %w", err)
		}
		return err
	}
	return fmt.Errorf("notification update failed: %w", redis.TxFailedErr)
}
