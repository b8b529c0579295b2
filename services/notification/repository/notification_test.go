package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/database"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/services/notification"
)

func setupMockRedis(t *testing.T) (*database.RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return &database.RedisClient{Client: client}, mr
}

const owner = "rider-1"

func fixtures() []models.Notification {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Notification{
		{ID: "n-3", UserID: owner, Type: models.NotificationRideAccepted, Title: "three", CreatedAt: now},
		{ID: "n-2", UserID: owner, Type: models.NotificationPromotion, Title: "two", CreatedAt: now.Add(-time.Hour)},
		{ID: "n-1", UserID: owner, Type: models.NotificationRating, Title: "one", IsRead: true, CreatedAt: now.Add(-2 * time.Hour)},
	}
}

func ids(list []models.Notification) []string {
	out := make([]string, 0, len(list))
	for _, n := range list {
		out = append(out, n.ID)
	}
	return out
}

func eachRepo(t *testing.T, fn func(t *testing.T, repo notification.NotificationRepo)) {
	t.Run("redis", func(t *testing.T) {
		redisClient, mr := setupMockRedis(t)
		defer mr.Close()
		fn(t, NewNotificationRepository(redisClient))
	})
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemoryNotificationRepository())
	})
}

func TestNotificationRepo_SeedOnce(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()

		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))
		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))

		list, err := repo.List(ctx, models.RoleRider, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{"n-3", "n-2", "n-1"}, ids(list))

		driver, err := repo.List(ctx, models.RoleDriver, owner)
		require.NoError(t, err)
		assert.Empty(t, driver)
	})
}

func TestNotificationRepo_AddUnshifts(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()
		require.NoError(t, repo.Seed(ctx, models.RoleDriver, fixtures()))

		require.NoError(t, repo.Add(ctx, models.RoleDriver, &models.Notification{ID: "n-4", UserID: owner, Title: "four"}))

		list, err := repo.List(ctx, models.RoleDriver, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{"n-4", "n-3", "n-2", "n-1"}, ids(list))
	})
}

func TestNotificationRepo_MarkRead(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()
		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))

		require.NoError(t, repo.MarkRead(ctx, models.RoleRider, owner, "n-2"))
		require.NoError(t, repo.MarkRead(ctx, models.RoleRider, owner, "n-1"))
		assert.ErrorIs(t, repo.MarkRead(ctx, models.RoleRider, owner, "missing"), notification.ErrNotificationNotFound)

		list, err := repo.List(ctx, models.RoleRider, owner)
		require.NoError(t, err)
		assert.False(t, list[0].IsRead)
		assert.True(t, list[1].IsRead)
		assert.True(t, list[2].IsRead)
		assert.Equal(t, []string{"n-3", "n-2", "n-1"}, ids(list))
	})
}

func TestNotificationRepo_MarkAllRead(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()
		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))

		require.NoError(t, repo.MarkAllRead(ctx, models.RoleRider, owner))
		require.NoError(t, repo.MarkAllRead(ctx, models.RoleRider, owner))

		list, err := repo.List(ctx, models.RoleRider, owner)
		require.NoError(t, err)
		for _, n := range list {
			assert.True(t, n.IsRead, n.ID)
		}
	})
}

func TestNotificationRepo_Delete(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()
		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))

		require.NoError(t, repo.Delete(ctx, models.RoleRider, owner, "n-2"))
		assert.ErrorIs(t, repo.Delete(ctx, models.RoleRider, owner, "n-2"), notification.ErrNotificationNotFound)

		list, err := repo.List(ctx, models.RoleRider, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{"n-3", "n-1"}, ids(list))
	})
}

func TestNotificationRepo_OwnerIsolation(t *testing.T) {
	eachRepo(t, func(t *testing.T, repo notification.NotificationRepo) {
		ctx := context.Background()
		require.NoError(t, repo.Seed(ctx, models.RoleRider, fixtures()))
		require.NoError(t, repo.Add(ctx, models.RoleRider, &models.Notification{ID: "other-1", UserID: "rider-2", Title: "pickup at home"}))

		list, err := repo.List(ctx, models.RoleRider, "rider-2")
		require.NoError(t, err)
		assert.Equal(t, []string{"other-1"}, ids(list))

		list, err = repo.List(ctx, models.RoleRider, owner)
		require.NoError(t, err)
		assert.Equal(t, []string{"n-3", "n-2", "n-1"}, ids(list))

		assert.ErrorIs(t, repo.MarkRead(ctx, models.RoleRider, owner, "other-1"), notification.ErrNotificationNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, models.RoleRider, owner, "other-1"), notification.ErrNotificationNotFound)
		require.NoError(t, repo.MarkAllRead(ctx, models.RoleRider, owner))

		list, err = repo.List(ctx, models.RoleRider, "rider-2")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.False(t, list[0].IsRead)
	})
}

func TestNotificationRepo_RedisKeysPerRole(t *testing.T) {
	redisClient, mr := setupMockRedis(t)
	defer mr.Close()
	repo := NewNotificationRepository(redisClient)

	require.NoError(t, repo.Seed(context.Background(), models.RoleRider, fixtures()))
	require.NoError(t, repo.Add(context.Background(), models.RoleDriver, &models.Notification{ID: "d-1"}))

	rider, err := mr.List("notifications:rider")
	require.NoError(t, err)
	assert.Len(t, rider, 3)
	driver, err := mr.List("notifications:driver")
	require.NoError(t, err)
	assert.Len(t, driver, 1)
}

func TestNotificationRepo_MemoryListIsACopy(t *testing.T) {
	repo := NewMemoryNotificationRepository()
	require.NoError(t, repo.Seed(context.Background(), models.RoleRider, fixtures()))

	list, err := repo.List(context.Background(), models.RoleRider, owner)
	require.NoError(t, err)
	list[0].Title = "changed"

	again, err := repo.List(context.Background(), models.RoleRider, owner)
	require.NoError(t, err)
	assert.Equal(t, "three", again[0].Title)
}
