package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/database"
)

func setupRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisStore(&database.RedisClient{Client: client}, ttl), mr
}

func TestStores(t *testing.T) {
	redisStore, _ := setupRedisStore(t, time.Hour)
	stores := map[string]Store{
		"memory": NewMemoryStore(),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			value, err := store.Get(ctx, "s-1", constants.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.Empty(t, value)

			require.NoError(t, store.Set(ctx, "s-1", constants.StorageKeyAuthToken, "token-a"))
			require.NoError(t, store.Set(ctx, "s-2", constants.StorageKeyAuthToken, "token-b"))

			value, err = store.Get(ctx, "s-1", constants.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.Equal(t, "token-a", value)

			require.NoError(t, store.Delete(ctx, "s-1", constants.StorageKeyAuthToken))
			value, err = store.Get(ctx, "s-1", constants.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.Empty(t, value)

			value, err = store.Get(ctx, "s-2", constants.StorageKeyAuthToken)
			require.NoError(t, err)
			assert.Equal(t, "token-b", value)
		})
	}
}

func TestStores_RequireSession(t *testing.T) {
	redisStore, _ := setupRedisStore(t, time.Hour)
	for _, store := range []Store{NewMemoryStore(), redisStore} {
		_, err := store.Get(context.Background(), "", constants.StorageKeyUser)
		assert.ErrorIs(t, err, ErrNoSession)
		assert.ErrorIs(t, store.Set(context.Background(), "", constants.StorageKeyUser, "x"), ErrNoSession)
	}
}

func TestRedisStore_TTL(t *testing.T) {
	store, mr := setupRedisStore(t, 10*time.Minute)

	require.NoError(t, store.Set(context.Background(), "s-1", constants.StorageKeyUser, `{"id":"u-1"}`))
	assert.Equal(t, 10*time.Minute, mr.TTL("session:s-1"))

	mr.FastForward(11 * time.Minute)
	value, err := store.Get(context.Background(), "s-1", constants.StorageKeyUser)
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestTokens(t *testing.T) {
	tokens := NewTokens(NewMemoryStore())
	ctx := WithID(context.Background(), "s-42")

	require.NoError(t, tokens.SetTokens(ctx, "access-1", "refresh-1"))
	assert.Equal(t, "access-1", tokens.AccessToken(ctx))
	assert.Equal(t, "refresh-1", tokens.RefreshToken(ctx))

	require.NoError(t, tokens.SetTokens(ctx, "access-2", ""))
	assert.Equal(t, "access-2", tokens.AccessToken(ctx))
	assert.Equal(t, "refresh-1", tokens.RefreshToken(ctx))

	assert.Empty(t, tokens.AccessToken(WithID(context.Background(), "other")))

	require.NoError(t, tokens.Clear(ctx))
	assert.Empty(t, tokens.AccessToken(ctx))
	assert.Empty(t, tokens.RefreshToken(ctx))
}

func TestIDFromContext(t *testing.T) {
	assert.Equal(t, "", IDFromContext(context.Background()))
	assert.Equal(t, "abc", IDFromContext(WithID(context.Background(), "abc")))
}

func TestUserIDFromContext(t *testing.T) {
	ctx := WithUserID(WithID(context.Background(), "s-1"), "u-1")

	assert.Equal(t, "u-1", UserIDFromContext(ctx))
	assert.Equal(t, "s-1", IDFromContext(ctx))
	assert.Equal(t, "", UserIDFromContext(context.Background()))
}
