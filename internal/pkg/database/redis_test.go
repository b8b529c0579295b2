package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/models"
)

func setupMiniRedis(t *testing.T) (*RedisClient, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &RedisClient{Client: client}, mr
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "127.0.0.1",
		Port:     1,
		PoolSize: 1,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestNewRedisClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	config := models.RedisConfig{
		Host:     mr.Host(),
		Port:     mustPort(t, mr),
		PoolSize: 2,
	}

	client, err := NewRedisClient(config)
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.GetClient())
	assert.NoError(t, client.Ping(context.Background()))
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "booking:b-1", `{"bookingId":"b-1"}`, time.Hour))

	value, err := client.Get(ctx, "booking:b-1")
	require.NoError(t, err)
	assert.Equal(t, `{"bookingId":"b-1"}`, value)
	assert.Equal(t, time.Hour, mr.TTL("booking:b-1"))

	require.NoError(t, client.Delete(ctx, "booking:b-1"))
	_, err = client.Get(ctx, "booking:b-1")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestRedisClient_Expiration(t *testing.T) {
	client, mr := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "short", "lived", time.Second))
	mr.FastForward(2 * time.Second)

	_, err := client.Get(ctx, "short")
	assert.ErrorIs(t, err, redis.Nil)
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}
