package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/database"
)

// RedisStore keeps each session as a hash, refreshed to ttl on every write
type RedisStore struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewRedisStore creates a Redis backed Store
func NewRedisStore(redisClient *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{redisClient: redisClient, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID, key string) (string, error) {
	if sessionID == "" {
		return "", ErrNoSession
	}
	value, err := s.redisClient.Client.HGet(ctx, fmt.Sprintf(constants.KeySession, sessionID), key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session: %w", err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	hashKey := fmt.Sprintf(constants.KeySession, sessionID)

	pipe := s.redisClient.Client.TxPipeline()
	pipe.HSet(ctx, hashKey, key, value)
	if s.ttl > 0 {
		pipe.Expire(ctx, hashKey, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if sessionID == "" {
		return ErrNoSession
	}
	if len(keys) == 0 {
		return nil
	}
	if err := s.redisClient.Client.HDel(ctx, fmt.Sprintf(constants.KeySession, sessionID), keys...).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
