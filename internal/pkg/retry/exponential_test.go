package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/troski/troski/internal/pkg/logger"
)

func fastConfig() Config {
	return Config{
		MaxRetries: 2,
		BaseDelay:  time.Millisecond,
		MaxDelay:   5 * time.Millisecond,
		Multiplier: 2,
	}
}

func TestRetrier_SucceedsAfterRetries(t *testing.T) {
	r := New(fastConfig(), logger.NewNopLogger())
	attempts := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("smtp: 421 try again later")
		}
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetrier_GivesUp(t *testing.T) {
	r := New(fastConfig(), logger.NewNopLogger())
	cause := errors.New("connection refused")
	attempts := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return cause
	})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "retry limit exceeded after 3 attempts")
	assert.Equal(t, 3, attempts)
}

func TestRetrier_NotRetryable(t *testing.T) {
	cfg := fastConfig()
	cfg.RetryableFunc = func(err error) bool { return false }
	r := New(cfg, logger.NewNopLogger())
	attempts := 0

	err := r.Execute(context.Background(), func(ctx context.Context) error {
		attempts++
		return errors.New("invalid recipient")
	})

	assert.EqualError(t, err, "invalid recipient")
	assert.Equal(t, 1, attempts)
}

func TestRetrier_ContextCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Hour
	cfg.MaxDelay = time.Hour
	r := New(cfg, logger.NewNopLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := r.Execute(ctx, func(ctx context.Context) error {
		return errors.New("timeout")
	})

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateDelay(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2}, nil)

	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 300*time.Millisecond, r.calculateDelay(5))
}
