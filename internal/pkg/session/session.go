package session

import (
	"context"
	"errors"
)

// ErrNoSession is returned when a store operation runs without a session id
var ErrNoSession = errors.New("no session in context")

// Store keeps the client storage keys of a browser session
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Delete(ctx context.Context, sessionID string, keys ...string) error
}

type (
	sessionKey struct{}
	userKey    struct{}
)

// WithID stores the session id in the context
func WithID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionKey{}, sessionID)
}

// IDFromContext returns the session id, or "" when none is set
func IDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionKey{}).(string)
	return id
}

// WithUserID stores the signed in user id in the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userKey{}, userID)
}

// UserIDFromContext returns the signed in user id, or "" for anonymous requests
func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(userKey{}).(string)
	return id
}
