package session

import (
	"context"

	"github.com/troski/troski/internal/pkg/constants"
)

// Tokens reads and writes the bearer tokens of the session found in the context.
// It is the token store the upstream API client uses.
type Tokens struct {
	store Store
}

// NewTokens wraps a Store
func NewTokens(store Store) *Tokens {
	return &Tokens{store: store}
}

// AccessToken returns the session's bearer token, or ""
func (t *Tokens) AccessToken(ctx context.Context) string {
	token, _ := t.store.Get(ctx, IDFromContext(ctx), constants.StorageKeyAuthToken)
	return token
}

// RefreshToken returns the session's refresh token, or ""
func (t *Tokens) RefreshToken(ctx context.Context) string {
	token, _ := t.store.Get(ctx, IDFromContext(ctx), constants.StorageKeyRefreshToken)
	return token
}

// SetTokens stores a new token pair. An empty refresh token keeps the current one.
func (t *Tokens) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	sessionID := IDFromContext(ctx)
	if err := t.store.Set(ctx, sessionID, constants.StorageKeyAuthToken, accessToken); err != nil {
		return err
	}
	if refreshToken == "" {
		return nil
	}
	return t.store.Set(ctx, sessionID, constants.StorageKeyRefreshToken, refreshToken)
}

// Clear drops every stored credential of the session, including the cached user
func (t *Tokens) Clear(ctx context.Context) error {
	return t.store.Delete(ctx, IDFromContext(ctx),
		constants.StorageKeyAuthToken,
		constants.StorageKeyRefreshToken,
		constants.StorageKeyUser,
	)
}
