package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/jwt"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
)

func newSessionContext(t *testing.T, access, refresh string) (context.Context, *session.Tokens) {
	t.Helper()
	tokens := session.NewTokens(session.NewMemoryStore())
	ctx := session.WithID(context.Background(), "s-1")
	if access != "" {
		require.NoError(t, tokens.SetTokens(ctx, access, refresh))
	}
	return ctx, tokens
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name            string
		config          Config
		expectedBaseURL string
		expectedTimeout time.Duration
	}{
		{
			name:            "Valid configuration",
			config:          Config{BaseURL: "https://api.troski.app", Timeout: 10 * time.Second},
			expectedBaseURL: "https://api.troski.app",
			expectedTimeout: 10 * time.Second,
		},
		{
			name:            "With trailing slash",
			config:          Config{BaseURL: "https://api.troski.app/"},
			expectedBaseURL: "https://api.troski.app",
			expectedTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.Equal(t, tt.expectedBaseURL, client.baseURL)
			assert.Equal(t, tt.expectedTimeout, client.httpClient.Timeout)
			assert.Equal(t, "/auth/refresh-token", client.refreshPath)
			assert.Equal(t, "/signin", client.signInPath)
		})
	}
}

func TestClient_GetAttachesBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/bookings/b-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "Bearer access-1", r.Header.Get("Authorization"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"bookingId":"b-1","status":"confirmed"}`))
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, "access-1", "refresh-1")
	client := NewClient(Config{BaseURL: server.URL}).WithTokenStore(tokens)

	var booking models.BookingResult
	require.NoError(t, client.Get(ctx, "/bookings/b-1", &booking))
	assert.Equal(t, "b-1", booking.BookingID)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
}

func TestClient_RefreshesOnceAndRetries(t *testing.T) {
	var refreshCalls, calls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh-token":
			atomic.AddInt32(&refreshCalls, 1)
			var req models.RefreshRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "refresh-1", req.RefreshToken)
			assert.Empty(t, r.Header.Get("Authorization"))
			w.Write([]byte(`{"token":"access-2","refreshToken":"refresh-2"}`))
		case "/auth/me":
			atomic.AddInt32(&calls, 1)
			if r.Header.Get("Authorization") != "Bearer access-2" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			w.Write([]byte(`{"id":"u-1","email":"ama@troski.app"}`))
		}
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, "access-1", "refresh-1")
	client := NewClient(Config{BaseURL: server.URL}).WithTokenStore(tokens)

	var user models.User
	require.NoError(t, client.Get(ctx, "/auth/me", &user))

	assert.Equal(t, "u-1", user.ID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, "access-2", tokens.AccessToken(ctx))
	assert.Equal(t, "refresh-2", tokens.RefreshToken(ctx))
}

func TestClient_SecondUnauthorizedRedirects(t *testing.T) {
	var refreshCalls, calls int32
	var hookCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
			w.Write([]byte(`{"token":"access-2"}`))
			return
		}
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, "access-1", "refresh-1")
	client := NewClient(Config{BaseURL: server.URL}).
		WithTokenStore(tokens).
		WithErrorHook(func(ctx context.Context, err *APIError) { atomic.AddInt32(&hookCalls, 1) })

	err := client.Post(ctx, "/bookings", map[string]string{"paymentMethod": "cash"}, nil)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindUnauthorized, apiErr.Kind)
	assert.Equal(t, "/signin", apiErr.Redirect)
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&hookCalls))
	assert.Empty(t, tokens.AccessToken(ctx))
	assert.Empty(t, tokens.RefreshToken(ctx))
}

func TestClient_UnauthorizedWithoutRefreshToken(t *testing.T) {
	var refreshCalls int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token revoked"}`))
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, "access-1", "")
	client := NewClient(Config{BaseURL: server.URL, SignInPath: "/login"}).WithTokenStore(tokens)

	err := client.Get(ctx, "/notifications", nil)

	assert.True(t, IsKind(err, KindUnauthorized))
	apiErr, _ := AsAPIError(err)
	assert.Equal(t, "/login", apiErr.Redirect)
	assert.Equal(t, "Token revoked", apiErr.Message)
	assert.Equal(t, int32(0), atomic.LoadInt32(&refreshCalls))
	assert.Empty(t, tokens.AccessToken(ctx))
}

func TestClient_ErrorMapping(t *testing.T) {
	tests := []struct {
		name            string
		status          int
		body            string
		expectedKind    ErrorKind
		expectedMessage string
	}{
		{name: "forbidden", status: http.StatusForbidden, expectedKind: KindForbidden, expectedMessage: MessageForbidden},
		{name: "not found", status: http.StatusNotFound, expectedKind: KindNotFound, expectedMessage: MessageNotFound},
		{name: "validation with server message", status: http.StatusUnprocessableEntity, body: `{"message":"Email already taken"}`, expectedKind: KindValidation, expectedMessage: "Email already taken"},
		{name: "server error", status: http.StatusInternalServerError, body: `not json`, expectedKind: KindServer, expectedMessage: MessageServer},
		{name: "bad gateway", status: http.StatusBadGateway, expectedKind: KindServer, expectedMessage: MessageServer},
		{name: "conflict", status: http.StatusConflict, expectedKind: KindUnknown, expectedMessage: MessageUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var hooked *APIError
			client := NewClient(Config{BaseURL: server.URL}).
				WithErrorHook(func(ctx context.Context, err *APIError) { hooked = err })

			err := client.Get(context.Background(), "/anything", nil)

			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, tt.expectedKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Same(t, apiErr, hooked)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	var hooked *APIError
	client := NewClient(Config{BaseURL: url, Timeout: time.Second}).
		WithErrorHook(func(ctx context.Context, err *APIError) { hooked = err })

	err := client.Get(context.Background(), "/bookings", nil)

	assert.True(t, IsKind(err, KindNetwork))
	require.NotNil(t, hooked)
	assert.Equal(t, MessageNetwork, hooked.Message)
	assert.Error(t, hooked.Unwrap())
}

func TestClient_UndecodableResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookingId": 42`))
	}))
	defer server.Close()

	var hooked *APIError
	client := NewClient(Config{BaseURL: server.URL, Timeout: time.Second}).
		WithErrorHook(func(ctx context.Context, err *APIError) { hooked = err })

	var out models.BookingResult
	err := client.Get(context.Background(), "/bookings/b-1", &out)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, KindServer, apiErr.Kind)
	assert.Equal(t, http.StatusOK, apiErr.Status)
	assert.Equal(t, MessageServer, apiErr.Message)
	assert.ErrorContains(t, apiErr.Unwrap(), "failed to decode response")
	assert.Same(t, apiErr, hooked)
}

func TestClient_ExpiredTokenRefreshedBeforeSend(t *testing.T) {
	cfg := models.JWTConfig{Secret: "upstream-secret", Issuer: "troski"}
	expired, _, err := jwt.GenerateTokenWithExpiry("u-1", "ama@troski.app", "rider", cfg, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	var refreshCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh-token" {
			atomic.AddInt32(&refreshCalls, 1)
			w.Write([]byte(`{"token":"fresh-token"}`))
			return
		}
		assert.Equal(t, "Bearer fresh-token", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, expired, "refresh-1")
	client := NewClient(Config{BaseURL: server.URL}).WithTokenStore(tokens)

	require.NoError(t, client.Delete(ctx, "/notifications/n-1", nil))
	assert.Equal(t, int32(1), atomic.LoadInt32(&refreshCalls))
}

func TestClient_ExpiredTokenRefreshFails(t *testing.T) {
	cfg := models.JWTConfig{Secret: "upstream-secret"}
	expired, _, err := jwt.GenerateTokenWithExpiry("u-1", "ama@troski.app", "rider", cfg, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	ctx, tokens := newSessionContext(t, expired, "refresh-1")
	client := NewClient(Config{BaseURL: server.URL}).WithTokenStore(tokens)

	err = client.Get(ctx, "/auth/me", nil)

	assert.True(t, IsKind(err, KindUnauthorized))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Empty(t, tokens.RefreshToken(ctx))
}
