package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
)

func testHub() *Hub {
	return NewHub(models.BookingConfig{ToastDuration: time.Minute, ToastExitAnimation: 10 * time.Millisecond})
}

func TestHub_IsolatesSessions(t *testing.T) {
	// Arrange
	hub := testHub()
	defer hub.Close()
	alice := session.WithID(context.Background(), "alice")
	bob := session.WithID(context.Background(), "bob")

	// Act
	hub.Notify(alice, "Ride booked", models.ToastSuccess)
	hub.Show(bob, "Ride cancelled", models.ToastWarning, 0)
	hub.Show(bob, "Refund issued", models.ToastInfo, 0)

	// Assert
	require.Len(t, hub.List(alice), 1)
	assert.Equal(t, "Ride booked", hub.List(alice)[0].Message)
	assert.Len(t, hub.List(bob), 2)
	assert.Equal(t, time.Minute, hub.List(bob)[0].Duration)
	assert.Equal(t, 2, hub.Sessions())
}

func TestHub_DropsToastWithoutSession(t *testing.T) {
	hub := testHub()
	defer hub.Close()

	id := hub.Show(context.Background(), "lost", models.ToastInfo, 0)

	assert.Empty(t, id)
	assert.Equal(t, 0, hub.Sessions())
}

func TestHub_ReleasesIdleSessions(t *testing.T) {
	hub := testHub()
	defer hub.Close()
	ctx := session.WithID(context.Background(), "s-1")

	id := hub.Show(ctx, "short lived", models.ToastInfo, 10*time.Millisecond)
	require.NotEmpty(t, id)
	assert.Equal(t, 1, hub.Sessions())

	assert.Eventually(t, func() bool { return hub.Sessions() == 0 }, time.Second, 5*time.Millisecond)
	assert.Empty(t, hub.List(ctx))
}

func TestHub_SubscriberKeepsSessionAlive(t *testing.T) {
	hub := testHub()
	defer hub.Close()
	ctx := session.WithID(context.Background(), "s-2")

	events, cancel := hub.Subscribe(ctx)
	hub.Show(ctx, "hello", models.ToastInfo, 5*time.Millisecond)

	ev := <-events
	assert.Equal(t, models.ToastShown, ev.Kind)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, hub.Sessions())

	cancel()
	assert.Equal(t, 0, hub.Sessions())
}

func TestHub_Dismiss(t *testing.T) {
	hub := testHub()
	defer hub.Close()
	ctx := session.WithID(context.Background(), "s-3")

	id := hub.Show(ctx, "dismiss me", models.ToastInfo, 0)

	assert.False(t, hub.Dismiss(session.WithID(context.Background(), "other"), id))
	assert.True(t, hub.Dismiss(ctx, id))
	assert.Eventually(t, func() bool { return len(hub.List(ctx)) == 0 }, time.Second, 5*time.Millisecond)
}

func TestHub_ReportAPIError(t *testing.T) {
	hub := testHub()
	defer hub.Close()
	ctx := session.WithID(context.Background(), "s-4")

	hub.ReportAPIError(ctx, &apiclient.APIError{Kind: apiclient.KindForbidden, Message: "You do not have permission to perform this action."})
	hub.ReportAPIError(ctx, &apiclient.APIError{Kind: apiclient.KindValidation, Message: "Pickup is required"})

	toasts := hub.List(ctx)
	require.Len(t, toasts, 2)
	assert.Equal(t, models.ToastError, toasts[0].Type)
	assert.Equal(t, models.ToastWarning, toasts[1].Type)
}
