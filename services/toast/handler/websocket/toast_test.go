package websocket

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/middleware"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	wspkg "github.com/troski/troski/internal/pkg/websocket"
	"github.com/troski/troski/services/toast/usecase"
)

func setupStream(t *testing.T) (*usecase.Hub, string) {
	t.Helper()
	hub := usecase.NewHub(models.BookingConfig{ToastDuration: time.Minute, ToastExitAnimation: 10 * time.Millisecond})
	t.Cleanup(hub.Close)

	e := echo.New()
	e.Use(middleware.SessionMiddleware())
	e.GET("/ws/toasts", NewToastStream(hub, wspkg.NewManager()).HandleWebSocket)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return hub, "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/toasts?session=s-ws"
}

func readEvent(t *testing.T, conn *websocket.Conn) (string, models.ToastEvent) {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg wspkg.Message
	require.NoError(t, conn.ReadJSON(&msg))
	var ev models.ToastEvent
	if msg.Event == constants.EventToast {
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
	}
	return msg.Event, ev
}

func TestToastStream_ReplaysAndStreams(t *testing.T) {
	// Arrange
	hub, url := setupStream(t)
	ctx := session.WithID(context.Background(), "s-ws")
	existing := hub.Show(ctx, "Welcome back", models.ToastInfo, 0)

	// Act
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Assert
	event, ev := readEvent(t, conn)
	assert.Equal(t, constants.EventToast, event)
	assert.Equal(t, models.ToastShown, ev.Kind)
	assert.Equal(t, existing, ev.Toast.ID)

	live := hub.Show(ctx, "Ride booked", models.ToastSuccess, 0)
	_, ev = readEvent(t, conn)
	assert.Equal(t, live, ev.Toast.ID)
	assert.Equal(t, "Ride booked", ev.Toast.Message)
}

func TestToastStream_DismissAndPing(t *testing.T) {
	hub, url := setupStream(t)
	ctx := session.WithID(context.Background(), "s-ws")

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wspkg.Message{Event: constants.EventPing}))
	event, _ := readEvent(t, conn)
	assert.Equal(t, constants.EventPong, event)

	id := hub.Show(ctx, "Dismiss me", models.ToastInfo, 0)
	_, ev := readEvent(t, conn)
	require.Equal(t, models.ToastShown, ev.Kind)

	data, _ := json.Marshal(map[string]string{"id": id})
	require.NoError(t, conn.WriteJSON(wspkg.Message{Event: constants.EventToastDismiss, Data: data}))

	_, ev = readEvent(t, conn)
	assert.Equal(t, models.ToastExiting, ev.Kind)
	_, ev = readEvent(t, conn)
	assert.Equal(t, models.ToastRemoved, ev.Kind)
}

func TestToastStream_UnknownEvent(t *testing.T) {
	_, url := setupStream(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wspkg.Message{Event: "bogus"}))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg wspkg.Message
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)

	var payload wspkg.ErrorMessage
	require.NoError(t, json.Unmarshal(msg.Data, &payload))
	assert.Equal(t, constants.ErrorInvalidFormat, payload.Code)
}
