package websocket

import (
	"context"
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
	wspkg "github.com/troski/troski/internal/pkg/websocket"
	"github.com/troski/troski/services/toast"
)

type dismissRequest struct {
	ID string `json:"id"`
}

// ToastStream pushes toast events of a session over a WebSocket
type ToastStream struct {
	toastUC toast.ToastUC
	manager *wspkg.Manager
}

// NewToastStream creates the toast WebSocket handler
func NewToastStream(toastUC toast.ToastUC, manager *wspkg.Manager) *ToastStream {
	return &ToastStream{
		toastUC: toastUC,
		manager: manager,
	}
}

// HandleWebSocket upgrades the connection and streams the session's toasts
func (s *ToastStream) HandleWebSocket(c echo.Context) error {
	ctx := c.Request().Context()
	return s.manager.HandleConnection(c, session.IDFromContext(ctx), func(conn *websocket.Conn) error {
		return s.stream(ctx, conn)
	})
}

func (s *ToastStream) stream(ctx context.Context, conn *websocket.Conn) error {
	events, cancel := s.toastUC.Subscribe(ctx)
	defer cancel()

	for _, t := range s.toastUC.List(ctx) {
		if err := s.manager.SendMessage(conn, constants.EventToast, models.ToastEvent{Kind: models.ToastShown, Toast: t}); err != nil {
			return err
		}
	}

	// the reader only decodes; every write happens on this goroutine
	incoming := make(chan wspkg.Message)
	readErr := make(chan error, 1)
	go func() {
		for {
			var msg wspkg.Message
			if err := conn.ReadJSON(&msg); err != nil {
				readErr <- err
				return
			}
			select {
			case incoming <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.manager.SendMessage(conn, constants.EventToast, ev); err != nil {
				return err
			}
		case msg := <-incoming:
			if err := s.handleMessage(ctx, conn, msg); err != nil {
				return err
			}
		case err := <-readErr:
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.WarnCtx(ctx, "Toast stream closed unexpectedly", logger.Err(err))
			}
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *ToastStream) handleMessage(ctx context.Context, conn *websocket.Conn, msg wspkg.Message) error {
	switch msg.Event {
	case constants.EventPing:
		return s.manager.SendMessage(conn, constants.EventPong, nil)
	case constants.EventToastDismiss:
		var req dismissRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil || req.ID == "" {
			return s.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Invalid dismiss request")
		}
		s.toastUC.Dismiss(ctx, req.ID)
		return nil
	default:
		return s.manager.SendErrorMessage(conn, constants.ErrorInvalidFormat, "Unknown event type")
	}
}
