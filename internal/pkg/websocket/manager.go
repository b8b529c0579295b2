package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/troski/troski/internal/pkg/constants"
	"github.com/troski/troski/internal/pkg/logger"
)

// Message is the envelope of every frame sent to a client
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// ErrorMessage is the payload of an error frame
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Manager upgrades connections and tracks them per session
type Manager struct {
	sync.RWMutex
	clients  map[string]int
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]int),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request and runs handleClient until it returns
func (m *Manager) HandleConnection(c echo.Context, sessionID string, handleClient func(*websocket.Conn) error) error {
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Session is required")
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	m.AddClient(sessionID)
	defer m.RemoveClient(sessionID)

	logger.DebugCtx(c.Request().Context(), "WebSocket client connected",
		logger.String("session_ref", logger.SessionRef(sessionID)))

	return handleClient(ws)
}

// AddClient records a new connection for the session
func (m *Manager) AddClient(sessionID string) {
	m.Lock()
	defer m.Unlock()
	m.clients[sessionID]++
}

// RemoveClient forgets one connection of the session
func (m *Manager) RemoveClient(sessionID string) {
	m.Lock()
	defer m.Unlock()
	if m.clients[sessionID] <= 1 {
		delete(m.clients, sessionID)
		return
	}
	m.clients[sessionID]--
}

// ActiveConnections returns the number of open connections of the session
func (m *Manager) ActiveConnections(sessionID string) int {
	m.RLock()
	defer m.RUnlock()
	return m.clients[sessionID]
}

// SendMessage sends a message to a WebSocket client
func (m *Manager) SendMessage(conn *websocket.Conn, event string, data interface{}) error {
	if conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	return conn.WriteJSON(Message{
		Event: event,
		Data:  rawData,
	})
}

// SendErrorMessage sends an error message to a WebSocket client
func (m *Manager) SendErrorMessage(conn *websocket.Conn, code string, message string) error {
	return m.SendMessage(conn, constants.EventError, ErrorMessage{
		Code:    code,
		Message: message,
	})
}
