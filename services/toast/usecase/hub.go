package usecase

import (
	"context"
	"sync"
	"time"

	apiclient "github.com/troski/troski/internal/pkg/http"
	"github.com/troski/troski/internal/pkg/logger"
	"github.com/troski/troski/internal/pkg/models"
	"github.com/troski/troski/internal/pkg/session"
)

// Hub keeps one toast dispatcher per session, created on first use and
// released once it holds no toasts and no subscribers
type Hub struct {
	mu          sync.Mutex
	dispatchers map[string]*Dispatcher
	cfg         DispatcherConfig
}

// NewHub creates a toast hub with the configured timings
func NewHub(cfg models.BookingConfig) *Hub {
	return &Hub{
		dispatchers: make(map[string]*Dispatcher),
		cfg: DispatcherConfig{
			DefaultDuration: cfg.ToastDuration,
			ExitAnimation:   cfg.ToastExitAnimation,
		},
	}
}

// Show displays a toast to the session in ctx
func (h *Hub) Show(ctx context.Context, message string, toastType models.ToastType, duration time.Duration) string {
	sessionID := session.IDFromContext(ctx)
	if sessionID == "" {
		logger.DebugCtx(ctx, "Dropping toast without session", logger.String("message", message))
		return ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dispatcherLocked(sessionID).Show(message, toastType, duration)
}

// Dismiss removes a toast of the session in ctx
func (h *Hub) Dismiss(ctx context.Context, id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ok := h.dispatchers[session.IDFromContext(ctx)]
	if !ok {
		return false
	}
	return d.Dismiss(id)
}

// List returns the toasts of the session in ctx
func (h *Hub) List(ctx context.Context) []models.Toast {
	h.mu.Lock()
	defer h.mu.Unlock()

	d, ok := h.dispatchers[session.IDFromContext(ctx)]
	if !ok {
		return []models.Toast{}
	}
	return d.List()
}

// Subscribe streams toast events of the session in ctx
func (h *Hub) Subscribe(ctx context.Context) (<-chan models.ToastEvent, func()) {
	sessionID := session.IDFromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	events, cancel := h.dispatcherLocked(sessionID).Subscribe()
	return events, func() {
		cancel()
		h.release(sessionID)
	}
}

// Notify implements the booking notifier
func (h *Hub) Notify(ctx context.Context, message string, toastType models.ToastType) {
	h.Show(ctx, message, toastType, 0)
}

// ReportAPIError toasts an upstream API failure, used as the API client error hook
func (h *Hub) ReportAPIError(ctx context.Context, err *apiclient.APIError) {
	toastType := models.ToastError
	if err.Kind == apiclient.KindValidation || err.Kind == apiclient.KindNotFound {
		toastType = models.ToastWarning
	}
	h.Show(ctx, err.Message, toastType, 0)
}

// Sessions returns the number of sessions with a live dispatcher
func (h *Hub) Sessions() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.dispatchers)
}

// Close stops every dispatcher
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, d := range h.dispatchers {
		d.Close()
		delete(h.dispatchers, id)
	}
}

func (h *Hub) dispatcherLocked(sessionID string) *Dispatcher {
	if d, ok := h.dispatchers[sessionID]; ok {
		return d
	}

	cfg := h.cfg
	cfg.OnRemove = func(models.Toast) { h.release(sessionID) }
	d := NewDispatcher(cfg)
	h.dispatchers[sessionID] = d
	return d
}

func (h *Hub) release(sessionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if d, ok := h.dispatchers[sessionID]; ok && d.Idle() {
		d.Close()
		delete(h.dispatchers, sessionID)
	}
}
