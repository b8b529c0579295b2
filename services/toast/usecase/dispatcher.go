package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/troski/troski/internal/pkg/models"
)

const (
	// DefaultDuration applies when a toast is shown without a duration
	DefaultDuration = 5000 * time.Millisecond
	// ExitAnimation is how long an exiting toast stays listed
	ExitAnimation = 300 * time.Millisecond

	subscriberBuffer = 32
)

// DispatcherConfig configures a Dispatcher
type DispatcherConfig struct {
	DefaultDuration time.Duration
	ExitAnimation   time.Duration
	OnRemove        func(models.Toast)
}

type entry struct {
	toast models.Toast
	timer *time.Timer
}

// Dispatcher is the toast queue of one session. Each toast leaves the list
// ExitAnimation after its duration elapses or it is dismissed.
type Dispatcher struct {
	mu      sync.Mutex
	cfg     DispatcherConfig
	toasts  []*entry
	subs    map[int]chan models.ToastEvent
	nextSub int
	closed  bool
	now     func() time.Time
}

// NewDispatcher creates an empty toast queue
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = DefaultDuration
	}
	if cfg.ExitAnimation <= 0 {
		cfg.ExitAnimation = ExitAnimation
	}
	return &Dispatcher{
		cfg:  cfg,
		subs: make(map[int]chan models.ToastEvent),
		now:  models.Now,
	}
}

// Show enqueues a toast and returns its id. It returns "" once the dispatcher is closed.
func (d *Dispatcher) Show(message string, toastType models.ToastType, duration time.Duration) string {
	if duration <= 0 {
		duration = d.cfg.DefaultDuration
	}
	if toastType == "" {
		toastType = models.ToastInfo
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ""
	}

	t := models.Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Type:      toastType,
		Duration:  duration,
		CreatedAt: d.now(),
	}
	e := &entry{toast: t}
	d.toasts = append(d.toasts, e)
	e.timer = time.AfterFunc(duration, func() { d.beginExit(t.ID) })

	d.broadcastLocked(models.ToastEvent{Kind: models.ToastShown, Toast: t})
	return t.ID
}

// Dismiss starts the exit phase of a toast right away
func (d *Dispatcher) Dismiss(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	e := d.findLocked(id)
	if e == nil {
		return false
	}
	if !e.toast.Exiting {
		e.timer.Stop()
		d.exitLocked(e)
	}
	return true
}

// List returns the listed toasts, oldest first
func (d *Dispatcher) List() []models.Toast {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]models.Toast, 0, len(d.toasts))
	for _, e := range d.toasts {
		out = append(out, e.toast)
	}
	return out
}

// Subscribe streams toast events until cancel is called or the dispatcher closes.
// Slow subscribers miss events rather than block the queue.
func (d *Dispatcher) Subscribe() (<-chan models.ToastEvent, func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ch := make(chan models.ToastEvent, subscriberBuffer)
	if d.closed {
		close(ch)
		return ch, func() {}
	}

	id := d.nextSub
	d.nextSub++
	d.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			if sub, ok := d.subs[id]; ok {
				delete(d.subs, id)
				close(sub)
			}
		})
	}
}

// Idle reports whether the dispatcher has neither toasts nor subscribers
func (d *Dispatcher) Idle() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.toasts) == 0 && len(d.subs) == 0
}

// Close stops every pending timer and ends all subscriptions
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true

	for _, e := range d.toasts {
		e.timer.Stop()
	}
	d.toasts = nil
	for id, ch := range d.subs {
		close(ch)
		delete(d.subs, id)
	}
}

func (d *Dispatcher) beginExit(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if e := d.findLocked(id); e != nil && !e.toast.Exiting {
		d.exitLocked(e)
	}
}

func (d *Dispatcher) exitLocked(e *entry) {
	e.toast.Exiting = true
	id := e.toast.ID
	e.timer = time.AfterFunc(d.cfg.ExitAnimation, func() { d.remove(id) })
	d.broadcastLocked(models.ToastEvent{Kind: models.ToastExiting, Toast: e.toast})
}

func (d *Dispatcher) remove(id string) {
	d.mu.Lock()
	var removed *models.Toast
	for i, e := range d.toasts {
		if e.toast.ID == id {
			t := e.toast
			removed = &t
			d.toasts = append(d.toasts[:i], d.toasts[i+1:]...)
			d.broadcastLocked(models.ToastEvent{Kind: models.ToastRemoved, Toast: t})
			break
		}
	}
	onRemove := d.cfg.OnRemove
	d.mu.Unlock()

	if removed != nil && onRemove != nil {
		onRemove(*removed)
	}
}

func (d *Dispatcher) findLocked(id string) *entry {
	for _, e := range d.toasts {
		if e.toast.ID == id {
			return e
		}
	}
	return nil
}

func (d *Dispatcher) broadcastLocked(event models.ToastEvent) {
	for _, ch := range d.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
