// Package notify keeps the transient toast messages shown after user actions.
package notify

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity is the visual class of a toast.
type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Error   Severity = "error"
)

// ParseSeverity maps unknown values to Info.
func ParseSeverity(s string) Severity {
	switch sev := Severity(s); sev {
	case Success, Warning, Error:
		return sev
	default:
		return Info
	}
}

// Phase tracks where a toast is in its lifetime.
type Phase string

const (
	Showing Phase = "showing"
	Leaving Phase = "leaving"
)

const (
	DefaultDisplay    = 3000 * time.Millisecond
	DefaultTransition = 300 * time.Millisecond
)

// Notification is one toast.
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	Phase     Phase     `json:"phase"`
}

type entry struct {
	n     Notification
	timer *time.Timer
}

// Emitter owns the active toasts and their dismissal timers.
type Emitter struct {
	mu         sync.Mutex
	active     []*entry
	display    time.Duration
	transition time.Duration
	closed     bool
	logger     *zap.Logger
}

// Option adjusts an Emitter.
type Option func(*Emitter)

// WithDurations overrides the display window and the exit transition.
func WithDurations(display, transition time.Duration) Option {
	return func(e *Emitter) {
		e.display = display
		e.transition = transition
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Emitter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEmitter returns an emitter using the 3s display and 300ms exit timings.
func NewEmitter(opts ...Option) *Emitter {
	e := &Emitter{
		display:    DefaultDisplay,
		transition: DefaultTransition,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Notify shows a toast at once and schedules its removal. After Close it returns
// the notification without showing it.
func (e *Emitter) Notify(message string, severity Severity) Notification {
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  ParseSeverity(string(severity)),
		CreatedAt: time.Now().UTC(),
		Phase:     Showing,
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return n
	}
	ent := &entry{n: n}
	ent.timer = time.AfterFunc(e.display, func() { e.leave(n.ID) })
	e.active = append(e.active, ent)
	e.logger.Debug("notification shown", zap.String("id", n.ID), zap.String("severity", string(n.Severity)), zap.String("message", message))
	return n
}

// leave starts the exit transition and schedules the final removal.
func (e *Emitter) leave(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent := e.find(id)
	if ent == nil || e.closed {
		return
	}
	ent.n.Phase = Leaving
	ent.timer = time.AfterFunc(e.transition, func() { e.remove(id) })
}

func (e *Emitter) remove(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = slices.DeleteFunc(e.active, func(ent *entry) bool { return ent.n.ID == id })
}

// Dismiss removes a toast immediately and cancels its pending timer.
func (e *Emitter) Dismiss(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	ent := e.find(id)
	if ent == nil {
		return false
	}
	ent.timer.Stop()
	e.active = slices.DeleteFunc(e.active, func(other *entry) bool { return other == ent })
	return true
}

// Active lists the visible toasts, oldest first.
func (e *Emitter) Active() []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Notification, 0, len(e.active))
	for _, ent := range e.active {
		out = append(out, ent.n)
	}
	return out
}

// Close stops every pending timer and drops all toasts.
func (e *Emitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	for _, ent := range e.active {
		ent.timer.Stop()
	}
	e.active = nil
}

func (e *Emitter) find(id string) *entry {
	for _, ent := range e.active {
		if ent.n.ID == id {
			return ent
		}
	}
	return nil
}
