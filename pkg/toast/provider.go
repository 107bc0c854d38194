package toast

import (
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
)

// DefaultDuration is how long a toast stays up before it dismisses itself.
const DefaultDuration = 3000 * time.Millisecond

// Notifier is the capability handed to components: raise and dismiss toasts.
type Notifier interface {
	Add(in Input) string
	Remove(id string)
}

// Dispatcher runs callbacks on the owner's event loop.
// *loop.Loop satisfies it.
type Dispatcher interface {
	Dispatch(fn func()) bool
}

// RemoveReason records why a toast left the queue.
type RemoveReason string

const (
	ReasonDismissed RemoveReason = "dismissed"
	ReasonExpired   RemoveReason = "expired"
)

// Observer is told about every add and remove. Calls are synchronous.
type Observer interface {
	ToastAdded(m Message)
	ToastRemoved(m Message, reason RemoveReason)
}

// Provider owns the toast store and one dismissal task per active toast.
// It is safe for concurrent use.
type Provider struct {
	store    *Store
	clock    clockwork.Clock
	duration time.Duration
	dispatch Dispatcher
	ids      IDGenerator

	mu     sync.Mutex
	tasks  map[string]clockwork.Timer
	closed bool

	observers []Observer
	logger    *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithClock sets the clock used for timestamps and dismissal timers.
func WithClock(c clockwork.Clock) Option {
	return func(p *Provider) {
		if c != nil {
			p.clock = c
		}
	}
}

// WithDuration sets the auto-dismiss window. Non-positive values are ignored.
func WithDuration(d time.Duration) Option {
	return func(p *Provider) {
		if d > 0 {
			p.duration = d
		}
	}
}

// WithDispatcher routes timer callbacks through d instead of running them on
// the timer goroutine.
func WithDispatcher(d Dispatcher) Option {
	return func(p *Provider) {
		p.dispatch = d
	}
}

// WithIDGenerator sets the identity generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(p *Provider) {
		if g != nil {
			p.ids = g
		}
	}
}

// WithObserver adds an observer for add/remove events.
func WithObserver(o Observer) Option {
	return func(p *Provider) {
		if o != nil {
			p.observers = append(p.observers, o)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a provider with an empty queue.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		clock:    clockwork.NewRealClock(),
		duration: DefaultDuration,
		ids:      UUIDGenerator{},
		tasks:    make(map[string]clockwork.Timer),
		logger:   slog.Default().With("component", "toast"),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.store = NewStore(p.ids, p.clock.Now)
	return p
}

// Add appends a toast and schedules its dismissal.
func (p *Provider) Add(in Input) string {
	id := p.store.Add(in)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		p.logger.Warn("toast added after provider closed",
			"code", verrors.New("T003").Code,
			"id", id)
	} else {
		p.tasks[id] = p.clock.AfterFunc(p.duration, func() { p.expire(id) })
		p.mu.Unlock()
	}

	if msg, ok := p.store.Get(id); ok {
		p.logger.Debug("toast added",
			"id", id,
			"severity", msg.Severity)
		for _, o := range p.observers {
			o.ToastAdded(msg)
		}
	}
	return id
}

// Remove dismisses a toast. Unknown ids are ignored.
func (p *Provider) Remove(id string) {
	p.remove(id, ReasonDismissed)
}

// expire is the body of a dismissal task.
func (p *Provider) expire(id string) {
	fire := func() { p.remove(id, ReasonExpired) }
	if p.dispatch != nil && p.dispatch.Dispatch(fire) {
		return
	}
	fire()
}

func (p *Provider) remove(id string, reason RemoveReason) {
	// An expired task has already fired; only a dismissal needs to stop it.
	p.forget(id, reason != ReasonExpired)

	msg, ok := p.store.Remove(id)
	if !ok {
		return
	}
	p.logger.Debug("toast removed",
		"id", id,
		"reason", reason)
	for _, o := range p.observers {
		o.ToastRemoved(msg, reason)
	}
}

// forget drops the dismissal task for id, stopping it first if asked.
func (p *Provider) forget(id string, stop bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if t, ok := p.tasks[id]; ok {
		if stop {
			t.Stop()
		}
		delete(p.tasks, id)
	}
}

// Messages returns the active toasts in display order.
func (p *Provider) Messages() []Message {
	return p.store.Messages()
}

// Subscribe registers fn for queue changes. See Store.Subscribe.
func (p *Provider) Subscribe(fn func([]Message)) (unsubscribe func()) {
	return p.store.Subscribe(fn)
}

// Store exposes the underlying queue.
func (p *Provider) Store() *Store {
	return p.store
}

// Duration returns the auto-dismiss window.
func (p *Provider) Duration() time.Duration {
	return p.duration
}

// Pending returns the number of scheduled dismissal tasks.
func (p *Provider) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.tasks)
}

// Close cancels every pending dismissal task. Active toasts stay in the
// store; later Adds are stored but never auto-dismiss.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	for id, t := range p.tasks {
		t.Stop()
		delete(p.tasks, id)
	}
}
