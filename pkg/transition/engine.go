package transition

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Default durations, close to the spring settle time of the web client.
const (
	DefaultEnter = 300 * time.Millisecond
	DefaultLeave = 300 * time.Millisecond
)

// Dispatcher runs callbacks on the owner's event loop.
type Dispatcher interface {
	Dispatch(fn func()) bool
}

// Item is one rendered entry.
type Item[T any] struct {
	Key   string
	Value T
	Phase Phase
}

// Style returns the style the item should be rendered with.
func (i Item[T]) Style() Style {
	return StyleFor(i.Phase)
}

type config struct {
	clock     clockwork.Clock
	enter     time.Duration
	leave     time.Duration
	dispatch  Dispatcher
	onChange  func()
	onUnmount func(key string)
}

// Option configures an Engine.
type Option func(*config)

// WithClock sets the clock driving phase tasks.
func WithClock(c clockwork.Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithDurations sets the enter and leave durations. Non-positive values
// keep the defaults.
func WithDurations(enter, leave time.Duration) Option {
	return func(cfg *config) {
		if enter > 0 {
			cfg.enter = enter
		}
		if leave > 0 {
			cfg.leave = leave
		}
	}
}

// WithDispatcher routes phase tasks through d.
func WithDispatcher(d Dispatcher) Option {
	return func(cfg *config) {
		cfg.dispatch = d
	}
}

// WithOnChange registers a hook called after any phase or membership change.
func WithOnChange(fn func()) Option {
	return func(cfg *config) {
		cfg.onChange = fn
	}
}

// WithOnUnmount registers a hook called when a leaving key is dropped.
func WithOnUnmount(fn func(key string)) Option {
	return func(cfg *config) {
		cfg.onUnmount = fn
	}
}

type entry[T any] struct {
	key   string
	value T
	phase Phase
	task  clockwork.Timer
	gen   uint64
}

// Engine tracks enter/leave state per key. It is safe for concurrent use.
type Engine[T any] struct {
	keyOf func(T) string
	cfg   config

	mu      sync.Mutex
	entries []*entry[T]
	closed  bool
}

// New creates an engine keyed by keyOf.
func New[T any](keyOf func(T) string, opts ...Option) *Engine[T] {
	cfg := config{
		clock: clockwork.NewRealClock(),
		enter: DefaultEnter,
		leave: DefaultLeave,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[T]{keyOf: keyOf, cfg: cfg}
}

// Sync reconciles the engine with the desired list.
func (e *Engine[T]) Sync(values []T) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	current := make(map[string]*entry[T], len(e.entries))
	for _, en := range e.entries {
		current[en.key] = en
	}

	changed := false
	desired := make(map[string]bool, len(values))
	next := make([]*entry[T], 0, len(values)+len(e.entries))
	for _, v := range values {
		key := e.keyOf(v)
		if desired[key] {
			continue
		}
		desired[key] = true

		en, ok := current[key]
		switch {
		case !ok:
			en = &entry[T]{key: key, value: v, phase: PhaseEntering}
			e.schedule(en, e.cfg.enter, PhaseEntering)
			changed = true
		case en.phase == PhaseLeaving:
			e.stop(en)
			en.phase = PhaseVisible
			changed = true
		}
		en.value = v
		next = append(next, en)
	}

	// Splice leaving entries back in after the entry that preceded them.
	anchor := ""
	for _, en := range e.entries {
		if !desired[en.key] {
			if en.phase != PhaseLeaving {
				e.stop(en)
				en.phase = PhaseLeaving
				e.schedule(en, e.cfg.leave, PhaseLeaving)
				changed = true
			}
			idx := 0
			if anchor != "" {
				idx = indexOf(next, anchor) + 1
			}
			next = append(next, nil)
			copy(next[idx+1:], next[idx:])
			next[idx] = en
		}
		anchor = en.key
	}

	e.entries = next
	e.mu.Unlock()

	if changed {
		e.changed()
	}
}

// schedule starts the task that ends phase for en. Must hold mu.
func (e *Engine[T]) schedule(en *entry[T], d time.Duration, phase Phase) {
	en.gen++
	gen := en.gen
	key := en.key
	en.task = e.cfg.clock.AfterFunc(d, func() {
		fire := func() { e.complete(key, gen, phase) }
		if e.cfg.dispatch != nil && e.cfg.dispatch.Dispatch(fire) {
			return
		}
		fire()
	})
}

// stop cancels en's pending task. Must hold mu.
func (e *Engine[T]) stop(en *entry[T]) {
	en.gen++
	if en.task != nil {
		en.task.Stop()
		en.task = nil
	}
}

// complete finishes phase for key if the task is still current.
func (e *Engine[T]) complete(key string, gen uint64, phase Phase) {
	e.mu.Lock()
	idx := indexOf(e.entries, key)
	if e.closed || idx < 0 {
		e.mu.Unlock()
		return
	}
	en := e.entries[idx]
	if en.gen != gen || en.phase != phase {
		e.mu.Unlock()
		return
	}
	en.task = nil

	unmounted := false
	switch phase {
	case PhaseEntering:
		en.phase = PhaseVisible
	case PhaseLeaving:
		e.entries = append(e.entries[:idx:idx], e.entries[idx+1:]...)
		unmounted = true
	}
	e.mu.Unlock()

	if unmounted && e.cfg.onUnmount != nil {
		e.cfg.onUnmount(key)
	}
	e.changed()
}

func (e *Engine[T]) changed() {
	if e.cfg.onChange != nil {
		e.cfg.onChange()
	}
}

// Items returns the rendered list, leaving items included in place.
func (e *Engine[T]) Items() []Item[T] {
	e.mu.Lock()
	defer e.mu.Unlock()

	items := make([]Item[T], len(e.entries))
	for i, en := range e.entries {
		items[i] = Item[T]{Key: en.key, Value: en.value, Phase: en.phase}
	}
	return items
}

// Phase returns the phase of key, or false if the key is not mounted.
func (e *Engine[T]) Phase(key string) (Phase, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if idx := indexOf(e.entries, key); idx >= 0 {
		return e.entries[idx].phase, true
	}
	return 0, false
}

// Len returns the number of mounted items.
func (e *Engine[T]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// Close cancels all phase tasks. The engine ignores later Syncs.
func (e *Engine[T]) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for _, en := range e.entries {
		e.stop(en)
	}
}

func indexOf[T any](entries []*entry[T], key string) int {
	for i, en := range entries {
		if en.key == key {
			return i
		}
	}
	return -1
}
