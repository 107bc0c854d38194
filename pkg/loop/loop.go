// Package loop runs callbacks one at a time on a single goroutine.
//
// A Loop gives the toast subsystem the execution model of a UI event loop:
// HTTP handlers, timer callbacks and transition tasks all Dispatch onto it,
// so provider mutations never interleave. Work that needs a result uses Do,
// which dispatches and waits.
package loop

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
)

// DefaultQueueSize is the dispatch buffer used when none is configured.
const DefaultQueueSize = 256

// ErrClosed is returned by Do after the loop has been closed.
var ErrClosed = errors.New("loop: closed")

// Loop is a single-goroutine callback executor.
type Loop struct {
	dispatchCh chan func()
	done       chan struct{}
	closed     atomic.Bool
	closeOnce  sync.Once

	logger    *slog.Logger
	afterEach func()
}

// Option configures a Loop.
type Option func(*Loop)

// WithQueueSize sets the dispatch buffer size.
func WithQueueSize(n int) Option {
	return func(l *Loop) {
		if n > 0 {
			l.dispatchCh = make(chan func(), n)
		}
	}
}

// WithLogger sets the logger used for dropped callbacks and panics.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loop) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithAfterEach registers a hook run on the loop after every callback.
func WithAfterEach(fn func()) Option {
	return func(l *Loop) {
		l.afterEach = fn
	}
}

// New creates a Loop. Call Run to start processing.
func New(opts ...Option) *Loop {
	l := &Loop{
		dispatchCh: make(chan func(), DefaultQueueSize),
		done:       make(chan struct{}),
		logger:     slog.Default().With("component", "loop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Run processes callbacks until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) {
	for {
		select {
		case fn := <-l.dispatchCh:
			l.execute(fn)
		case <-ctx.Done():
			l.Close()
			return
		case <-l.done:
			return
		}
	}
}

// execute runs a dispatched function with panic recovery.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()

	fn()
	if l.afterEach != nil {
		l.afterEach()
	}
}

// Dispatch queues fn to run on the loop. It is safe to call from any
// goroutine and never blocks. It reports whether fn was queued.
func (l *Loop) Dispatch(fn func()) bool {
	if l.closed.Load() {
		return false
	}
	select {
	case l.dispatchCh <- fn:
		return true
	case <-l.done:
		return false
	default:
		l.logger.Warn("dispatch queue full, discarding callback",
			"code", verrors.New("T004").Code)
		return false
	}
}

// Do runs fn on the loop and waits for it to finish.
// It must not be called from a callback already running on the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Dispatch(func() {
		defer close(finished)
		fn()
	}) {
		if l.closed.Load() {
			return ErrClosed
		}
		return verrors.New("T004")
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		return ErrClosed
	}
}

// Close stops the loop. Queued callbacks that have not started are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}

// Done is closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
