package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
	"github.com/montgomery-finn/gobarber-web/pkg/loop"
	"github.com/montgomery-finn/gobarber-web/pkg/middleware"
	"github.com/montgomery-finn/gobarber-web/pkg/render"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/toastview"
	"github.com/montgomery-finn/gobarber-web/pkg/transition"
)

// Server serves the toasts of one provider.
type Server struct {
	config   *Config
	provider *toast.Provider
	engine   *transition.Engine[toast.Message]
	loop     *loop.Loop
	hub      *hub
	renderer *render.Renderer
	upgrader websocket.Upgrader

	metrics *middleware.Metrics
	tracing func(http.Handler) http.Handler
	clock   clockwork.Clock

	router      chi.Router
	unsubscribe func()
	broadcastMu sync.Mutex

	mu         sync.Mutex
	httpServer *http.Server

	logger *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLoop runs handler mutations on l. The provider should dispatch its
// timers onto the same loop.
func WithLoop(l *loop.Loop) Option {
	return func(s *Server) {
		s.loop = l
	}
}

// WithMetrics records HTTP and stream metrics and serves /metrics.
func WithMetrics(m *middleware.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithTracing wraps every request in mw, usually middleware.Tracing.
func WithTracing(mw func(http.Handler) http.Handler) Option {
	return func(s *Server) {
		s.tracing = mw
	}
}

// WithClock sets the clock driving transitions.
func WithClock(c clockwork.Clock) Option {
	return func(s *Server) {
		s.clock = c
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates a Server for p. Config fields left zero take defaults.
func New(config *Config, p *toast.Provider, opts ...Option) *Server {
	s := &Server{
		config:   config.withDefaults(),
		provider: p,
		renderer: render.NewRenderer(render.RendererConfig{}),
		clock:    clockwork.NewRealClock(),
		logger:   slog.Default().With("component", "server"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  s.config.ReadBufferSize,
		WriteBufferSize: s.config.WriteBufferSize,
		CheckOrigin:     s.config.CheckOrigin,
	}

	s.hub = newHub(s.logger)
	if s.metrics != nil {
		s.hub.onConnect = s.metrics.RecordClientConnect
		s.hub.onDisconnect = s.metrics.RecordClientDisconnect
		s.hub.onError = s.metrics.RecordWebSocketError
	}

	engineOpts := []transition.Option{
		transition.WithClock(s.clock),
		transition.WithDurations(s.config.EnterDuration, s.config.LeaveDuration),
		transition.WithOnChange(s.broadcast),
		transition.WithOnUnmount(func(key string) {
			s.logger.Debug("toast unmounted", "id", key)
		}),
	}
	if s.loop != nil {
		engineOpts = append(engineOpts, transition.WithDispatcher(s.loop))
	}
	s.engine = transition.New(func(m toast.Message) string { return m.ID }, engineOpts...)

	s.unsubscribe = p.Subscribe(s.engine.Sync)
	s.engine.Sync(p.Messages())
	s.broadcast()

	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the server as an http.Handler for mounting elsewhere.
func (s *Server) Handler() http.Handler {
	return s
}

// Engine returns the transition engine.
func (s *Server) Engine() *transition.Engine[toast.Message] {
	return s.engine
}

// Clients returns the number of connected WebSocket clients.
func (s *Server) Clients() int {
	return s.hub.count()
}

// Logger returns the server logger.
func (s *Server) Logger() *slog.Logger {
	return s.logger
}

// do runs fn on the loop when one is configured.
func (s *Server) do(ctx context.Context, fn func()) error {
	if s.loop == nil {
		fn()
		return nil
	}
	return s.loop.Do(ctx, fn)
}

// add inserts a toast and returns its id.
func (s *Server) add(ctx context.Context, in toast.Input) (string, error) {
	var id string
	err := s.do(ctx, func() { id = s.provider.Add(in) })
	return id, err
}

// dismiss removes a toast. Unknown ids are ignored.
func (s *Server) dismiss(id string) error {
	return s.do(context.Background(), func() { s.provider.Remove(id) })
}

// dismissAsync is the click handler bound into rendered views.
func (s *Server) dismissAsync(id string) {
	if s.loop != nil && s.loop.Dispatch(func() { s.provider.Remove(id) }) {
		return
	}
	s.provider.Remove(id)
}

// snapshot builds the frame describing the current state.
func (s *Server) snapshot() (Frame, error) {
	html, err := s.renderer.RenderToString(toastview.Container(s.engine.Items(), s.dismissAsync))
	if err != nil {
		return Frame{}, err
	}
	return Frame{Type: FrameSnapshot, HTML: html, Toasts: s.provider.Messages()}, nil
}

// broadcast pushes a fresh snapshot to every client. Snapshots are built
// and published under one lock so clients never see them out of order.
func (s *Server) broadcast() {
	s.broadcastMu.Lock()
	defer s.broadcastMu.Unlock()

	frame, err := s.snapshot()
	if err != nil {
		s.logger.Error("render failed", "error", err)
		return
	}
	data, err := json.Marshal(frame)
	if err != nil {
		s.logger.Error("encode failed", "error", err)
		return
	}
	s.hub.publish(data)
}

// Run listens on the configured address until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return verrors.Newf(verrors.CategoryRuntime, "listen on %s", s.config.Address).Wrap(err)
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown disconnects clients, stops the engine and drains HTTP requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.Close()

	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv != nil {
		if err := srv.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// Close detaches from the provider and disconnects every client. The
// provider itself is left running.
func (s *Server) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	s.engine.Close()
	s.hub.close()
}
