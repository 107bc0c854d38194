package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/montgomery-finn/gobarber-web/internal/config"
	"github.com/montgomery-finn/gobarber-web/pkg/loop"
	"github.com/montgomery-finn/gobarber-web/pkg/middleware"
	"github.com/montgomery-finn/gobarber-web/pkg/server"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the toast server",
		Long: `Run the toast server.

The server renders the toast stack, pushes every change to connected
browsers over WebSocket and exposes a small JSON API for raising and
dismissing toasts.

Examples:
  gobarber-toasts serve
  gobarber-toasts serve --addr=:8080
  GOBARBER_TOAST_DURATION=5s gobarber-toasts serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printBanner()
			info("Listening on %s", opts.cfg.Server.Addr)
			info("Toasts dismiss after %s", opts.cfg.Toast.Duration)
			if path := opts.cfg.Path(); path != "" {
				info("Config: %s", path)
			}
			if err := runServe(ctx, opts.cfg); err != nil {
				return err
			}
			success("Server stopped")
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")

	return cmd
}

// runServe wires the provider, event loop and server from cfg and serves
// until ctx ends.
func runServe(ctx context.Context, cfg *config.Config) error {
	logger := slog.Default()

	l := loop.New(
		loop.WithQueueSize(cfg.Loop.QueueSize),
		loop.WithLogger(logger.With("component", "loop")),
	)
	loopCtx, cancelLoop := context.WithCancel(context.Background())
	defer cancelLoop()
	go l.Run(loopCtx)
	defer l.Close()

	ids, err := toast.IDGeneratorFor(cfg.Toast.IDFormat)
	if err != nil {
		return err
	}

	providerOpts := []toast.Option{
		toast.WithDuration(cfg.Toast.Duration),
		toast.WithDispatcher(l),
		toast.WithIDGenerator(ids),
		toast.WithLogger(logger.With("component", "toast")),
		toast.WithObserver(middleware.NewToastTracer(middleware.WithTracerName(cfg.Tracing.TracerName))),
	}
	serverOpts := []server.Option{
		server.WithLoop(l),
		server.WithLogger(logger.With("component", "server")),
		server.WithTracing(middleware.Tracing(middleware.WithTracerName(cfg.Tracing.TracerName))),
	}
	if cfg.Metrics.Enabled {
		m := middleware.NewMetrics(middleware.WithNamespace(cfg.Metrics.Namespace))
		providerOpts = append(providerOpts, toast.WithObserver(m))
		serverOpts = append(serverOpts, server.WithMetrics(m))
	}

	p := toast.NewProvider(providerOpts...)
	defer p.Close()

	s := server.New(&server.Config{
		Address:         cfg.Server.Addr,
		EnterDuration:   cfg.Transition.Enter,
		LeaveDuration:   cfg.Transition.Leave,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, p, serverOpts...)

	return s.Run(ctx)
}
