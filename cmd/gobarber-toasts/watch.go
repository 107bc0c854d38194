package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/montgomery-finn/gobarber-web/pkg/client"
	"github.com/montgomery-finn/gobarber-web/pkg/server"
)

func watchCmd(opts *options) *cobra.Command {
	var (
		serverURL string
		attempts  uint
		delay     time.Duration
		showHTML  bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Follow the toast stream of a running server",
		Long: `Subscribe to the server's WebSocket stream and log every snapshot.
The stream is re-established with exponential backoff when it drops.

Examples:
  gobarber-toasts watch
  gobarber-toasts watch --server=http://localhost:3333 --html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				serverURL = defaultServerURL(opts.cfg.Server.Addr)
			}
			c, err := client.New(serverURL, client.WithRetry(attempts, delay))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			info("Watching %s", serverURL)
			err = c.Watch(ctx, func(f server.Frame) {
				logFrame(slog.Default(), f, showHTML)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Server base URL (default from config)")
	cmd.Flags().UintVar(&attempts, "attempts", client.DefaultAttempts, "Reconnect attempts, 0 retries forever")
	cmd.Flags().DurationVar(&delay, "delay", client.DefaultDelay, "Initial reconnect delay")
	cmd.Flags().BoolVar(&showHTML, "html", false, "Include the rendered container")

	return cmd
}

// logFrame writes one stream frame to logger.
func logFrame(logger *slog.Logger, f server.Frame, showHTML bool) {
	switch f.Type {
	case server.FrameSnapshot:
		ids := make([]string, len(f.Toasts))
		for i, m := range f.Toasts {
			ids[i] = m.ID
		}
		attrs := []any{"count", len(f.Toasts), "ids", ids}
		if showHTML {
			attrs = append(attrs, "html", f.HTML)
		}
		logger.Info("snapshot", attrs...)
	case server.FrameError:
		logger.Warn("server rejected frame", "message", f.Message)
	default:
		logger.Debug("frame", "type", f.Type)
	}
}
