package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/montgomery-finn/gobarber-web/pkg/loop"
	"github.com/montgomery-finn/gobarber-web/pkg/render"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/toastview"
	"github.com/montgomery-finn/gobarber-web/pkg/transition"
)

// demoConfig holds the timings of a demo run.
type demoConfig struct {
	Duration time.Duration
	Enter    time.Duration
	Leave    time.Duration
	Fail     bool
	Pretty   bool
}

func demoCmd(opts *options) *cobra.Command {
	var (
		fail     bool
		compact  bool
		list     bool
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "demo [flow...]",
		Short: "Run the GoBarber flows in-process and print the rendered toasts",
		Long: `Run the GoBarber page flows against an in-process provider and print
the toast container every time it changes, from enter to unmount.

Examples:
  gobarber-toasts demo
  gobarber-toasts demo sign-in --fail
  gobarber-toasts demo profile --duration=500ms`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, name := range flowNames() {
					info("%s", name)
				}
				return nil
			}
			selected, err := lookupFlows(args)
			if err != nil {
				return err
			}
			cfg := demoConfig{
				Duration: opts.cfg.Toast.Duration,
				Enter:    opts.cfg.Transition.Enter,
				Leave:    opts.cfg.Transition.Leave,
				Fail:     fail,
				Pretty:   !compact,
			}
			if duration > 0 {
				cfg.Duration = duration
			}
			return runDemo(cmd.Context(), os.Stdout, selected, cfg)
		},
	}

	cmd.Flags().BoolVar(&fail, "fail", false, "Raise each flow's error toast")
	cmd.Flags().BoolVar(&compact, "compact", false, "Print HTML on one line")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List available flows")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Override the toast duration")

	return cmd
}

// runDemo plays each flow in turn and writes every container change to w.
// It returns once the container is empty again.
func runDemo(ctx context.Context, w io.Writer, selected []flow, cfg demoConfig) error {
	if ctx == nil {
		ctx = context.Background()
	}

	l := loop.New()
	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go l.Run(loopCtx)
	defer l.Close()

	renderer := render.NewRenderer(render.RendererConfig{Pretty: cfg.Pretty})

	var (
		mu      sync.Mutex
		started time.Time
		engine  *transition.Engine[toast.Message]
		werr    error
	)
	drained := make(chan struct{}, 1)

	show := func() {
		mu.Lock()
		defer mu.Unlock()
		items := engine.Items()
		html, err := renderer.RenderToString(toastview.Container(items, nil))
		if err != nil {
			werr = err
			return
		}
		elapsed := time.Since(started).Round(time.Millisecond)
		if _, err := fmt.Fprintf(w, "[%6s] %s\n%s\n", elapsed, phases(items), html); err != nil {
			werr = err
		}
		if len(items) == 0 {
			select {
			case drained <- struct{}{}:
			default:
			}
		}
	}

	engine = transition.New(func(m toast.Message) string { return m.ID },
		transition.WithDurations(cfg.Enter, cfg.Leave),
		transition.WithDispatcher(l),
		transition.WithOnChange(show),
	)
	defer engine.Close()

	p := toast.NewProvider(
		toast.WithDuration(cfg.Duration),
		toast.WithDispatcher(l),
	)
	defer p.Close()
	unsubscribe := p.Subscribe(engine.Sync)
	defer unsubscribe()

	pageCtx := toast.WithProvider(ctx, p)
	for _, f := range selected {
		outcome := "success"
		if cfg.Fail {
			outcome = "failure"
		}
		mu.Lock()
		fmt.Fprintf(w, "── %s (%s, %s) ──\n", f.Name, f.Page, outcome)
		started = time.Now()
		mu.Unlock()

		if err := l.Do(ctx, func() { f.run(pageCtx, cfg.Fail) }); err != nil {
			return err
		}
		select {
		case <-drained:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	mu.Lock()
	defer mu.Unlock()
	return werr
}

// phases summarizes items as "phase: title" pairs.
func phases(items []toastview.Item) string {
	if len(items) == 0 {
		return "empty"
	}
	s := ""
	for i, item := range items {
		if i > 0 {
			s += ", "
		}
		s += item.Phase.String() + ": " + item.Value.Title
	}
	return s
}
