package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/montgomery-finn/gobarber-web/internal/config"
	"github.com/montgomery-finn/gobarber-web/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┌─┐╔╗ ┌─┐┬─┐┌┐ ┌─┐┬─┐
  ║ ╦│ │╠╩╗├─┤├┬┘├┴┐├┤ ├┬┘
  ╚═╝└─┘╚═╝┴ ┴┴└─└─┘└─┘┴└─  toasts
`

// options are the flags shared by every command.
type options struct {
	configPath string
	cfg        *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "gobarber-toasts",
		Short: "Toast notifications for GoBarber",
		Long: `gobarber-toasts runs and drives the GoBarber notification service.

Toasts are short messages with a title, an optional description and a
severity. They stack in the top-right corner, dismiss themselves after a
few seconds and can be closed by hand.

Configuration is read from --config (YAML, JSON or TOML) and from
GOBARBER_* environment variables, e.g. GOBARBER_TOAST_DURATION=5s.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg
			slog.SetDefault(cfg.Log.NewLogger(os.Stderr))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a config file")

	rootCmd.AddCommand(
		serveCmd(opts),
		notifyCmd(opts),
		watchCmd(opts),
		demoCmd(opts),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
