package main

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/spf13/cobra"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
	"github.com/montgomery-finn/gobarber-web/pkg/client"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

func notifyCmd(opts *options) *cobra.Command {
	var (
		serverURL   string
		description string
		severity    string
		dismiss     string
		list        bool
	)

	cmd := &cobra.Command{
		Use:   "notify [title]",
		Short: "Raise, dismiss or list toasts on a running server",
		Long: `Raise a toast on a running server.

Examples:
  gobarber-toasts notify "Perfil atualizado!" --severity=success
  gobarber-toasts notify "Erro no cadastro" -s error -d "Tente novamente."
  gobarber-toasts notify --dismiss=<id>
  gobarber-toasts notify --list`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if serverURL == "" {
				serverURL = defaultServerURL(opts.cfg.Server.Addr)
			}
			c, err := client.New(serverURL)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch {
			case list:
				messages, err := c.List(ctx)
				if err != nil {
					return err
				}
				if len(messages) == 0 {
					info("No active toasts")
				}
				for _, m := range messages {
					info("%s  %-7s  %s", m.ID, m.Severity, m.Title)
				}
				return nil

			case dismiss != "":
				if err := c.Dismiss(ctx, dismiss); err != nil {
					return err
				}
				success("Dismissed %s", dismiss)
				return nil
			}

			if len(args) == 0 {
				return verrors.Newf(verrors.CategoryRuntime, "A title is required").
					WithSuggestion(`Run: gobarber-toasts notify "Your title"`)
			}
			id, err := c.Notify(ctx, toast.Input{
				Title:       args[0],
				Description: description,
				Severity:    toast.Severity(severity),
			})
			var verr *client.ValidationError
			if errors.As(err, &verr) {
				for field, msg := range verr.Fields {
					warn("%s: %s", field, msg)
				}
				return err
			}
			if err != nil {
				return err
			}
			success("Raised %s", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "Server base URL (default from config)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Secondary line")
	cmd.Flags().StringVarP(&severity, "severity", "s", string(toast.SeverityInfo), "info, success or error")
	cmd.Flags().StringVar(&dismiss, "dismiss", "", "Dismiss the toast with this id")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "List active toasts")

	return cmd
}

// defaultServerURL turns a listen address into a URL a local client can
// reach.
func defaultServerURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + strings.TrimPrefix(addr, ":")
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("http://%s", net.JoinHostPort(host, port))
}
