package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/montgomery-finn/gobarber-web/pkg/server"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

func TestLookupFlows(t *testing.T) {
	all, err := lookupFlows(nil)
	if err != nil {
		t.Fatalf("lookupFlows(nil) error = %v", err)
	}
	if len(all) != len(flows) {
		t.Errorf("lookupFlows(nil) = %d flows, want %d", len(all), len(flows))
	}

	got, err := lookupFlows([]string{"profile", "sign-in"})
	if err != nil {
		t.Fatalf("lookupFlows error = %v", err)
	}
	if got[0].Name != "profile" || got[1].Name != "sign-in" {
		t.Errorf("lookupFlows order = %s, %s", got[0].Name, got[1].Name)
	}

	if _, err := lookupFlows([]string{"checkout"}); err == nil {
		t.Error("lookupFlows(checkout) should fail")
	}
}

func TestFlowsRaiseSeverity(t *testing.T) {
	for _, f := range flows {
		if f.Success.Severity != toast.SeveritySuccess {
			t.Errorf("%s success severity = %q", f.Name, f.Success.Severity)
		}
		if f.Failure.Severity != toast.SeverityError {
			t.Errorf("%s failure severity = %q", f.Name, f.Failure.Severity)
		}
		if f.Success.Title == "" || f.Failure.Title == "" {
			t.Errorf("%s has an empty title", f.Name)
		}
	}
}

func TestDefaultServerURL(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":3333", "http://localhost:3333"},
		{"0.0.0.0:8080", "http://localhost:8080"},
		{"127.0.0.1:9000", "http://127.0.0.1:9000"},
		{"[::]:3333", "http://localhost:3333"},
	}

	for _, tt := range tests {
		t.Run(tt.addr, func(t *testing.T) {
			if got := defaultServerURL(tt.addr); got != tt.want {
				t.Errorf("defaultServerURL(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}

func TestRunDemo(t *testing.T) {
	selected, err := lookupFlows([]string{"sign-in"})
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var buf bytes.Buffer
	err = runDemo(ctx, &buf, selected, demoConfig{
		Duration: 40 * time.Millisecond,
		Enter:    5 * time.Millisecond,
		Leave:    5 * time.Millisecond,
		Fail:     true,
	})
	if err != nil {
		t.Fatalf("runDemo error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"sign-in (SignIn, failure)",
		"entering: Erro na autenticação",
		"visible: Erro na autenticação",
		"leaving: Erro na autenticação",
		"toast-error",
		"empty",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLogFrame(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logFrame(logger, server.Frame{
		Type:   server.FrameSnapshot,
		HTML:   "<div></div>",
		Toasts: []toast.Message{{ID: "a"}, {ID: "b"}},
	}, false)

	out := buf.String()
	if !strings.Contains(out, "count=2") {
		t.Errorf("log = %q, want count=2", out)
	}
	if strings.Contains(out, "<div>") {
		t.Errorf("log = %q, html should be omitted", out)
	}
}

func TestVersionShort(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"version", "--short"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("version error = %v", err)
	}
}
