package config

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/montgomery-finn/gobarber-web/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Toast.Duration != DefaultToastDuration {
		t.Errorf("Toast.Duration = %v, want %v", cfg.Toast.Duration, DefaultToastDuration)
	}
	if cfg.Toast.IDFormat != "uuid" {
		t.Errorf("Toast.IDFormat = %q, want uuid", cfg.Toast.IDFormat)
	}
	if cfg.Transition.Enter != 300*time.Millisecond {
		t.Errorf("Transition.Enter = %v", cfg.Transition.Enter)
	}
	if cfg.Loop.QueueSize != 256 {
		t.Errorf("Loop.QueueSize = %d", cfg.Loop.QueueSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobarber.yaml")
	yaml := `server:
  addr: ":8080"
toast:
  duration: 5s
  id_format: ksuid
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Toast.Duration != 5*time.Second {
		t.Errorf("Toast.Duration = %v", cfg.Toast.Duration)
	}
	if cfg.Toast.IDFormat != "ksuid" {
		t.Errorf("Toast.IDFormat = %q", cfg.Toast.IDFormat)
	}
	if cfg.Log.SlogLevel().String() != "DEBUG" {
		t.Errorf("SlogLevel() = %v", cfg.Log.SlogLevel())
	}
	// Untouched keys keep defaults.
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q", cfg.Path())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gobarber.yaml")
	if err := os.WriteFile(path, []byte("toast:\n  duration: 5s\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GOBARBER_TOAST_DURATION", "1500ms")
	t.Setenv("GOBARBER_SERVER_ADDR", "127.0.0.1:9999")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Toast.Duration != 1500*time.Millisecond {
		t.Errorf("Toast.Duration = %v, want 1.5s", cfg.Toast.Duration)
	}
	if cfg.Server.Addr != "127.0.0.1:9999" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") = %v", err)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		detail  string
	}{
		{name: "missing file", detail: "Failed to read"},
		{
			name:    "bad id format",
			content: "toast:\n  id_format: serial\n",
			detail:  "toast.id_format",
		},
		{
			name:    "bad log level",
			content: "log:\n  level: loud\n",
			detail:  "log.level",
		},
		{
			name:   "zero duration from env",
			env:    map[string]string{"GOBARBER_TOAST_DURATION": "0s"},
			detail: "toast.duration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "missing.yaml")
			if tt.content != "" || tt.env != nil {
				path = filepath.Join(dir, "gobarber.yaml")
				if err := os.WriteFile(path, []byte(tt.content+"\n"), 0644); err != nil {
					t.Fatal(err)
				}
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			var verr *errors.Error
			if !stderrors.As(err, &verr) || verr.Code != "T002" {
				t.Fatalf("err = %v, want T002", err)
			}
			if !strings.Contains(verr.Detail, tt.detail) {
				t.Errorf("Detail = %q, want it to mention %q", verr.Detail, tt.detail)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("server.shutdown_timeout"); got != "GOBARBER_SERVER_SHUTDOWN_TIMEOUT" {
		t.Errorf("EnvVar() = %q", got)
	}
	if len(Keys()) != len(defaults) {
		t.Error("Keys() should list every default")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf).Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	LogConfig{Level: "info", Format: "json"}.NewLogger(&buf).Info("shown", "k", "v")
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Errorf("expected JSON output, got %q", buf.String())
	}
}
