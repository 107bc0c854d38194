package config

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/montgomery-finn/gobarber-web/internal/errors"
	"github.com/montgomery-finn/gobarber-web/pkg/validation"
)

const (
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GOBARBER"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":3333"

	// DefaultToastDuration is how long a toast stays before auto-dismissal.
	DefaultToastDuration = 3 * time.Second
)

// Config is the complete server configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Toast      ToastConfig      `mapstructure:"toast"`
	Transition TransitionConfig `mapstructure:"transition"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Loop       LoopConfig       `mapstructure:"loop"`

	// path is the file the config was read from, if any.
	path string
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// ToastConfig contains toast lifecycle settings.
type ToastConfig struct {
	// Duration applies to every toast; there is no per-toast override.
	Duration time.Duration `mapstructure:"duration" validate:"gt=0"`
	IDFormat string        `mapstructure:"id_format" validate:"oneof=uuid ksuid"`
}

// TransitionConfig contains enter/leave animation durations.
type TransitionConfig struct {
	Enter time.Duration `mapstructure:"enter" validate:"gt=0"`
	Leave time.Duration `mapstructure:"leave" validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	TracerName string `mapstructure:"tracer_name" validate:"required"`
}

// LoopConfig contains event loop settings.
type LoopConfig struct {
	QueueSize int `mapstructure:"queue_size" validate:"gt=0"`
}

// defaults is the single source of default values.
var defaults = map[string]any{
	"server.addr":             DefaultAddr,
	"server.shutdown_timeout": 10 * time.Second,
	"toast.duration":          DefaultToastDuration,
	"toast.id_format":         "uuid",
	"transition.enter":        300 * time.Millisecond,
	"transition.leave":        300 * time.Millisecond,
	"log.level":               "info",
	"log.format":              "text",
	"metrics.enabled":         true,
	"metrics.namespace":       "gobarber",
	"tracing.tracer_name":     "github.com/montgomery-finn/gobarber-web",
	"loop.queue_size":         256,
}

// Keys returns every configuration key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// New returns a Config holding only defaults.
func New() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are static; failing here is a programming error.
		panic(err)
	}
	return cfg
}

// Load reads configuration from path and the environment. An empty path
// skips the file.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("T002").
				WithDetail(fmt.Sprintf("Failed to read %s: %v", path, err)).
				Wrap(err)
		}
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newViper() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	for _, key := range Keys() {
		if err := v.BindEnv(key, EnvVar(key)); err != nil {
			return nil, errors.New("T002").Wrap(err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("T002").
			WithDetail("Failed to decode configuration: " + err.Error()).
			Wrap(err)
	}
	return cfg, nil
}

var validate = validation.New(validation.WithTagName("mapstructure"))

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	fields := validation.Errors(err)
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, fields[k]))
	}
	return errors.New("T002").
		WithDetail(strings.Join(lines, "; ")).
		Wrap(err)
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// SlogLevel returns the configured level, defaulting to info.
func (l LogConfig) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: l.SlogLevel()}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
