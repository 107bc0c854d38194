package server

import (
	"net/http"
	"net/url"
	"time"

	"github.com/montgomery-finn/gobarber-web/pkg/transition"
)

// Config configures the toast server.
type Config struct {
	// Address is the listen address. Default: ":3333".
	Address string

	// Title is the page title. Default: "GoBarber".
	Title string

	// EnterDuration and LeaveDuration drive the transition engine and the
	// stylesheet. Default: transition.DefaultEnter and DefaultLeave.
	EnterDuration time.Duration
	LeaveDuration time.Duration

	// ReadBufferSize and WriteBufferSize size the WebSocket buffers.
	ReadBufferSize  int
	WriteBufferSize int

	// WriteTimeout bounds a single WebSocket write. Default: 10s.
	WriteTimeout time.Duration

	// PingInterval is how often idle clients are pinged. Default: 30s.
	PingInterval time.Duration

	// SendBuffer is the number of frames queued per client before the
	// client is considered too slow and dropped. Default: 16.
	SendBuffer int

	// CheckOrigin validates the Origin header of WebSocket upgrades.
	// Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// ShutdownTimeout is the maximum time to wait for graceful shutdown.
	// Default: 10s.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout bounds request header reads. Default: 5s.
	ReadHeaderTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":3333",
		Title:             "GoBarber",
		EnterDuration:     transition.DefaultEnter,
		LeaveDuration:     transition.DefaultLeave,
		ReadBufferSize:    4096,
		WriteBufferSize:   4096,
		WriteTimeout:      10 * time.Second,
		PingInterval:      30 * time.Second,
		SendBuffer:        16,
		CheckOrigin:       SameOriginCheck,
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	defaults := DefaultConfig()
	if c == nil {
		return defaults
	}
	out := *c
	if out.Address == "" {
		out.Address = defaults.Address
	}
	if out.Title == "" {
		out.Title = defaults.Title
	}
	if out.EnterDuration <= 0 {
		out.EnterDuration = defaults.EnterDuration
	}
	if out.LeaveDuration <= 0 {
		out.LeaveDuration = defaults.LeaveDuration
	}
	if out.ReadBufferSize == 0 {
		out.ReadBufferSize = defaults.ReadBufferSize
	}
	if out.WriteBufferSize == 0 {
		out.WriteBufferSize = defaults.WriteBufferSize
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = defaults.WriteTimeout
	}
	if out.PingInterval == 0 {
		out.PingInterval = defaults.PingInterval
	}
	if out.SendBuffer <= 0 {
		out.SendBuffer = defaults.SendBuffer
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = defaults.CheckOrigin
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = defaults.ShutdownTimeout
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = defaults.ReadHeaderTimeout
	}
	return &out
}

// SameOriginCheck validates that the WebSocket request origin matches the host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// No Origin header (e.g., same-origin request or a CLI client)
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if r.Host == "" {
		return false
	}
	return originURL.Host == r.Host
}
