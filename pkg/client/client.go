// Package client talks to a running toast server.
//
// Notify, Dismiss and List wrap the JSON API. Watch follows the snapshot
// stream and reconnects with exponential backoff whenever it drops:
//
//	c, _ := client.New("http://localhost:3333")
//	err := c.Watch(ctx, func(f server.Frame) {
//	    fmt.Println(len(f.Toasts), "active")
//	})
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gorilla/websocket"

	verrors "github.com/montgomery-finn/gobarber-web/internal/errors"
	"github.com/montgomery-finn/gobarber-web/pkg/server"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

// Defaults for retrying requests and reconnecting.
const (
	DefaultAttempts = 5
	DefaultDelay    = 250 * time.Millisecond
	DefaultMaxDelay = 5 * time.Second
)

// Client is a toast server client. It is safe for concurrent use.
type Client struct {
	base     *url.URL
	http     *http.Client
	dialer   *websocket.Dialer
	attempts uint
	delay    time.Duration
	maxDelay time.Duration
	logger   *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetry sets the attempt budget and initial backoff delay. Attempts of
// zero retry until the context ends.
func WithRetry(attempts uint, delay time.Duration) Option {
	return func(c *Client) {
		c.attempts = attempts
		if delay > 0 {
			c.delay = delay
		}
	}
}

// WithMaxDelay caps the backoff delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.maxDelay = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3333".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("server url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		base:     u,
		http:     &http.Client{Timeout: 10 * time.Second},
		dialer:   websocket.DefaultDialer,
		attempts: DefaultAttempts,
		delay:    DefaultDelay,
		maxDelay: DefaultMaxDelay,
		logger:   slog.Default().With("component", "client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ValidationError is returned when the server rejects a toast.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "invalid toast: " + strings.Join(parts, "; ")
}

// StatusError is a non-success HTTP response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, strings.TrimSpace(e.Body))
}

func (c *Client) retryOpts(ctx context.Context, op string) []retry.Option {
	return []retry.Option{
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.MaxDelay(c.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Debug("retrying", "op", op, "attempt", n+1, "error", err)
		}),
	}
}

func (c *Client) endpoint(path string) string {
	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	return u.String()
}

// request performs one API call, retrying transport errors and 5xx replies.
// Client errors are returned immediately.
func (c *Client) request(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	return retry.Do(func() error {
		req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), bytes.NewReader(payload))
		if err != nil {
			return retry.Unrecoverable(err)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}

		switch {
		case resp.StatusCode == http.StatusUnprocessableEntity:
			var v struct {
				Errors map[string]string `json:"errors"`
			}
			if err := json.Unmarshal(data, &v); err != nil {
				return retry.Unrecoverable(&StatusError{Status: resp.StatusCode, Body: string(data)})
			}
			return retry.Unrecoverable(&ValidationError{Fields: v.Errors})
		case resp.StatusCode >= 500:
			return &StatusError{Status: resp.StatusCode, Body: string(data)}
		case resp.StatusCode >= 400:
			return retry.Unrecoverable(&StatusError{Status: resp.StatusCode, Body: string(data)})
		}

		if out != nil {
			if err := json.Unmarshal(data, out); err != nil {
				return retry.Unrecoverable(fmt.Errorf("decode response: %w", err))
			}
		}
		return nil
	}, c.retryOpts(ctx, method+" "+path)...)
}

// Notify adds a toast and returns its id.
func (c *Client) Notify(ctx context.Context, in toast.Input) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.request(ctx, http.MethodPost, "/toasts", in, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// Dismiss removes a toast. Unknown ids are not an error.
func (c *Client) Dismiss(ctx context.Context, id string) error {
	return c.request(ctx, http.MethodDelete, "/toasts/"+url.PathEscape(id), nil, nil)
}

// List returns the active toasts in order.
func (c *Client) List(ctx context.Context) ([]toast.Message, error) {
	var out struct {
		Toasts []toast.Message `json:"toasts"`
	}
	if err := c.request(ctx, http.MethodGet, "/toasts", nil, &out); err != nil {
		return nil, err
	}
	return out.Toasts, nil
}

func (c *Client) streamURL() string {
	u := *c.base
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}
	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String()
}

// dial opens the stream, retrying with backoff.
func (c *Client) dial(ctx context.Context) (*websocket.Conn, error) {
	conn, err := retry.DoWithData(func() (*websocket.Conn, error) {
		conn, resp, err := c.dialer.DialContext(ctx, c.streamURL(), nil)
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return conn, err
	}, c.retryOpts(ctx, "dial")...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, verrors.New("T060").
			WithDetail(fmt.Sprintf("Could not connect to %s.", c.streamURL())).
			WithSuggestion("Check that the server is running and reachable.").
			Wrap(err)
	}
	return conn, nil
}

// Watch calls fn for every frame on the stream until ctx ends, reconnecting
// when the stream drops. It returns ctx.Err() on cancellation, or an error
// once reconnecting has exhausted its attempts.
func (c *Client) Watch(ctx context.Context, fn func(server.Frame)) error {
	for {
		conn, err := c.dial(ctx)
		if err != nil {
			return err
		}
		c.logger.Debug("stream connected", "url", c.streamURL())

		err = c.read(ctx, conn, fn)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("stream lost, reconnecting", "code", "T060", "error", err)
	}
}

func (c *Client) read(ctx context.Context, conn *websocket.Conn, fn func(server.Frame)) error {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			conn.Close()
		case <-done:
		}
	}()

	for {
		var f server.Frame
		if err := conn.ReadJSON(&f); err != nil {
			return err
		}
		fn(f)
	}
}
