package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/montgomery-finn/gobarber-web/pkg/toast"
)

func newTestRouter(m *Metrics) chi.Router {
	r := chi.NewRouter()
	r.Use(m.Handler)
	r.Get("/toasts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return r
}

func TestMetricsHandler_LabelsByRoutePattern(t *testing.T) {
	m := NewMetrics(WithRegistry(prometheus.NewRegistry()))
	r := newTestRouter(m)

	for _, path := range []string{"/toasts/a", "/toasts/b", "/boom"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/toasts/{id}", "204")); got != 2 {
		t.Errorf("requests_total(/toasts/{id}, 204) = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/boom", "500")); got != 1 {
		t.Errorf("requests_total(/boom, 500) = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.requestDuration); n != 2 {
		t.Errorf("request_duration series = %d, want 2", n)
	}
}

func TestMetrics_ToastObserver(t *testing.T) {
	m := NewMetrics()

	m.ToastAdded(toast.Message{ID: "1", Severity: toast.SeveritySuccess})
	m.ToastAdded(toast.Message{ID: "2", Severity: "weird"})
	m.ToastRemoved(toast.Message{ID: "1"}, toast.ReasonExpired)

	if got := testutil.ToFloat64(m.toastsAdded.WithLabelValues("success")); got != 1 {
		t.Errorf("toasts_added(success) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.toastsAdded.WithLabelValues("info")); got != 1 {
		t.Errorf("toasts_added(info) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.toastsRemoved.WithLabelValues("expired")); got != 1 {
		t.Errorf("toasts_removed(expired) = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.activeToasts); got != 1 {
		t.Errorf("active_toasts = %v, want 1", got)
	}
}

func TestMetrics_StreamClients(t *testing.T) {
	m := NewMetrics()
	m.RecordClientConnect()
	m.RecordClientConnect()
	m.RecordClientDisconnect()
	m.RecordWebSocketError(errors.New("websocket: close 1006"))

	if got := testutil.ToFloat64(m.streamClients); got != 1 {
		t.Errorf("stream_clients = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.wsErrors.WithLabelValues("closed")); got != 1 {
		t.Errorf("websocket_errors(closed) = %v, want 1", got)
	}
}

func TestMetrics_Exposer(t *testing.T) {
	m := NewMetrics(WithNamespace("test"), WithConstLabels(prometheus.Labels{"app": "toasts"}))
	m.ToastAdded(toast.Message{ID: "1", Severity: toast.SeverityError})

	rec := httptest.NewRecorder()
	m.Exposer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)

	want := `test_toasts_added_total{app="toasts",severity="error"} 1`
	if !strings.Contains(string(body), want) {
		t.Errorf("exposition missing %q\n%s", want, body)
	}
}

func TestCategorizeError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "unknown"},
		{errors.New("i/o timeout"), "timeout"},
		{errors.New("websocket: close sent"), "closed"},
		{errors.New("websocket: the client is not using the websocket protocol: 'upgrade' token not found"), "handshake"},
		{errors.New("write: broken pipe"), "write"},
		{errors.New("something else"), "internal"},
	}
	for _, tt := range tests {
		if got := categorizeError(tt.err); got != tt.want {
			t.Errorf("categorizeError(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
