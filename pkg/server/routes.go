package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/montgomery-finn/gobarber-web/pkg/render"
	"github.com/montgomery-finn/gobarber-web/pkg/toast"
	"github.com/montgomery-finn/gobarber-web/pkg/toastview"
	"github.com/montgomery-finn/gobarber-web/pkg/validation"
)

// maxBodySize bounds POST /toasts bodies.
const maxBodySize = 64 << 10

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	if s.tracing != nil {
		r.Use(s.tracing)
	}
	if s.metrics != nil {
		r.Use(s.metrics.Handler)
	}
	r.Use(s.accessLog)

	r.Get("/", s.handlePage)
	r.Get("/toasts.js", s.serveThinClient)
	r.Head("/toasts.js", s.serveThinClient)
	r.Get("/toasts", s.handleList)
	r.Post("/toasts", s.handleAdd)
	r.Get("/toasts/container", s.handleContainer)
	r.Delete("/toasts/{id}", s.handleDismiss)
	r.Get("/ws", s.handleStream)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			s.logger.Error("failed to write health check response", "error", err)
		}
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Exposer())
	}
	return r
}

// accessLog logs each request at debug level with its chi request id.
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.LogAttrs(r.Context(), slog.LevelDebug, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", chimiddleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := s.renderer.RenderPage(w, render.PageData{
		Title: s.config.Title,
		Styles: []string{
			toastview.Stylesheet(s.config.EnterDuration.Milliseconds(), s.config.LeaveDuration.Milliseconds()),
		},
		ScriptURLs: []string{"/toasts.js"},
		Body:       toastview.Container(s.engine.Items(), s.dismissAsync),
	})
	if err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleContainer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderToWriter(w, toastview.Container(s.engine.Items(), s.dismissAsync)); err != nil {
		s.logger.Error("render container failed", "error", err)
	}
}

type listResponse struct {
	Toasts []toast.Message `json:"toasts"`
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	msgs := s.provider.Messages()
	if msgs == nil {
		msgs = []toast.Message{}
	}
	respondJSON(w, s.logger, http.StatusOK, listResponse{Toasts: msgs})
}

type addResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	var in toast.Input
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(&in); err != nil {
		respondJSON(w, s.logger, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if err := validation.Struct(in); err != nil {
		respondJSON(w, s.logger, http.StatusUnprocessableEntity, errorResponse{Errors: validation.Errors(err)})
		return
	}

	id, err := s.add(r.Context(), in)
	if err != nil {
		status := http.StatusServiceUnavailable
		if errors.Is(err, r.Context().Err()) {
			status = http.StatusRequestTimeout
		}
		respondJSON(w, s.logger, status, errorResponse{Error: err.Error()})
		return
	}
	respondJSON(w, s.logger, http.StatusCreated, addResponse{ID: id})
}

func (s *Server) handleDismiss(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.do(r.Context(), func() { s.provider.Remove(id) }); err != nil {
		respondJSON(w, s.logger, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		s.hub.reportError(err)
		s.logger.Warn("upgrade failed", "code", "T060", "error", err)
		return
	}

	c := &client{
		conn:   conn,
		send:   make(chan []byte, s.config.SendBuffer),
		remote: r.RemoteAddr,
	}
	if !s.hub.add(c) {
		conn.Close()
		return
	}
	s.logger.Debug("client connected", "remote", c.remote)

	go s.writePump(c)
	s.readPump(c)
}

// respondJSON writes data as JSON with the given status.
func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}
