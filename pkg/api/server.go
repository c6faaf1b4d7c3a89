// Package api serves recorded animations over HTTP.
//
// Every request runs the engines headlessly against a step.Recorder and
// returns what a player would have shown: the narration transcript, the
// traced listing lines, the number of frames and the total animation time
// at speed 1. Runs never sleep on the server.
//
// # Routes
//
//	GET  /healthz           liveness and build version
//	GET  /presets           predefined graphs
//	GET  /presets/{key}/diagram  one preset as SVG or DOT, cached in memory
//	GET  /listings          names of the pseudo-code listings
//	GET  /listings/{name}   one listing
//	POST /tree/runs         a sequence of tree operations
//	POST /graph/runs        one Eulerian or Hamiltonian search
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/algoviz/pkg/buildinfo"
	"github.com/matzehuels/algoviz/pkg/cache"
	"github.com/matzehuels/algoviz/pkg/errors"
	"github.com/matzehuels/algoviz/pkg/observability"
	"github.com/matzehuels/algoviz/pkg/step"
)

// Request limits. Instances are meant to be small enough to watch.
const (
	maxBodyBytes = 1 << 20
	maxOps       = 100
	maxValues    = 256
	maxNodes     = 16
	maxEdges     = 64
)

// Server is the HTTP API.
type Server struct {
	Logger *log.Logger

	// Unit is the pacing unit used to compute animation time.
	Unit time.Duration

	router   chi.Router
	diagrams *cache.MemoryCache
	keyer    cache.Keyer
}

// New creates a server. A nil logger uses log.Default().
func New(logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		Logger:   logger,
		Unit:     step.DefaultUnit,
		diagrams: cache.NewMemoryCache(maxDiagrams),
		keyer:    cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Short()+":"),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.health)
	r.Get("/presets", s.presets)
	r.Get("/presets/{key}/diagram", s.presetDiagram)
	r.Get("/listings", s.listings)
	r.Get("/listings/{name}", s.listing)
	r.Post("/tree/runs", s.treeRuns)
	r.Post("/graph/runs", s.graphRuns)

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.Logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.Logger.Info("shutting down")
		defer s.diagrams.Close()
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Middleware
// =============================================================================

// observe logs every request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.Logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", d,
			"id", middleware.GetReqID(r.Context()))
	})
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Warn("write response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := codeOf(err)
	status := statusFor(code)
	if status >= 500 {
		s.Logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, status, errorBody{Code: code, Message: errors.UserMessage(err)})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidMode, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeBusy:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "invalid request body")
	}
	return nil
}

// =============================================================================
// Simple handlers
// =============================================================================

// GET /healthz
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Short(),
	})
}

// GET /listings
func (s *Server) listings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, step.Names())
}

// GET /listings/{name}
func (s *Server) listing(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	l, ok := step.Lookup(name)
	if !ok {
		s.writeError(w, r, errors.New(errors.ErrCodeNotFound, "no listing named %q", name))
		return
	}
	s.writeJSON(w, http.StatusOK, l)
}
