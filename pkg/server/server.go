// Package server exposes generation over HTTP.
//
// # Routes
//
//	GET /healthz                   build info
//	GET /v1/shapes                 shape catalog
//	GET /v1/presets                preset table
//	GET /v1/presets/{name}/art     render a preset
//	GET /v1/art/{hash}             render a hash as PNG
//	GET /v1/art/{hash}/plan        placement as JSON
//
// Art routes take config overrides as query parameters (width, height,
// grid, layers, shapes, variants, motif, scheme, variation, preset,
// refresh). Every response carries an X-Request-ID header.
//
// Errors are JSON bodies {"code", "message", "request_id"}. Input errors
// map to 400, unknown presets to 404 and everything else to 500.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/hashart/pkg/buildinfo"
	"github.com/matzehuels/hashart/pkg/config"
	hserrors "github.com/matzehuels/hashart/pkg/errors"
	"github.com/matzehuels/hashart/pkg/pipeline"
)

// Defaults for [Options].
const (
	DefaultAddr          = ":8080"
	DefaultMaxPixels     = 4096 * 4096
	DefaultRenderTimeout = 30 * time.Second
)

// Options configures a [Server].
type Options struct {
	Addr          string
	MaxPixels     int
	RenderTimeout time.Duration
}

func (o *Options) setDefaults() {
	if o.Addr == "" {
		o.Addr = DefaultAddr
	}
	if o.MaxPixels <= 0 {
		o.MaxPixels = DefaultMaxPixels
	}
	if o.RenderTimeout <= 0 {
		o.RenderTimeout = DefaultRenderTimeout
	}
}

// Server serves generated art.
type Server struct {
	runner *pipeline.Runner
	store  *config.Store
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New wires routes for runner and store.
func New(runner *pipeline.Runner, store *config.Store, logger *log.Logger, opts Options) *Server {
	opts.setDefaults()
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  store,
		logger: logger,
		opts:   opts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/shapes", s.handleShapes)
		r.Get("/presets", s.handlePresets)
		r.Get("/presets/{name}/art", s.handlePresetArt)
		r.Get("/art/{hash}", s.handleArt)
		r.Get("/art/{hash}/plan", s.handlePlan)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, hserrors.New(hserrors.ErrCodeNotFound, "no route for %s", r.URL.Path))
	})
	return r
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves until ctx is done, then drains for up to 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// =============================================================================
// Responses
// =============================================================================

type errorBody struct {
	Code      hserrors.Code `json:"code"`
	Message   string        `json:"message"`
	RequestID string        `json:"request_id,omitempty"`
}

func statusFor(err error) int {
	switch {
	case hserrors.IsInputError(err):
		return http.StatusBadRequest
	case hserrors.Is(err, hserrors.ErrCodeNotFound), hserrors.Is(err, hserrors.ErrCodePresetNotFound):
		return http.StatusNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := hserrors.GetCode(err)
	msg := hserrors.UserMessage(err)
	if code == "" {
		code = hserrors.ErrCodeInternal
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", RequestID(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg, RequestID: RequestID(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writePNG(w http.ResponseWriter, data []byte, cacheHit bool) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	if cacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}
