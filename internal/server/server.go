// Package server serves stats cards over HTTP.
//
// Routes:
//
//	GET /{username}.svg?theme=light|dark   rendered card
//	GET /healthz                           liveness
//	GET /metrics                           Prometheus scrape endpoint
//
// Cards are rendered on demand; upstream responses are cached by the
// Source the runner was built with.
package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/ghstats/pkg/errors"
	"github.com/matzehuels/ghstats/pkg/integrations"
	"github.com/matzehuels/ghstats/pkg/pipeline"
	"github.com/matzehuels/ghstats/pkg/render/theme"
)

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 10 * time.Second

	// DefaultMaxAge is the Cache-Control max-age of rendered cards.
	DefaultMaxAge = time.Hour
)

// Options configures a Server.
type Options struct {
	Runner *pipeline.Runner
	Logger *log.Logger
	// Gatherer backs /metrics; the route is absent when nil.
	Gatherer prometheus.Gatherer
	// MaxAge is sent as Cache-Control max-age; DefaultMaxAge when zero.
	MaxAge time.Duration
}

// Server is an http.Handler rendering cards on demand.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	maxAge time.Duration
	router chi.Router
}

// New builds the router.
func New(opts Options) *Server {
	s := &Server{
		runner: opts.Runner,
		logger: opts.Logger,
		maxAge: opts.MaxAge,
	}
	if s.logger == nil {
		s.logger = log.Default()
	}
	if s.maxAge <= 0 {
		s.maxAge = DefaultMaxAge
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/{username}.svg", s.handleCard)
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(errors.ErrCodeConfiguration, err, "listen on %s", addr)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "shutdown")
	}
	s.logger.Info("server stopped")
	return ctx.Err()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if err := errors.ValidateUsername(username); err != nil {
		s.fail(w, r, err)
		return
	}
	name, err := theme.Parse(r.URL.Query().Get("theme"))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	st, err := s.runner.Collect(r.Context(), username, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	doc := s.runner.Render(r.Context(), st, name)

	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age="+strconv.Itoa(int(s.maxAge.Seconds())))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc)))
	_, _ = w.Write(doc)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	if r.Context().Err() != nil {
		// Client went away; nobody is listening for the response.
		return
	}
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "status", status, "error", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}

// statusFor maps an error to the HTTP status reported to the client.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidUsername, errors.ErrCodeInvalidTheme, errors.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeDataFetch, errors.ErrCodeMalformedData:
		if stderrors.Is(err, integrations.ErrNotFound) {
			return http.StatusNotFound
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start))
	})
}
