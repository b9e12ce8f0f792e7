package proxy

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// exposedHeaders lets browser code read the API usage header.
var exposedHeaders = []string{"SForce-Limit-Info"}

// Server forwards /proxy requests to the endpoint named in the request.
type Server struct {
	cfg     Config
	logger  *zap.Logger
	client  *http.Client
	pattern *regexp.Regexp
	forward map[string]struct{}

	// inflight counts requests being forwarded.
	inflight atomic.Int64
}

// Option configures a Server.
type Option func(*Server)

// WithHTTPClient replaces the client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Server) { s.client = c }
}

func New(cfg Config, logger *zap.Logger, opts ...Option) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid proxy config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		client:  &http.Client{Timeout: cfg.Timeout},
		pattern: regexp.MustCompile(cfg.EndpointPattern),
		forward: make(map[string]struct{}, len(cfg.ForwardHeaders)),
	}
	for _, h := range cfg.ForwardHeaders {
		s.forward[http.CanonicalHeaderKey(strings.TrimSpace(h))] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Server) Config() Config { return s.cfg }

// Handler returns the routed handler with CORS and request logging.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(s.logger, s.cfg.EndpointHeader))
	r.Use(middleware.Recoverer)
	r.Use(s.cors().Handler)

	r.NotFound(s.notFound)
	r.MethodNotAllowed(s.methodNotAllowed)

	r.HandleFunc("/proxy", s.handleProxy)
	r.HandleFunc("/proxy/*", s.handleProxy)
	return r
}

func (s *Server) cors() *cors.Cors {
	allowedHeaders := append([]string{s.cfg.EndpointHeader, "X-Authorization"}, s.cfg.ForwardHeaders...)
	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodPut,
			http.MethodDelete,
		},
		AllowedHeaders: allowedHeaders,
		ExposedHeaders: exposedHeaders,
	})
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("not found", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	http.Error(w, "Not Found", http.StatusNotFound)
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.logger.Warn("method not allowed", zap.String("method", r.Method), zap.String("path", r.URL.Path))
	http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
}

// Run listens on the configured port and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
// The listener is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("proxy listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("mode", string(s.cfg.Mode)),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("proxy stopped")
		return nil
	})
	return g.Wait()
}
