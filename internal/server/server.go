package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/nao1215/veritas/internal/model"
)

const (
	// DefaultAddress is the listen address used when none is given.
	DefaultAddress = ":5000"

	// DefaultShutdownTimeout bounds graceful shutdown.
	DefaultShutdownTimeout = 5 * time.Second

	// RequestIDHeader carries the per-request identifier.
	RequestIDHeader = "X-Request-ID"

	// LandingText is the body of GET /.
	LandingText = "Veritas backend is running!"

	// SummaryInvalidBody is the summary for an unparsable request body.
	SummaryInvalidBody = "Invalid request body."

	// maxRequestBody caps POST /analyze bodies.
	maxRequestBody = 1 << 20
)

// ErrInvalidOrigin is returned for a CORS origin without an http(s) scheme.
var ErrInvalidOrigin = errors.New("allowed origin must start with http:// or https://")

// Analyzer is the verdict pipeline served over HTTP.
type Analyzer interface {
	Analyze(ctx context.Context, req model.AnalysisRequest) model.AnalysisResult
	StrategyName() string
}

// Server exposes an Analyzer over HTTP.
type Server struct {
	analyzer        Analyzer
	engine          *gin.Engine
	logger          *slog.Logger
	address         string
	allowedOrigins  []string
	shutdownTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithAddress sets the listen address.
func WithAddress(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.address = addr
		}
	}
}

// WithAllowedOrigins sets the CORS origins. "*" or an empty list allows all.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) {
		s.allowedOrigins = origins
	}
}

// WithLogger sets the logger used for request logs.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithShutdownTimeout sets how long Run waits for in-flight requests.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// New creates a Server and registers its routes.
func New(a Analyzer, opts ...Option) (*Server, error) {
	s := &Server{
		analyzer:        a,
		logger:          slog.Default(),
		address:         DefaultAddress,
		shutdownTimeout: DefaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	corsConfig, err := s.corsConfig()
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestID())
	engine.Use(requestLogger(s.logger))
	engine.Use(cors.New(corsConfig))

	engine.GET("/", s.handleRoot)
	engine.GET("/health", s.handleHealth)
	engine.POST("/analyze", s.handleAnalyze)
	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	s.engine = engine
	return s, nil
}

// Handler returns the HTTP handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Address returns the configured listen address.
func (s *Server) Address() string {
	return s.address
}

// Run listens on the configured address and serves until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully within the shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	// Shutdown only closes listeners Serve has started tracking.
	defer ln.Close() //nolint:errcheck

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "address", ln.Addr().String(), "strategy", s.analyzer.StrategyName())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

func (s *Server) corsConfig() (cors.Config, error) {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(s.allowedOrigins) == 0 || slices.Contains(s.allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg, nil
	}
	for _, origin := range s.allowedOrigins {
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return cors.Config{}, fmt.Errorf("%w: %q", ErrInvalidOrigin, origin)
		}
	}
	cfg.AllowOrigins = s.allowedOrigins
	return cfg, nil
}
