package api

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	mw "github.com/tphakala/hamkit/internal/api/middleware"
	"github.com/tphakala/hamkit/internal/band"
	"github.com/tphakala/hamkit/internal/country"
	"github.com/tphakala/hamkit/internal/errors"
	"github.com/tphakala/hamkit/internal/logger"
	"github.com/tphakala/hamkit/internal/observability"
	"github.com/tphakala/hamkit/internal/resolver"
)

// Resolver is the lookup engine behind the API.
type Resolver interface {
	LookupCallsign(callsign string, at time.Time) (country.Entity, bool)
	LookupID(id country.DXCC) (country.Entity, bool)
	Band(f band.Frequency) (band.Band, bool)
	Segments(r band.Range) []band.Segment
	Markers(r band.Range) []band.Marker
	Bands() *band.Service
	Status() resolver.Status
	TriggerRefresh(ctx context.Context) error
}

// Server is the HTTP server for hamkit.
type Server struct {
	echo     *echo.Echo
	config   Config
	resolver Resolver
	metrics  *observability.Metrics
	log      logger.Logger
	now      func() time.Time

	startTime time.Time
}

// ServerOption is a functional option for configuring the Server.
type ServerOption func(*Server)

// WithLogger sets the server logger.
func WithLogger(log logger.Logger) ServerOption {
	return func(s *Server) {
		s.log = log
	}
}

// WithMetrics sets the metrics served on /metrics.
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithClock sets the clock used when a lookup has no "at" parameter.
func WithClock(now func() time.Time) ServerOption {
	return func(s *Server) {
		s.now = now
	}
}

// New creates a new HTTP server.
func New(cfg Config, res Resolver, opts ...ServerOption) *Server {
	s := &Server{
		config:    cfg,
		resolver:  res,
		now:       time.Now,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = GetLogger()
	}

	s.echo = echo.New()
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Server.ReadTimeout = cfg.ReadTimeout
	s.echo.Server.WriteTimeout = cfg.WriteTimeout
	s.echo.Server.IdleTimeout = cfg.IdleTimeout
	s.echo.HTTPErrorHandler = s.httpErrorHandler

	s.setupMiddleware()
	s.setupRoutes()

	s.log.Info("HTTP server initialized",
		logger.String("address", cfg.Listen),
		logger.Bool("metrics", s.metricsEnabled()))
	return s
}

func (s *Server) setupMiddleware() {
	if s.metrics != nil {
		s.echo.Use(mw.NewRequestMetrics(s.metrics.HTTP))
	}
	s.echo.Use(echomw.Recover())
	s.echo.Use(mw.NewRequestLoggerWithSkipper(s.log, func(c echo.Context) bool {
		return c.Path() == "/metrics" || c.Path() == "/health"
	}))
	if s.config.BodyLimit != "" {
		s.echo.Use(echomw.BodyLimit(s.config.BodyLimit))
	}
	s.echo.Use(echomw.Gzip())
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)

	v1 := s.echo.Group("/api/v1")
	v1.GET("/callsign/*", s.GetCallsign)
	v1.GET("/entity/:id", s.GetEntity)
	v1.GET("/band", s.GetBand)
	v1.GET("/plan", s.GetPlan)
	v1.GET("/status", s.GetStatus)
	v1.POST("/refresh", s.PostRefresh)

	if s.metricsEnabled() {
		s.echo.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	}
}

func (s *Server) metricsEnabled() bool {
	return s.config.Metrics && s.metrics != nil
}

func (s *Server) healthCheck(c echo.Context) error {
	uptime := time.Since(s.startTime)
	return c.JSON(http.StatusOK, map[string]any{
		"status":         "healthy",
		"uptime":         uptime.Truncate(time.Second).String(),
		"uptime_seconds": uptime.Seconds(),
		"timestamp":      s.now().Format(time.RFC3339),
	})
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("starting HTTP server", logger.String("address", s.config.Listen))
		errCh <- s.echo.Start(s.config.Listen)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.New(err).
			Component("api").
			Category(errors.CategoryNetwork).
			Context("address", s.config.Listen).
			Build()
	case <-ctx.Done():
	}

	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	timeout := s.config.ShutdownTimeout
	if timeout <= 0 {
		timeout = DefaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.log.Error("error during server shutdown", logger.Error(err))
		return errors.New(err).Component("api").Category(errors.CategoryNetwork).Build()
	}
	s.log.Info("server shutdown complete")
	return nil
}

// Echo returns the underlying Echo instance.
// This is useful for testing or advanced configuration.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
