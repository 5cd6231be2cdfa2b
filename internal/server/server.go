// Package server exposes a routes.Service over HTTP with gin.
//
// JSON endpoints live under /api, embeddable HTML fragments under /html.
// Every response carries an X-Request-ID header, taken from the request
// when present.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wayfinder/routes"
)

const requestIDHeader = "X-Request-ID"

// ReloadFunc reloads the graph behind the service and reports the result.
type ReloadFunc func(ctx context.Context) (routes.Stats, error)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and error logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithReload enables POST /api/reload.
func WithReload(fn ReloadFunc) Option {
	return func(s *Server) { s.reload = fn }
}

// WithGatherer serves g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// Server routes HTTP requests to a routes.Service.
type Server struct {
	svc      *routes.Service
	log      logrus.FieldLogger
	reload   ReloadFunc
	gatherer prometheus.Gatherer
	engine   *gin.Engine
}

// New builds the router. gin's mode is left to the caller.
func New(svc *routes.Service, opts ...Option) *Server {
	s := &Server{svc: svc, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestID, s.accessLog)

	r.GET("/healthz", s.health)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	api.GET("/stats", s.stats)
	api.GET("/locations", s.locations)
	api.GET("/path", s.path)
	api.GET("/furthest", s.furthest)
	api.GET("/reachable", s.reachable)
	api.POST("/reload", s.reloadGraph)

	html := r.Group("/html")
	html.GET("/path/prompt", s.pathPrompt)
	html.GET("/path", s.pathHTML)
	html.GET("/furthest/prompt", s.furthestPrompt)
	html.GET("/furthest", s.furthestHTML)

	s.engine = r

	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is done, then shuts down gracefully within
// shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.WithField("addr", addr).Info("http server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("http server stopped")

	return nil
}

func (s *Server) requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(requestIDHeader, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (s *Server) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	entry := s.log.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDHeader),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
	if c.Writer.Status() >= http.StatusInternalServerError {
		entry.Warn("request failed")
		return
	}
	entry.Debug("request served")
}
