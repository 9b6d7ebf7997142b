// Package server exposes a playback controller and its graph over HTTP.
//
// Routes:
//
//	GET    /health
//	GET    /ws                               websocket frame stream
//	GET    /metrics                          Prometheus (when enabled)
//	GET    /api/v1/state
//	GET    /api/v1/trace
//	GET    /api/v1/algorithms
//	PUT    /api/v1/algorithm                 {"name": "..."}
//	PUT    /api/v1/interval                  {"interval_ms": 250}
//	POST   /api/v1/commands/:name            play, pause, step-forward, ...
//	GET    /api/v1/graph
//	POST   /api/v1/graph/vertices            {"x": 1, "y": 2}
//	DELETE /api/v1/graph/vertices/:id
//	PUT    /api/v1/graph/vertices/:id/pin    {"x": 1, "y": 2}
//	DELETE /api/v1/graph/vertices/:id/pin
//	POST   /api/v1/graph/vertices/:id/click
//	POST   /api/v1/graph/edges               {"source": "v1", "target": "v2", "weight": 3}
//	DELETE /api/v1/graph/edges/:id
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/graphplay/graph"
	"github.com/katalvlaran/graphplay/playback"
)

// Server wires HTTP handlers to a controller and its store.
type Server struct {
	ctrl    *playback.Controller
	store   *graph.Store
	ws      http.Handler
	log     *slog.Logger
	metrics bool
	started time.Time
}

// Option configures a Server.
type Option func(*Server)

// WithWebsocket mounts h (normally a *render.Hub) at /ws.
func WithWebsocket(h http.Handler) Option {
	return func(s *Server) { s.ws = h }
}

// WithMetrics toggles the /metrics endpoint.
func WithMetrics(enabled bool) Option {
	return func(s *Server) { s.metrics = enabled }
}

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New returns a Server for ctrl and store.
func New(ctrl *playback.Controller, store *graph.Store, opts ...Option) *Server {
	s := &Server{
		ctrl:    ctrl,
		store:   store,
		log:     slog.Default(),
		metrics: true,
		started: time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Router builds the gin engine.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(Recovery(s.log))
	router.Use(Logger(s.log))

	router.GET("/health", s.health)
	if s.ws != nil {
		router.GET("/ws", gin.WrapH(s.ws))
	}
	if s.metrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/state", s.state)
		v1.GET("/trace", s.trace)
		v1.GET("/algorithms", s.algorithms)
		v1.PUT("/algorithm", s.setAlgorithm)
		v1.PUT("/interval", s.setInterval)
		v1.POST("/commands/:name", s.command)

		g := v1.Group("/graph")
		{
			g.GET("", s.graph)
			g.POST("/vertices", s.addVertex)
			g.DELETE("/vertices/:id", s.removeVertex)
			g.PUT("/vertices/:id/pin", s.pin)
			g.DELETE("/vertices/:id/pin", s.unpin)
			g.POST("/vertices/:id/click", s.click)
			g.POST("/edges", s.addEdge)
			g.DELETE("/edges/:id", s.removeEdge)
		}
	}

	return router
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("http server shutting down")

		return srv.Shutdown(shutdownCtx)
	}
}

// StateOf summarizes ctrl; shared by the state endpoint and websocket greetings.
func StateOf(ctrl *playback.Controller) StateResponse {
	pending := ctrl.Pending()
	names := make([]string, 0, len(pending))
	for _, c := range pending {
		names = append(names, c.String())
	}
	resp := StateResponse{
		State:      ctrl.State().String(),
		Algorithm:  ctrl.Algorithm(),
		IntervalMs: ctrl.Interval().Milliseconds(),
		Progress:   ctrl.Progress(),
		View:       ctrl.View(),
		Pending:    names,
	}
	if cur := ctrl.Running(); cur != 0 {
		resp.Running = cur.String()
	}
	if err := ctrl.Err(); err != nil {
		resp.Error = err.Error()
	}

	return resp
}

// statusOf maps domain errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, graph.ErrVertexNotFound), errors.Is(err, graph.ErrEdgeNotFound):
		return http.StatusNotFound
	case errors.Is(err, playback.ErrUnknownCommand),
		errors.Is(err, playback.ErrUnknownAlgorithm),
		errors.Is(err, graph.ErrNegativeWeight),
		errors.Is(err, graph.ErrLoopNotAllowed):
		return http.StatusBadRequest
	case errors.Is(err, playback.ErrClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func abort(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, failure(status, err))
}
