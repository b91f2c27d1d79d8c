package server

import (
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agenthands/sketchont/internal/config"
	"github.com/agenthands/sketchont/internal/core"
	"github.com/agenthands/sketchont/internal/core/model"
	"github.com/agenthands/sketchont/internal/diagram"
	"github.com/agenthands/sketchont/internal/logger"
	"github.com/agenthands/sketchont/internal/metrics"
)

type Server struct {
	Engine   *core.Engine
	Config   config.ServerConfig
	Log      *logger.Logger
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

func NewServer(cfg config.ServerConfig, engine *core.Engine, log *logger.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		Engine:   engine,
		Config:   cfg,
		Log:      logger.OrNop(log),
		Metrics:  m,
		Gatherer: gatherer,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog(), s.observe())
	if len(s.Config.CORSOrigins) > 0 {
		r.Use(s.cors())
	}

	r.GET("/health", s.Health)
	if s.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := r.Group("/v1")
	v1.POST("/resolve", s.Resolve)
	v1.POST("/publish", s.Publish)
	v1.DELETE("/graphs/:run_id", s.Unpublish)

	return r
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "publish": s.Engine.Driver != nil})
}

// Resolve runs the pipeline over the diagram in the request body, JSON or
// YAML, and returns the resolved model with its diagnostics.
func (s *Server) Resolve(c *gin.Context) {
	res, ok := s.resolve(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, res)
}

type PublishResponse struct {
	RunID       string             `json:"run_id"`
	Mode        core.Mode          `json:"mode"`
	Diagnostics int                `json:"diagnostics"`
	Errors      *model.Diagnostics `json:"errors"`
}

// Publish resolves the diagram in the request body and writes the result to
// the graph store.
func (s *Server) Publish(c *gin.Context) {
	if s.Engine.Driver == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "publishing is not configured"})
		return
	}
	res, ok := s.resolve(c)
	if !ok {
		return
	}
	if err := s.Engine.Publish(c.Request.Context(), res); err != nil {
		s.Log.Error("failed to publish", "run_id", res.RunID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to publish", "run_id": res.RunID})
		return
	}
	c.JSON(http.StatusOK, PublishResponse{
		RunID:       res.RunID,
		Mode:        res.Mode,
		Diagnostics: res.Errors.Len(),
		Errors:      res.Errors,
	})
}

func (s *Server) Unpublish(c *gin.Context) {
	runID := c.Param("run_id")
	if err := s.Engine.Unpublish(c.Request.Context(), runID); err != nil {
		if errors.Is(err, core.ErrNoDriver) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "publishing is not configured"})
			return
		}
		s.Log.Error("failed to unpublish", "run_id", runID, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to unpublish"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) resolve(c *gin.Context) (*core.Result, bool) {
	mode, err := core.ParseMode(c.DefaultQuery("mode", string(core.ModeOWL)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	body := c.Request.Body
	if s.Config.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(c.Writer, body, s.Config.MaxBodyBytes)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "diagram too large"})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	d, err := diagram.Parse(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid diagram: " + err.Error()})
		return nil, false
	}

	res, err := s.Engine.Resolve(c.Request.Context(), d, mode)
	if err != nil {
		s.Log.Warn("failed to resolve", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}

func (s *Server) cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Requested-With"},
		MaxAge:       12 * time.Hour,
	}
	if slices.Contains(s.Config.CORSOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = s.Config.CORSOrigins
	}
	return cors.New(cfg)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.Log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

func (s *Server) observe() gin.HandlerFunc {
	if s.Metrics == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		s.Metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
