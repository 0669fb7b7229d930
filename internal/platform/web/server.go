// Package web exposes snake sessions over a JSON HTTP API built on gin.
// Every created game ticks on the server; clients poll snapshots and post
// direction changes.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// Score listing limits.
const (
	DefaultScoreLimit = 10
	MaxScoreLimit     = 100
)

// Config holds the HTTP server settings.
type Config struct {
	Addr           string
	DefaultVariant string
}

// Server is the HTTP front end.
type Server struct {
	cfg     Config
	manager *session.Manager
	store   *storage.Store
	logger  *log.Logger
	engine  *gin.Engine
}

// NewServer wires the routes. store may be nil, in which case score routes
// answer 503.
func NewServer(cfg Config, manager *session.Manager, store *storage.Store, logger *log.Logger) *Server {
	if cfg.DefaultVariant == "" {
		cfg.DefaultVariant = "classic"
	}

	s := &Server{
		cfg:     cfg,
		manager: manager,
		store:   store,
		logger:  logger.WithPrefix("web"),
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))

	r.GET("/healthz", s.health)
	r.GET("/api/variants", s.listVariants)

	games := r.Group("/api/games")
	games.POST("", s.createGame)
	games.GET("/:id", s.withSession(s.getGame))
	games.POST("/:id/direction", s.withSession(s.turn))
	games.POST("/:id/pause", s.withSession(s.pause))
	games.POST("/:id/restart", s.withSession(s.restart))
	games.DELETE("/:id", s.deleteGame)

	r.GET("/api/scores/:variant", s.topScores)
	r.GET("/api/stats", s.allStats)

	s.engine = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// ListenAndServe serves until ctx is cancelled, then shuts down with a
// 10 second grace period.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func requestLogger(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

func abortError(c *gin.Context, status int, err error) {
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// withSession resolves the :id parameter before calling next.
func (s *Server) withSession(next func(*gin.Context, *session.Session)) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := s.manager.Get(c.Param("id"))
		if err != nil {
			abortError(c, http.StatusNotFound, err)
			return
		}
		next(c, sess)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": s.manager.Len(),
	})
}

func (s *Server) listVariants(c *gin.Context) {
	variants := registry.List()
	out := make([]gin.H, len(variants))
	for i, v := range variants {
		out[i] = gin.H{"id": v.ID, "title": v.Title}
	}
	c.JSON(http.StatusOK, out)
}

type createRequest struct {
	Variant string `json:"variant"`
}

func (s *Server) createGame(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortError(c, http.StatusBadRequest, err)
		return
	}
	if req.Variant == "" {
		req.Variant = s.cfg.DefaultVariant
	}

	sess, err := s.manager.Create(req.Variant)
	switch {
	case errors.Is(err, registry.ErrUnknownVariant):
		abortError(c, http.StatusBadRequest, err)
		return
	case errors.Is(err, session.ErrLimit):
		abortError(c, http.StatusTooManyRequests, err)
		return
	case err != nil:
		abortError(c, http.StatusServiceUnavailable, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       sess.ID(),
		"snapshot": sess.Snapshot(),
	})
}

func (s *Server) getGame(c *gin.Context, sess *session.Session) {
	c.JSON(http.StatusOK, sess.Snapshot())
}

type directionRequest struct {
	Direction string `json:"direction" binding:"required"`
}

func (s *Server) turn(c *gin.Context, sess *session.Session) {
	var req directionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}
	d, err := core.ParseDirection(req.Direction)
	if err != nil {
		abortError(c, http.StatusBadRequest, err)
		return
	}

	sess.Turn(d)
	c.JSON(http.StatusAccepted, sess.Snapshot())
}

func (s *Server) pause(c *gin.Context, sess *session.Session) {
	sess.TogglePause()
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) restart(c *gin.Context, sess *session.Session) {
	sess.Restart()
	c.JSON(http.StatusOK, sess.Snapshot())
}

func (s *Server) deleteGame(c *gin.Context) {
	if err := s.manager.Delete(c.Param("id")); err != nil {
		abortError(c, http.StatusNotFound, err)
		return
	}
	c.Status(http.StatusNoContent)
}

var errNoStore = errors.New("web: score storage unavailable")

func (s *Server) topScores(c *gin.Context) {
	if s.store == nil {
		abortError(c, http.StatusServiceUnavailable, errNoStore)
		return
	}

	limit := DefaultScoreLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortError(c, http.StatusBadRequest, errors.New("web: limit must be a positive integer"))
			return
		}
		limit = core.Clamp(n, 1, MaxScoreLimit)
	}

	variant := c.Param("variant")
	scores, err := s.store.TopScores(variant, limit)
	if err != nil {
		abortError(c, http.StatusInternalServerError, err)
		return
	}
	if scores == nil {
		scores = []storage.ScoreEntry{}
	}

	c.JSON(http.StatusOK, gin.H{
		"variant": variant,
		"scores":  scores,
	})
}

func (s *Server) allStats(c *gin.Context) {
	if s.store == nil {
		abortError(c, http.StatusServiceUnavailable, errNoStore)
		return
	}

	stats, err := s.store.AllStats()
	if err != nil {
		abortError(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
