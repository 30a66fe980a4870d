// Package server implements the loopback control API for the shell.
// Local processes (the crewhubctl CLI, editor plugins, scripts) use it
// to drive windows, the tray badge, and notifications.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/EKINSOL-DEV/crewhub/internal/buildinfo"
	"github.com/EKINSOL-DEV/crewhub/internal/logging"
	"github.com/EKINSOL-DEV/crewhub/internal/notify"
	"github.com/EKINSOL-DEV/crewhub/internal/shell"
)

// quitResponseDelay gives the 202 response time to flush before the
// process starts tearing down.
const quitResponseDelay = 200 * time.Millisecond

// Options are the collaborators the control API drives.
type Options struct {
	Port     int
	Logger   *logging.Logger
	Registry *shell.Registry
	Badge    *shell.BadgeController
	Notifier *notify.Notifier
	Quit     func()
}

// Server is the control API server. It binds loopback only.
type Server struct {
	logger   *logging.Logger
	registry *shell.Registry
	badge    *shell.BadgeController
	notifier *notify.Notifier
	quit     func()

	httpServer *http.Server
	listener   net.Listener
	port       int
	startedAt  time.Time
}

// New creates a server listening on 127.0.0.1:port. Pass port 0 for
// dynamic allocation.
func New(opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", opts.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to bind control port %d: %w", opts.Port, err)
	}

	srv := &Server{
		logger:    opts.Logger,
		registry:  opts.Registry,
		badge:     opts.Badge,
		notifier:  opts.Notifier,
		quit:      opts.Quit,
		listener:  listener,
		port:      listener.Addr().(*net.TCPAddr).Port,
		startedAt: time.Now(),
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLog(opts.Logger))
	srv.routes(engine)

	srv.httpServer = &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	err := s.httpServer.Serve(s.listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("control server shutdown incomplete", zap.Error(err))
	}
	_ = s.listener.Close()
}

// Handler exposes the route tree for in-process tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes(engine *gin.Engine) {
	api := engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.GET("/version", s.handleVersion)
	api.POST("/tray/badge", s.handleBadge)
	api.POST("/windows/open", s.handleOpenWindow)
	api.POST("/windows/zen", s.handleOpenZen)
	api.POST("/notify", s.handleNotify)
	api.POST("/quit", s.handleQuit)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"pid":     os.Getpid(),
		"version": buildinfo.Version,
		"uptime":  time.Since(s.startedAt).Round(time.Second).String(),
	})
}

func (s *Server) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"version": buildinfo.Version,
		"commit":  buildinfo.CommitHash,
		"date":    buildinfo.BuildDate,
	})
}

type badgeRequest struct {
	Count int `json:"count" binding:"gte=0"`
}

func (s *Server) handleBadge(c *gin.Context) {
	var req badgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.badge.SetBadge(req.Count); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

type openWindowRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) handleOpenWindow(c *gin.Context) {
	var req openWindowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name, ok := shell.ParseWindowName(req.Name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown window %q", req.Name)})
		return
	}

	s.registry.Open(name)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleOpenZen(c *gin.Context) {
	s.registry.Open(shell.WindowZen)
	c.Status(http.StatusNoContent)
}

type notifyRequest struct {
	Title   string `json:"title" binding:"required"`
	Message string `json:"message"`
}

func (s *Server) handleNotify(c *gin.Context) {
	var req notifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.notifier.Send(req.Title, req.Message); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleQuit(c *gin.Context) {
	s.logger.Info("quit requested over control API")
	c.Status(http.StatusAccepted)

	go func() {
		time.Sleep(quitResponseDelay)
		s.quit()
	}()
}
