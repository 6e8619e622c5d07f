package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mecsphere/appo/engine/infra/server/appstate"
	"github.com/mecsphere/appo/pkg/config"
	"github.com/mecsphere/appo/pkg/logger"
)

type Server struct {
	config *config.Config
	state  *appstate.State
	log    logger.Logger
	router *gin.Engine
	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer(cfg *config.Config, state *appstate.State, log logger.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		config: cfg,
		state:  state,
		log:    log,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *Server) buildRouter() {
	if s.config.Runtime.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerContextMiddleware(s.log))
	router.Use(LoggerMiddleware())

	if s.config.Server.CORSEnabled {
		router.Use(CORSMiddleware())
	}

	router.Use(appstate.StateMiddleware(s.state))
	RegisterRoutes(router)

	s.router = router
}

func (s *Server) Run() error {
	s.buildRouter()

	addr := s.config.Server.FullAddress()
	s.log.Info("Starting HTTP server", "address", fmt.Sprintf("http://%s", addr))

	timeout := s.config.Server.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
		s.log.Debug("Received shutdown signal, initiating graceful shutdown")
	case <-s.ctx.Done():
	}

	s.cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("Server stopped")
	return nil
}

// Stop triggers a graceful shutdown from outside the signal path.
func (s *Server) Stop() {
	s.cancel()
}
