package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/api/routes"
	"github.com/kraken-hp/brain/internal/config"
	"github.com/kraken-hp/brain/internal/llm"
)

// Server wraps the HTTP engine and shared dependencies for easier testing.
type Server struct {
	Engine   *gin.Engine
	cfg      config.Config
	stopJobs func()
}

// New wires up the HTTP router and registers versioned routes.
func New(db *gorm.DB, cfg config.Config, generator llm.Generator) (*Server, error) {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Environment == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery(cfg.Environment == "development"))

	stop, err := routes.Register(router, db, cfg, generator)
	if err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	return &Server{Engine: router, cfg: cfg, stopJobs: stop}, nil
}

// Run starts the HTTP server with proper shutdown semantics. Background
// jobs are stopped when Run returns.
func (s *Server) Run(ctx context.Context) error {
	if s.stopJobs != nil {
		defer s.stopJobs()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.cfg.HTTPPort),
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
