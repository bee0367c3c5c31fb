package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"github.com/kraken-hp/brain/internal/api/handlers"
	"github.com/kraken-hp/brain/internal/api/middleware"
	"github.com/kraken-hp/brain/internal/broadcast"
	"github.com/kraken-hp/brain/internal/config"
	"github.com/kraken-hp/brain/internal/llm"
	"github.com/kraken-hp/brain/internal/logger"
	"github.com/kraken-hp/brain/internal/metrics"
	"github.com/kraken-hp/brain/internal/models"
	"github.com/kraken-hp/brain/internal/override"
	"github.com/kraken-hp/brain/internal/services"
)

// Register wires up API routes, migrations, and background jobs. The
// returned stop function halts the background scheduler; callers must
// invoke it on shutdown.
func Register(router *gin.Engine, db *gorm.DB, cfg config.Config, generator llm.Generator) (func(), error) {
	if err := db.AutoMigrate(
		&models.Session{},
		&models.LogEntry{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate: %w", err)
	}

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	overrides := override.NewStore()
	hub := broadcast.NewHub()
	sessionService := services.NewSessionService(db, overrides)
	alertService := services.NewAlertService(cfg.AlertURLs)
	brainService := services.NewBrainService(sessionService, overrides, hub, generator, alertService)

	// Restarted brains must honor persisted overrides immediately, and a
	// reconcile job closes any later drift between cache and store.
	if err := brainService.RehydrateOverrides(); err != nil {
		return nil, fmt.Errorf("rehydrate overrides: %w", err)
	}
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 1m", func() {
		if err := brainService.RehydrateOverrides(); err != nil {
			logger.Log().WithError(err).Error("Override reconcile failed")
		}
	}); err != nil {
		return nil, fmt.Errorf("schedule override reconcile: %w", err)
	}
	scheduler.Start()
	stop := func() { scheduler.Stop() }

	router.GET("/api/v1/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	api.Use(middleware.RequestID(), middleware.RequestLogger(), middleware.CORS())

	commandHandler := handlers.NewCommandHandler(brainService)
	api.POST("/process_command", commandHandler.Process)

	adminHandler := handlers.NewAdminHandler(brainService)
	api.POST("/admin/override", adminHandler.Override)

	historyHandler := handlers.NewHistoryHandler(brainService)
	api.GET("/history", historyHandler.List)

	streamHandler := handlers.NewStreamHandler(hub)
	api.GET("/stream", streamHandler.Connect)

	return stop, nil
}
