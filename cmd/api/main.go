package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/kraken-hp/brain/internal/config"
	"github.com/kraken-hp/brain/internal/database"
	"github.com/kraken-hp/brain/internal/llm"
	"github.com/kraken-hp/brain/internal/logger"
	"github.com/kraken-hp/brain/internal/server"
	"github.com/kraken-hp/brain/internal/version"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Log().WithError(err).Fatal("load config")
	}

	// Logs go to stdout and a rotating file next to the database.
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(filepath.Dir(cfg.DatabasePath), "brain.log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
	logger.Init(cfg.Environment == "development", io.MultiWriter(os.Stdout, rotator))

	logger.Log().WithField("version", version.Full()).Infof("starting %s", version.Name)

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		logger.Log().WithError(err).Fatal("connect database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var generator llm.Generator
	if cfg.GeminiAPIKey != "" {
		gem, err := llm.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Log().WithError(err).Fatal("init gemini generator")
		}
		generator = gem
	} else {
		logger.Log().Warn("KRAKEN_GEMINI_API_KEY not set, replies fall back to the canned error")
	}

	srv, err := server.New(db, cfg, generator)
	if err != nil {
		logger.Log().WithError(err).Fatal("init server")
	}

	logger.Log().WithField("port", cfg.HTTPPort).Info("listening")
	if err := srv.Run(ctx); err != nil {
		logger.Log().WithError(err).Fatal("server error")
	}
}
