package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/internal/config"
	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/pkg/logger"
)

func main() {
	// Load configuration (defaults + environment overrides)
	cfg, err := config.FromEnv(context.Background())
	if err != nil {
		panic(err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		panic(err)
	}
	defer logger.Info("Server shutting down")

	// Setup and start server
	srv, cleanup, err := SetupServer(cfg)
	if err != nil {
		logger.Fatal("Failed to setup server", zap.Error(err))
	}
	defer cleanup()

	if err := StartServer(srv); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
