package main

import (
	"context"
	"log"

	"github.com/srcmarket/backoffice/internal/app"
	"github.com/srcmarket/backoffice/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting back office server",
		"environment", cfg.Environment,
		"listen_addr", cfg.ListenAddr)

	if err := app.Run(context.Background(), cfg, logger); err != nil {
		logger.Sugar().Fatalw("Server exited with error", "error", err)
	}
}
