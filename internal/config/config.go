package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN         string
	ListenAddr    string
	Environment   string
	MigrationsDir string
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	ShutdownGrace time.Duration
}

func Load() (*Config, error) {
	// A missing .env file is fine; plain environment variables still apply
	_ = godotenv.Load(".env")

	cfg := &Config{
		DBDSN:         os.Getenv("DB_DSN"),
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		Environment:   os.Getenv("ENV"),
		MigrationsDir: os.Getenv("MIGRATIONS_DIR"),
		ReadTimeout:   10 * time.Second,
		WriteTimeout:  30 * time.Second,
		ShutdownGrace: 15 * time.Second,
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.MigrationsDir == "" {
		cfg.MigrationsDir = "migrations"
	}

	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}
