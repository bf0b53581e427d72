package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"go.uber.org/zap"

	"github.com/drabdulwahidyusuf-sudo/uk-esim-mvp/pkg/logger"
)

// Config holds all configuration settings
type Config struct {
	Server struct {
		Port int    `json:"port" env:"PORT"`
		Host string `json:"host" env:"HOST"`
	} `json:"server"`
	Database struct {
		DSN string `json:"dsn" env:"DATABASE_DSN"`
	} `json:"database"`
	Dashboard struct {
		RecentLimit int `json:"recent_limit" env:"DASHBOARD_RECENT_LIMIT"`
	} `json:"dashboard"`
	Webhook struct {
		MaxBodyBytes int64 `json:"max_body_bytes" env:"WEBHOOK_MAX_BODY_BYTES"`
	} `json:"webhook"`
	Logging struct {
		Level string `json:"level" env:"LOG_LEVEL"`
		Path  string `json:"path" env:"LOG_PATH"`
	} `json:"logging"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	// Validate path to prevent directory traversal
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		return nil, fmt.Errorf("config path must be absolute")
	}

	// Check if file exists and is a regular file
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("config file error: %w", err)
	}
	if !fileInfo.Mode().IsRegular() {
		return nil, fmt.Errorf("config path is not a regular file")
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			logger.Warn("Failed to close config file", zap.Error(closeErr))
		}
	}()

	var config Config
	if err := json.NewDecoder(file).Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.Server.Port = 8080
	config.Server.Host = "localhost"
	config.Database.DSN = "file:sms.db?cache=shared&mode=rwc"
	config.Dashboard.RecentLimit = 100
	config.Webhook.MaxBodyBytes = 1 << 20
	config.Logging.Level = "info"
	config.Logging.Path = "server.log"
	return config
}

// FromEnv returns the default configuration with environment overrides
// applied. A .env file is honored when present; unset variables leave the
// defaults untouched.
func FromEnv(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	config := DefaultConfig()
	if err := envconfig.Process(ctx, config); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	return config, nil
}
