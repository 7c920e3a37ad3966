package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
)

const (
	STORAGE_MEMORY  = "memory"
	STORAGE_FILE    = "file"
	STORAGE_SQLITE  = "sqlite"
	STORAGE_REDIS   = "redis"
	STORAGE_ELASTIC = "elastic"
)

type Config struct {
	Storage      string
	DataDir      string
	SQLitePath   string
	RedisUrl     string
	ElasticUrl   string
	ElasticIndex string
	ActivitySize int
	LogLevel     slog.Level

	SessionSecret string
	// GeneratedSecret is set when SESSION_SECRET was empty and a random
	// secret was made up, so flashes do not survive a restart.
	GeneratedSecret bool
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Storage:       getenv("BOOKSHELF_STORAGE", STORAGE_MEMORY),
		DataDir:       getenv("BOOKSHELF_DATA_DIR", "data"),
		SQLitePath:    getenv("SQLITE_PATH", "bookshelf.db"),
		RedisUrl:      os.Getenv("REDIS_URL"),
		ElasticUrl:    os.Getenv("ELASTIC_URL"),
		ElasticIndex:  getenv("ELASTIC_INDEX", "bookshelf"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
	}

	switch cfg.Storage {
	case STORAGE_MEMORY, STORAGE_FILE, STORAGE_SQLITE:
	case STORAGE_REDIS:
		if cfg.RedisUrl == "" {
			return cfg, fmt.Errorf("BOOKSHELF_STORAGE=%s requires REDIS_URL", cfg.Storage)
		}
	case STORAGE_ELASTIC:
		if cfg.ElasticUrl == "" {
			return cfg, fmt.Errorf("BOOKSHELF_STORAGE=%s requires ELASTIC_URL", cfg.Storage)
		}
	default:
		return cfg, fmt.Errorf("unknown BOOKSHELF_STORAGE %q", cfg.Storage)
	}

	activitySize, err := strconv.Atoi(getenv("ACTIVITY_SIZE", "3"))
	if err != nil || activitySize < 1 {
		return cfg, fmt.Errorf("ACTIVITY_SIZE must be a positive integer")
	}
	cfg.ActivitySize = activitySize

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "INFO"))); err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = uuid.New().String()
		cfg.GeneratedSecret = true
	}

	return cfg, nil
}
