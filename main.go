package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bookshelf/cache"
	"bookshelf/config"
	"bookshelf/db"
	"bookshelf/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.NewLogger(nil, slog.LevelInfo).Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger(nil, cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("bookshelf stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	kv, closer, err := db.SetupKeyValue(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage, err)
	}
	defer closer.Close()

	library, err := db.NewLibraryStore(ctx, db.NewJSONSlot(kv, db.SLOT_KEY))
	if err != nil {
		return err
	}

	var cacher cache.RequestCacher = cache.CreateMemoryCache(cfg.ActivitySize)
	if cfg.RedisUrl != "" {
		client, err := config.NewRedisClient(cfg.RedisUrl)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		cacher = cache.CreateRedisCache(client, cfg.ActivitySize)
	}

	if cfg.GeneratedSecret {
		logger.Warn("SESSION_SECRET not set, using a random one")
	}
	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options.HttpOnly = true

	gin.SetMode(gin.ReleaseMode)
	handlers := service.NewHandlers(library, cache.NewActivityJournal(cacher), sessionStore, logger)
	routes := service.SetupRoutes(handlers)

	logger.Info("starting", "storage", cfg.Storage, "books", len(library.List()))
	return routes.Run()
}
