package db

import (
	"context"
	"fmt"
	"io"

	"bookshelf/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupKeyValue opens the key-value backend selected by cfg. The returned
// closer releases its connections.
func SetupKeyValue(ctx context.Context, cfg config.Config) (KeyValue, io.Closer, error) {
	switch cfg.Storage {
	case config.STORAGE_MEMORY:
		return NewMemoryKeyValue(), nopCloser{}, nil

	case config.STORAGE_FILE:
		kv, err := NewFileKeyValue(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, nopCloser{}, nil

	case config.STORAGE_SQLITE:
		kv, err := NewSQLiteKeyValue(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv, nil

	case config.STORAGE_REDIS:
		client, err := config.NewRedisClient(cfg.RedisUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return CreateRedisKeyValue(client), client, nil

	case config.STORAGE_ELASTIC:
		client, err := config.NewElasticClient(cfg.ElasticUrl)
		if err != nil {
			return nil, nil, fmt.Errorf("connect elastic: %w", err)
		}
		kv := CreateElasticKeyValue(client, cfg.ElasticIndex)
		if err := kv.EnsureIndex(ctx); err != nil {
			return nil, nil, fmt.Errorf("create index %q: %w", cfg.ElasticIndex, err)
		}
		return kv, nopCloser{}, nil
	}

	return nil, nil, fmt.Errorf("unknown storage %q", cfg.Storage)
}
