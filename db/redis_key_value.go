package db

import (
	"context"

	"gopkg.in/redis.v5"
)

// RedisKeyValue keeps slots as plain Redis strings without expiry.
type RedisKeyValue struct {
	RedisClient *redis.Client
}

func CreateRedisKeyValue(client *redis.Client) *RedisKeyValue {
	return &RedisKeyValue{client}
}

func (kv *RedisKeyValue) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, err := kv.RedisClient.Get(key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (kv *RedisKeyValue) Set(_ context.Context, key string, value []byte) error {
	return kv.RedisClient.Set(key, value, 0).Err()
}
