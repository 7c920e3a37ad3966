package config

import (
	"gopkg.in/redis.v5"
)

func NewRedisClient(redisUrl string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: redisUrl,
	})

	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, err
	}

	return client, nil
}
