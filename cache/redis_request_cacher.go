package cache

import "gopkg.in/redis.v5"

// RedisRequestCacher keeps the newest MaxNumber entries of a Redis list.
type RedisRequestCacher struct {
	MaxNumber   int
	RedisClient *redis.Client
}

func CreateRedisCache(client *redis.Client, maxNumber int) *RedisRequestCacher {
	return &RedisRequestCacher{maxNumber, client}
}

// Write pushes value at the head of the list and trims the tail in the same
// round trip.
func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	_, err := cacher.RedisClient.Pipelined(func(pipe *redis.Pipeline) error {
		pipe.LPush(key, value)
		pipe.LTrim(key, 0, cacher.lastIndex())
		return nil
	})
	return err
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	return cacher.RedisClient.LRange(key, 0, cacher.lastIndex()).Result()
}

func (cacher *RedisRequestCacher) lastIndex() int64 {
	return int64(cacher.MaxNumber - 1)
}
