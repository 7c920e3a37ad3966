package cache

import (
	"os"
	"testing"
	"time"

	"bookshelf/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

func TestMemoryCacheKeepsNewest(t *testing.T) {
	cacher := CreateMemoryCache(3)
	for _, value := range []string{"a", "b", "c", "d"} {
		require.NoError(t, cacher.Write("k", []byte(value)))
	}

	got, err := cacher.Read("k")
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b"}, got)

	got, err = cacher.Read("other")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestActivityJournal(t *testing.T) {
	journal := NewActivityJournal(CreateMemoryCache(2))
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, journal.Record(models.Activity{Method: "POST", Route: "/books", BookId: "_id_book_1", At: at}))
	require.NoError(t, journal.Record(models.Activity{Method: "POST", Route: "/books", BookId: "_id_book_2", At: at}))
	require.NoError(t, journal.Record(models.Activity{Method: "DELETE", Route: "/book/_id_book_1", BookId: "_id_book_1", At: at}))

	recent, err := journal.Recent()
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "DELETE", recent[0].Method)
	assert.Equal(t, "_id_book_2", recent[1].BookId)
	assert.True(t, at.Equal(recent[1].At))
}

func TestActivityJournalCorruptEntry(t *testing.T) {
	cacher := CreateMemoryCache(3)
	require.NoError(t, cacher.Write(ACTIVITY_KEY, []byte("{")))

	_, err := NewActivityJournal(cacher).Recent()
	assert.Error(t, err)
}

func TestRedisCache(t *testing.T) {
	redisUrl := os.Getenv("REDIS_URL")
	if redisUrl == "" {
		t.Skip("REDIS_URL not set")
	}

	client := redis.NewClient(&redis.Options{Addr: redisUrl})
	defer client.Close()
	client.Del("bookshelf-test-activity")

	cacher := CreateRedisCache(client, 2)
	for _, value := range []string{"a", "b", "c"} {
		require.NoError(t, cacher.Write("bookshelf-test-activity", []byte(value)))
	}

	got, err := cacher.Read("bookshelf-test-activity")
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b"}, got)
}

func TestRedisCacheWriteReportsConnectionError(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: 0})
	defer client.Close()

	cacher := CreateRedisCache(client, 2)
	require.Error(t, cacher.Write("bookshelf-test-activity", []byte("a")))

	_, err := cacher.Read("bookshelf-test-activity")
	require.Error(t, err)
}
