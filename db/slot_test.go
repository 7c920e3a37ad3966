package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"bookshelf/models"

	"github.com/olivere/elastic/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

// testKeyValue checks the behavior every backend must share.
func testKeyValue(t *testing.T, kv KeyValue) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", []byte("first")))
	value, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "first", string(value))

	require.NoError(t, kv.Set(ctx, "k", []byte("second")))
	value, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", string(value))
}

func TestMemoryKeyValue(t *testing.T) {
	testKeyValue(t, NewMemoryKeyValue())
}

func TestMemoryKeyValueCopies(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()

	value := []byte("abc")
	require.NoError(t, kv.Set(ctx, "k", value))
	value[0] = 'x'

	got, _, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileKeyValue(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	kv, err := NewFileKeyValue(dir)
	require.NoError(t, err)
	testKeyValue(t, kv)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestFileKeyValueFailedWriteLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKeyValue(dir)
	require.NoError(t, err)

	// a directory in place of the destination makes the final rename fail
	require.NoError(t, os.Mkdir(filepath.Join(dir, "k.json"), 0755))
	assert.Error(t, kv.Set(context.Background(), "k", []byte("value")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())
}

func TestFileKeyValueRejectsPathKeys(t *testing.T) {
	kv, err := NewFileKeyValue(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, kv.Set(context.Background(), key, []byte("x")), key)
	}
}

func TestSQLiteKeyValue(t *testing.T) {
	kv, err := NewSQLiteKeyValue(filepath.Join(t.TempDir(), "bookshelf.db"))
	require.NoError(t, err)
	defer kv.Close()

	testKeyValue(t, kv)
}

func TestSQLiteKeyValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "bookshelf.db")

	kv, err := NewSQLiteKeyValue(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, SLOT_KEY, []byte("[]")))
	require.NoError(t, kv.Close())

	kv, err = NewSQLiteKeyValue(path)
	require.NoError(t, err)
	defer kv.Close()

	value, ok, err := kv.Get(ctx, SLOT_KEY)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(value))
}

func TestRedisKeyValue(t *testing.T) {
	redisUrl := os.Getenv("REDIS_URL")
	if redisUrl == "" {
		t.Skip("REDIS_URL not set")
	}

	client := redis.NewClient(&redis.Options{Addr: redisUrl})
	defer client.Close()
	client.Del("missing", "k")

	testKeyValue(t, CreateRedisKeyValue(client))
}

func TestElasticKeyValue(t *testing.T) {
	elasticUrl := os.Getenv("ELASTIC_URL")
	if elasticUrl == "" {
		t.Skip("ELASTIC_URL not set")
	}
	ctx := context.Background()

	client, err := elastic.NewClient(elastic.SetURL(elasticUrl), elastic.SetSniff(false))
	require.NoError(t, err)

	kv := CreateElasticKeyValue(client, "bookshelf-test")
	_, _ = client.DeleteIndex(kv.IndexName).Do(ctx)
	require.NoError(t, kv.EnsureIndex(ctx))
	require.NoError(t, kv.EnsureIndex(ctx))

	testKeyValue(t, kv)
}

func TestJSONSlotRoundTrip(t *testing.T) {
	ctx := context.Background()
	slot := NewJSONSlot(NewMemoryKeyValue(), SLOT_KEY)

	books := []models.Book{
		{Id: "_id_book_1", Title: "Dune", Author: "Herbert", Description: "Sci-fi"},
		{Id: "_id_book_2", Title: "Emma", Author: "Austen", Description: "Novel, \"comic\"\n"},
		{Id: "_id_book_7", Title: "Žal", Author: "Ünal", Description: "unicode"},
	}
	require.NoError(t, slot.Write(ctx, books))

	got, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, got)
}

func TestJSONSlotWireFormat(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	slot := NewJSONSlot(kv, SLOT_KEY)

	require.NoError(t, slot.Write(ctx, nil))
	value, _, _ := kv.Get(ctx, SLOT_KEY)
	assert.Equal(t, "[]", string(value))

	require.NoError(t, slot.Write(ctx, []models.Book{{Id: "_id_book_1", Title: "T", Description: "D", Author: "A"}}))
	value, _, _ = kv.Get(ctx, SLOT_KEY)
	assert.JSONEq(t, `[{"id":"_id_book_1","title":"T","description":"D","author":"A"}]`, string(value))
}

func TestJSONSlotReadAbsentAndCorrupt(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	slot := NewJSONSlot(kv, SLOT_KEY)

	books, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	require.NoError(t, kv.Set(ctx, SLOT_KEY, []byte("null")))
	books, err = slot.Read(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	require.NoError(t, kv.Set(ctx, SLOT_KEY, []byte("{not json")))
	_, err = slot.Read(ctx)
	assert.Error(t, err)
}
