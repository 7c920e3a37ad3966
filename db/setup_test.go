package db

import (
	"context"
	"path/filepath"
	"testing"

	"bookshelf/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupKeyValue(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		storage string
		want    any
	}{
		{config.STORAGE_MEMORY, &MemoryKeyValue{}},
		{config.STORAGE_FILE, &FileKeyValue{}},
		{config.STORAGE_SQLITE, &SQLiteKeyValue{}},
	}
	for _, tt := range tests {
		t.Run(tt.storage, func(t *testing.T) {
			cfg := config.Config{
				Storage:    tt.storage,
				DataDir:    filepath.Join(dir, "files"),
				SQLitePath: filepath.Join(dir, "bookshelf.db"),
			}
			kv, closer, err := SetupKeyValue(context.Background(), cfg)
			require.NoError(t, err)
			defer closer.Close()

			assert.IsType(t, tt.want, kv)
			testKeyValue(t, kv)
		})
	}
}

func TestSetupKeyValueUnknown(t *testing.T) {
	_, _, err := SetupKeyValue(context.Background(), config.Config{Storage: "floppy"})
	assert.Error(t, err)
}
