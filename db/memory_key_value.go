package db

import (
	"context"
	"sync"
)

// MemoryKeyValue keeps values in a map. Nothing survives a restart.
type MemoryKeyValue struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKeyValue() *MemoryKeyValue {
	return &MemoryKeyValue{values: make(map[string][]byte)}
}

func (kv *MemoryKeyValue) Get(_ context.Context, key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	value, ok := kv.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (kv *MemoryKeyValue) Set(_ context.Context, key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	kv.values[key] = append([]byte(nil), value...)
	return nil
}
