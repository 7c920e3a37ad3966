package db

import (
	"context"
	"encoding/json"
	"fmt"

	"bookshelf/models"
)

// SLOT_KEY is the key holding the serialized book collection.
const SLOT_KEY = "books"

// KeyValue is a durable string-keyed byte store. Get reports false for a
// key that was never written.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Slot reads and writes the whole book collection at once.
type Slot interface {
	Read(ctx context.Context) ([]models.Book, error)
	Write(ctx context.Context, books []models.Book) error
}

// JSONSlot stores the collection as a JSON array under a single key.
type JSONSlot struct {
	kv  KeyValue
	key string
}

func NewJSONSlot(kv KeyValue, key string) *JSONSlot {
	return &JSONSlot{kv: kv, key: key}
}

func (slot *JSONSlot) Read(ctx context.Context) ([]models.Book, error) {
	value, ok, err := slot.kv.Get(ctx, slot.key)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", slot.key, err)
	}
	if !ok {
		return nil, nil
	}

	var books []models.Book
	if err := json.Unmarshal(value, &books); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", slot.key, err)
	}
	return books, nil
}

func (slot *JSONSlot) Write(ctx context.Context, books []models.Book) error {
	if books == nil {
		books = []models.Book{}
	}
	value, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", slot.key, err)
	}
	if err := slot.kv.Set(ctx, slot.key, value); err != nil {
		return fmt.Errorf("write slot %q: %w", slot.key, err)
	}
	return nil
}
