package models

import "context"

type Library interface {
	List() []Book
	Create(ctx context.Context, input BookInput) (*Book, error)
	Add(ctx context.Context, book *Book) error
	Update(ctx context.Context, book *Book) error
	Remove(ctx context.Context, book *Book) error
	GetById(id string) (*Book, bool)
	Stats() Stats
}
