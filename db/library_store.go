package db

import (
	"context"
	"fmt"
	"sync"

	"bookshelf/models"
)

// LibraryStore owns the ordered book collection and mirrors it to a Slot.
// Every mutation rewrites the whole collection. If that write fails the
// in-memory collection keeps the change and the error is returned.
type LibraryStore struct {
	mu    sync.Mutex
	slot  Slot
	books []models.Book
}

var _ models.Library = (*LibraryStore)(nil)

// NewLibraryStore hydrates a store from slot. A slot that was never
// written yields an empty store.
func NewLibraryStore(ctx context.Context, slot Slot) (*LibraryStore, error) {
	books, err := slot.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("hydrate library: %w", err)
	}
	return &LibraryStore{slot: slot, books: books}, nil
}

func (library *LibraryStore) List() []models.Book {
	library.mu.Lock()
	defer library.mu.Unlock()

	return append([]models.Book{}, library.books...)
}

// Create assigns the next id to input and adds the resulting book.
func (library *LibraryStore) Create(ctx context.Context, input models.BookInput) (*models.Book, error) {
	library.mu.Lock()
	defer library.mu.Unlock()

	id, err := NextId(library.books)
	if err != nil {
		return nil, err
	}
	book := input.Book(id)
	return book, library.add(ctx, book)
}

func (library *LibraryStore) Add(ctx context.Context, book *models.Book) error {
	if book == nil {
		return nil
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	return library.add(ctx, book)
}

// add appends and persists. The caller holds mu.
func (library *LibraryStore) add(ctx context.Context, book *models.Book) error {
	library.books = append(library.books, *book)
	return library.persist(ctx)
}

// Remove deletes the first book sharing book's id.
func (library *LibraryStore) Remove(ctx context.Context, book *models.Book) error {
	if book == nil {
		return nil
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	for i := range library.books {
		if library.books[i].Id == book.Id {
			library.books = append(library.books[:i], library.books[i+1:]...)
			break
		}
	}
	return library.persist(ctx)
}

// Update overwrites title, description and author of every book sharing
// book's id.
func (library *LibraryStore) Update(ctx context.Context, book *models.Book) error {
	if book == nil {
		return nil
	}

	library.mu.Lock()
	defer library.mu.Unlock()

	for i := range library.books {
		if library.books[i].Id == book.Id {
			library.books[i].Title = book.Title
			library.books[i].Description = book.Description
			library.books[i].Author = book.Author
		}
	}
	return library.persist(ctx)
}

func (library *LibraryStore) GetById(id string) (*models.Book, bool) {
	library.mu.Lock()
	defer library.mu.Unlock()

	for _, book := range library.books {
		if book.Id == id {
			found := book
			return &found, true
		}
	}
	return nil, false
}

func (library *LibraryStore) Stats() models.Stats {
	library.mu.Lock()
	defer library.mu.Unlock()

	authors := make(map[string]struct{})
	for _, book := range library.books {
		authors[book.Author] = struct{}{}
	}
	return models.Stats{
		NumberOfBooks:   len(library.books),
		NumberOfAuthors: len(authors),
	}
}

func (library *LibraryStore) persist(ctx context.Context) error {
	if err := library.slot.Write(ctx, library.books); err != nil {
		return fmt.Errorf("persist library: %w", err)
	}
	return nil
}
