package catalog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryBookRepository implements BookRepository using in-memory storage
type InMemoryBookRepository struct {
	mu    sync.RWMutex
	books map[uuid.UUID]Book
}

// NewInMemoryBookRepository creates a new in-memory book repository
func NewInMemoryBookRepository() *InMemoryBookRepository {
	return &InMemoryBookRepository{
		books: make(map[uuid.UUID]Book),
	}
}

// CreateBook creates a new book record
func (r *InMemoryBookRepository) CreateBook(ctx context.Context, fields BookFields) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book := Book{
		ID:        uuid.New(),
		Name:      fields.Name,
		Address:   fields.Address,
		Pin:       fields.Pin,
		Phone:     fields.Phone,
		Status:    fields.Status,
		CreatedAt: time.Now(),
	}
	r.books[book.ID] = book
	return book, nil
}

// GetBook gets a book by id
func (r *InMemoryBookRepository) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// FindBooks lists all books, newest first
func (r *InMemoryBookRepository) FindBooks(ctx context.Context) ([]Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	books := make([]Book, 0, len(r.books))
	for _, book := range r.books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books, nil
}

// UpdateBook replaces the stored field values of a book
func (r *InMemoryBookRepository) UpdateBook(ctx context.Context, id uuid.UUID, fields BookFields) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	book, ok := r.books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	book.Name = fields.Name
	book.Address = fields.Address
	book.Pin = fields.Pin
	book.Phone = fields.Phone
	book.Status = fields.Status
	r.books[id] = book
	return book, nil
}

// DeleteBook removes a book record
func (r *InMemoryBookRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[id]; !ok {
		return ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}
