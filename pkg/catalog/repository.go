package catalog

import (
	"context"

	"github.com/google/uuid"
)

// BookFields holds the validated field values handed to the store. The store
// assigns the id and creation timestamp.
type BookFields struct {
	Name    string
	Address string
	Pin     string
	Phone   string
	Status  BookStatus
}

// BookRepository defines the interface for book record storage.
// Implementations: PostgresBookRepository, InMemoryBookRepository,
// FileBookRepository. All of them report a missing record as ErrBookNotFound.
type BookRepository interface {
	CreateBook(ctx context.Context, fields BookFields) (Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (Book, error)
	FindBooks(ctx context.Context) ([]Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, fields BookFields) (Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
