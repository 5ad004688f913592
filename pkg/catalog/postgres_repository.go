package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bookkeephq/bookkeep/pkg/catalog/catalogdb"
)

// PostgresBookRepository implements BookRepository using catalogdb.Queries
type PostgresBookRepository struct {
	queries *catalogdb.Queries
}

// NewPostgresBookRepository creates a new PostgreSQL-based book repository
func NewPostgresBookRepository(queries *catalogdb.Queries) *PostgresBookRepository {
	return &PostgresBookRepository{
		queries: queries,
	}
}

// CreateBook persists a new book record
func (r *PostgresBookRepository) CreateBook(ctx context.Context, fields BookFields) (Book, error) {
	row, err := r.queries.CreateBook(ctx, catalogdb.CreateBookParams{
		Name:    fields.Name,
		Address: fields.Address,
		Pin:     fields.Pin,
		Phone:   fields.Phone,
		Status:  string(fields.Status),
	})
	if err != nil {
		return Book{}, err
	}
	return toBook(row), nil
}

// GetBook retrieves a book by id
func (r *PostgresBookRepository) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	row, err := r.queries.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrBookNotFound
		}
		return Book{}, err
	}
	return toBook(row), nil
}

// FindBooks lists all books, newest first
func (r *PostgresBookRepository) FindBooks(ctx context.Context) ([]Book, error) {
	rows, err := r.queries.FindBooks(ctx)
	if err != nil {
		return nil, err
	}
	books := make([]Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, toBook(row))
	}
	return books, nil
}

// UpdateBook replaces the stored field values of a book
func (r *PostgresBookRepository) UpdateBook(ctx context.Context, id uuid.UUID, fields BookFields) (Book, error) {
	row, err := r.queries.UpdateBook(ctx, catalogdb.UpdateBookParams{
		ID:      id,
		Name:    fields.Name,
		Address: fields.Address,
		Pin:     fields.Pin,
		Phone:   fields.Phone,
		Status:  string(fields.Status),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Book{}, ErrBookNotFound
		}
		return Book{}, err
	}
	return toBook(row), nil
}

// DeleteBook removes a book record
func (r *PostgresBookRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	affected, err := r.queries.DeleteBook(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}

func toBook(row catalogdb.Book) Book {
	return Book{
		ID:        row.ID,
		Name:      row.Name,
		Address:   row.Address,
		Pin:       row.Pin,
		Phone:     row.Phone,
		Status:    BookStatus(row.Status),
		CreatedAt: row.CreatedAt.Time,
	}
}
