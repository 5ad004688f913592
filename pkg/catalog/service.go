package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	bkerrors "github.com/bookkeephq/bookkeep/pkg/errors"
)

var (
	// ErrBookNotFound is returned when the referenced book id is absent
	ErrBookNotFound = errors.New("book not found")
)

// BookService provides CRUD operations over book records.
// Concurrent writes to the same book are last-write-wins; the catalog has no
// conflict handling by design of the record model.
type BookService struct {
	repo BookRepository
}

// NewBookService creates a new book catalog service
func NewBookService(repo BookRepository) *BookService {
	return &BookService{
		repo: repo,
	}
}

// CreateBook validates the submitted fields and persists a new book.
// All four text fields are required and trimmed; status defaults to Available.
func (s *BookService) CreateBook(ctx context.Context, params CreateBookParams) (Book, error) {
	fields := BookFields{
		Name:    strings.TrimSpace(params.Name),
		Address: strings.TrimSpace(params.Address),
		Pin:     strings.TrimSpace(params.Pin),
		Phone:   strings.TrimSpace(params.Phone),
	}

	details := map[string]interface{}{}
	if fields.Name == "" {
		details["name"] = "required"
	}
	if fields.Address == "" {
		details["address"] = "required"
	}
	if fields.Pin == "" {
		details["pin"] = "required"
	}
	if fields.Phone == "" {
		details["phone"] = "required"
	}

	status := strings.TrimSpace(params.Status)
	if status == "" {
		fields.Status = StatusAvailable
	} else if parsed, ok := ParseBookStatus(status); ok {
		fields.Status = parsed
	} else {
		details["status"] = fmt.Sprintf("must be one of %s, %s, %s", StatusAvailable, StatusBorrowed, StatusReserved)
	}

	if len(details) > 0 {
		return Book{}, bkerrors.ValidationFailed(details)
	}

	book, err := s.repo.CreateBook(ctx, fields)
	if err != nil {
		slog.Error("Failed to create book", "err", err)
		return Book{}, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

// GetBook retrieves a book by id
func (s *BookService) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	return s.repo.GetBook(ctx, id)
}

// ListBooks lists all books, newest created first. An empty catalog yields an
// empty slice, not an error.
func (s *BookService) ListBooks(ctx context.Context) ([]Book, error) {
	books, err := s.repo.FindBooks(ctx)
	if err != nil {
		slog.Error("Failed to list books", "err", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	if books == nil {
		books = []Book{}
	}
	return books, nil
}

// UpdateBook applies a partial or full field replace with the same validation
// rules as CreateBook. Fields left nil keep their stored value.
func (s *BookService) UpdateBook(ctx context.Context, id uuid.UUID, params UpdateBookParams) (Book, error) {
	existing, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return Book{}, err
	}

	fields := BookFields{
		Name:    existing.Name,
		Address: existing.Address,
		Pin:     existing.Pin,
		Phone:   existing.Phone,
		Status:  existing.Status,
	}

	details := map[string]interface{}{}
	if params.Name != nil {
		fields.Name = strings.TrimSpace(*params.Name)
		if fields.Name == "" {
			details["name"] = "required"
		}
	}
	if params.Address != nil {
		fields.Address = strings.TrimSpace(*params.Address)
		if fields.Address == "" {
			details["address"] = "required"
		}
	}
	if params.Pin != nil {
		fields.Pin = strings.TrimSpace(*params.Pin)
		if fields.Pin == "" {
			details["pin"] = "required"
		}
	}
	if params.Phone != nil {
		fields.Phone = strings.TrimSpace(*params.Phone)
		if fields.Phone == "" {
			details["phone"] = "required"
		}
	}
	if params.Status != nil {
		parsed, ok := ParseBookStatus(strings.TrimSpace(*params.Status))
		if !ok {
			details["status"] = fmt.Sprintf("must be one of %s, %s, %s", StatusAvailable, StatusBorrowed, StatusReserved)
		} else {
			fields.Status = parsed
		}
	}

	if len(details) > 0 {
		return Book{}, bkerrors.ValidationFailed(details)
	}

	book, err := s.repo.UpdateBook(ctx, id, fields)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return Book{}, err
		}
		slog.Error("Failed to update book", "id", id, "err", err)
		return Book{}, fmt.Errorf("failed to update book: %w", err)
	}
	return book, nil
}

// DeleteBook removes a book record
func (s *BookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return err
		}
		slog.Error("Failed to delete book", "id", id, "err", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}
