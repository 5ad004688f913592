package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fileCatalogData represents all catalog data stored in the file
type fileCatalogData struct {
	Books map[uuid.UUID]Book `json:"books"` // keyed by book ID
}

// FileBookRepository implements BookRepository using file-based storage
type FileBookRepository struct {
	dataDir string
	data    *fileCatalogData
	mutex   sync.RWMutex
}

// NewFileBookRepository creates a new file-based book repository
func NewFileBookRepository(dataDir string) (*FileBookRepository, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	repo := &FileBookRepository{
		dataDir: dataDir,
		data: &fileCatalogData{
			Books: make(map[uuid.UUID]Book),
		},
	}

	// Load existing data
	if err := repo.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return repo, nil
}

// CreateBook creates a new book record
func (r *FileBookRepository) CreateBook(ctx context.Context, fields BookFields) (Book, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	book := Book{
		ID:        uuid.New(),
		Name:      fields.Name,
		Address:   fields.Address,
		Pin:       fields.Pin,
		Phone:     fields.Phone,
		Status:    fields.Status,
		CreatedAt: time.Now(),
	}
	r.data.Books[book.ID] = book

	if err := r.save(); err != nil {
		delete(r.data.Books, book.ID)
		return Book{}, err
	}
	return book, nil
}

// GetBook gets a book by id
func (r *FileBookRepository) GetBook(ctx context.Context, id uuid.UUID) (Book, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	book, ok := r.data.Books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	return book, nil
}

// FindBooks lists all books, newest first
func (r *FileBookRepository) FindBooks(ctx context.Context) ([]Book, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	books := make([]Book, 0, len(r.data.Books))
	for _, book := range r.data.Books {
		books = append(books, book)
	}
	sort.Slice(books, func(i, j int) bool {
		return books[i].CreatedAt.After(books[j].CreatedAt)
	})
	return books, nil
}

// UpdateBook replaces the stored field values of a book
func (r *FileBookRepository) UpdateBook(ctx context.Context, id uuid.UUID, fields BookFields) (Book, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	book, ok := r.data.Books[id]
	if !ok {
		return Book{}, ErrBookNotFound
	}
	prev := book
	book.Name = fields.Name
	book.Address = fields.Address
	book.Pin = fields.Pin
	book.Phone = fields.Phone
	book.Status = fields.Status
	r.data.Books[id] = book

	if err := r.save(); err != nil {
		r.data.Books[id] = prev
		return Book{}, err
	}
	return book, nil
}

// DeleteBook removes a book record
func (r *FileBookRepository) DeleteBook(ctx context.Context, id uuid.UUID) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	book, ok := r.data.Books[id]
	if !ok {
		return ErrBookNotFound
	}
	delete(r.data.Books, id)

	if err := r.save(); err != nil {
		r.data.Books[id] = book
		return err
	}
	return nil
}

// load reads catalog data from file
func (r *FileBookRepository) load() error {
	filePath := filepath.Join(r.dataDir, "catalog.json")

	// If file doesn't exist, start with empty data
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// If file is empty, start with empty data
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, r.data); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return nil
}

// save writes catalog data to file atomically
func (r *FileBookRepository) save() error {
	data, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	// Write to temp file first
	tempFile := filepath.Join(r.dataDir, "catalog.json.tmp")
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Atomic rename
	finalFile := filepath.Join(r.dataDir, "catalog.json")
	if err := os.Rename(tempFile, finalFile); err != nil {
		return fmt.Errorf("failed to rename file: %w", err)
	}

	return nil
}
