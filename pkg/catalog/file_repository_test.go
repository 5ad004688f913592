package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileBookRepositoryPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := NewFileBookRepository(dir)
	require.NoError(t, err)

	created, err := repo.CreateBook(ctx, BookFields{
		Name:    "Dune",
		Address: "Sci-Fi A-1",
		Pin:     "S100",
		Phone:   "ID900",
		Status:  StatusAvailable,
	})
	require.NoError(t, err)

	reopened, err := NewFileBookRepository(dir)
	require.NoError(t, err)

	got, err := reopened.GetBook(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Name)
	assert.Equal(t, StatusAvailable, got.Status)
}

func TestFileBookRepositoryUpdateAndDelete(t *testing.T) {
	ctx := context.Background()

	repo, err := NewFileBookRepository(t.TempDir())
	require.NoError(t, err)

	created, err := repo.CreateBook(ctx, BookFields{
		Name:    "Dune",
		Address: "Sci-Fi A-1",
		Pin:     "S100",
		Phone:   "ID900",
		Status:  StatusAvailable,
	})
	require.NoError(t, err)

	updated, err := repo.UpdateBook(ctx, created.ID, BookFields{
		Name:    "Dune",
		Address: "Sci-Fi A-2",
		Pin:     "S100",
		Phone:   "ID900",
		Status:  StatusBorrowed,
	})
	require.NoError(t, err)
	assert.Equal(t, "Sci-Fi A-2", updated.Address)
	assert.Equal(t, StatusBorrowed, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	require.NoError(t, repo.DeleteBook(ctx, created.ID))

	_, err = repo.GetBook(ctx, created.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.ErrorIs(t, repo.DeleteBook(ctx, created.ID), ErrBookNotFound)
}

func TestFileBookRepositoryMissingID(t *testing.T) {
	ctx := context.Background()

	repo, err := NewFileBookRepository(t.TempDir())
	require.NoError(t, err)

	_, err = repo.GetBook(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrBookNotFound)

	_, err = repo.UpdateBook(ctx, uuid.New(), BookFields{Name: "X", Address: "Y", Pin: "Z", Phone: "W", Status: StatusAvailable})
	assert.ErrorIs(t, err, ErrBookNotFound)
}
