package catalog

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() chi.Router {
	handle := NewHandle(newTestService())
	r := chi.NewRouter()
	handle.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func createTestBook(t *testing.T, r chi.Router) BookResponse {
	t.Helper()
	rec := doJSON(t, r, http.MethodPost, "/forms", CreateBookParams{
		Name:    "Dune",
		Address: "Sci-Fi A-1",
		Pin:     "S100",
		Phone:   "ID900",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var book BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &book))
	return book
}

func TestCreateBookEndpoint(t *testing.T) {
	r := newTestRouter()

	book := createTestBook(t, r)
	assert.NotEmpty(t, book.ID)
	assert.Equal(t, "Dune", book.Name)
	assert.Equal(t, StatusAvailable, book.Status)
	assert.False(t, book.CreatedAt.IsZero())
}

func TestCreateBookEndpointValidation(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/forms", CreateBookParams{Name: "Dune"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "address")
	assert.Contains(t, resp.Fields, "pin")
	assert.Contains(t, resp.Fields, "phone")
}

func TestListBooksEndpoint(t *testing.T) {
	r := newTestRouter()

	// An empty catalog serializes as [], not null
	rec := doJSON(t, r, http.MethodGet, "/forms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	createTestBook(t, r)

	rec = doJSON(t, r, http.MethodGet, "/forms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var books []BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0].Name)
}

func TestGetBookEndpoint(t *testing.T) {
	r := newTestRouter()
	book := createTestBook(t, r)

	rec := doJSON(t, r, http.MethodGet, "/forms/"+book.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, book.ID, got.ID)
	assert.Equal(t, "Dune", got.Name)
}

func TestGetBookEndpointNotFound(t *testing.T) {
	r := newTestRouter()

	// Both an absent id and a malformed one read as "no such record"
	for _, path := range []string{
		"/forms/74a8bd9c-9ad3-43a4-9d9c-7a4f1a46ce46",
		"/forms/not-a-uuid",
	} {
		rec := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp MessageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Form not found", resp.Message)
	}
}

func TestUpdateBookEndpoint(t *testing.T) {
	r := newTestRouter()
	book := createTestBook(t, r)

	rec := doJSON(t, r, http.MethodPut, "/forms/"+book.ID, map[string]string{
		"status": "Reserved",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated BookResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, StatusReserved, updated.Status)
	assert.Equal(t, "Dune", updated.Name)
}

func TestUpdateBookEndpointNotFound(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodPut, "/forms/74a8bd9c-9ad3-43a4-9d9c-7a4f1a46ce46", map[string]string{
		"name": "Dune",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBookEndpoint(t *testing.T) {
	r := newTestRouter()
	book := createTestBook(t, r)

	rec := doJSON(t, r, http.MethodDelete, "/forms/"+book.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Form deleted successfully", resp.Message)

	rec = doJSON(t, r, http.MethodGet, "/forms/"+book.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteBookEndpointNotFound(t *testing.T) {
	r := newTestRouter()

	rec := doJSON(t, r, http.MethodDelete, "/forms/74a8bd9c-9ad3-43a4-9d9c-7a4f1a46ce46", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
