package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	bkerrors "github.com/bookkeephq/bookkeep/pkg/errors"
)

// Handle handles HTTP requests for the book catalog
type Handle struct {
	bookService *BookService
}

// NewHandle creates a new catalog handler
func NewHandle(bookService *BookService) *Handle {
	return &Handle{
		bookService: bookService,
	}
}

// BookResponse is the wire representation of a book record
type BookResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Pin       string     `json:"pin"`
	Phone     string     `json:"phone"`
	Status    BookStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// MessageResponse carries a plain message body
type MessageResponse struct {
	Message string                 `json:"message"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// RegisterRoutes registers the book catalog routes
func (h *Handle) RegisterRoutes(r chi.Router) {
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", h.ListBooks)
		r.Post("/", h.CreateBook)
		r.Get("/{id}", h.GetBook)
		r.Put("/{id}", h.UpdateBook)
		r.Delete("/{id}", h.DeleteBook)
	})
}

// ListBooks handles the request to list all books
func (h *Handle) ListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.ListBooks(r.Context())
	if err != nil {
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "Server error occurred"})
		return
	}

	response := make([]BookResponse, 0, len(books))
	for _, book := range books {
		response = append(response, toBookResponse(book))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

// GetBook handles the request to get a single book
func (h *Handle) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "Form not found"})
		return
	}

	book, err := h.bookService.GetBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, MessageResponse{Message: "Form not found"})
			return
		}
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "Server error occurred"})
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookResponse(book))
}

// CreateBook handles the request to create a book
func (h *Handle) CreateBook(w http.ResponseWriter, r *http.Request) {
	var params CreateBookParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "Invalid request body"})
		return
	}

	book, err := h.bookService.CreateBook(r.Context(), params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toBookResponse(book))
}

// UpdateBook handles the request to update a book
func (h *Handle) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "Form not found"})
		return
	}

	var params UpdateBookParams
	if err := render.DecodeJSON(r.Body, &params); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "Invalid request body"})
		return
	}

	book, err := h.bookService.UpdateBook(r.Context(), id, params)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toBookResponse(book))
}

// DeleteBook handles the request to delete a book
func (h *Handle) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "Form not found"})
		return
	}

	if err := h.bookService.DeleteBook(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, MessageResponse{Message: "Form deleted successfully"})
}

// respondError maps service errors to HTTP responses
func (h *Handle) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrBookNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, MessageResponse{Message: "Form not found"})
		return
	}

	var apiErr *bkerrors.Error
	if errors.As(err, &apiErr) {
		render.Status(r, apiErr.HTTPStatusCode())
		render.JSON(w, r, MessageResponse{Message: apiErr.Message, Fields: apiErr.Details})
		return
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, MessageResponse{Message: "Server error occurred"})
}

func toBookResponse(book Book) BookResponse {
	response := BookResponse{}
	copier.Copy(&response, &book)
	response.ID = book.ID.String()
	return response
}
