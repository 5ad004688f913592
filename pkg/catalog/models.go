package catalog

import (
	"time"

	"github.com/google/uuid"
)

// BookStatus is the advisory circulation status of a book record. There is no
// borrower relationship behind it; the value is display-only.
type BookStatus string

const (
	StatusAvailable BookStatus = "Available"
	StatusBorrowed  BookStatus = "Borrowed"
	StatusReserved  BookStatus = "Reserved"
)

// ParseBookStatus validates a status value from the wire
func ParseBookStatus(s string) (BookStatus, bool) {
	switch BookStatus(s) {
	case StatusAvailable, StatusBorrowed, StatusReserved:
		return BookStatus(s), true
	}
	return "", false
}

// Book represents a catalog record. Field names keep the original wire format:
// Name is the title, Address the shelf location, Pin the identifying code and
// Phone the inventory id.
type Book struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Pin       string     `json:"pin"`
	Phone     string     `json:"phone"`
	Status    BookStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}

// CreateBookParams contains parameters for creating a new book
type CreateBookParams struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Pin     string `json:"pin"`
	Phone   string `json:"phone"`
	Status  string `json:"status,omitempty"`
}

// UpdateBookParams contains parameters for updating a book.
// Nil fields are left unchanged.
type UpdateBookParams struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Pin     *string `json:"pin"`
	Phone   *string `json:"phone"`
	Status  *string `json:"status"`
}
