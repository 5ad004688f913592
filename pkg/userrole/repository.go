package userrole

import (
	"context"
	"errors"
)

var (
	// ErrAssignmentNotFound is returned when no assignment exists for a lookup
	ErrAssignmentNotFound = errors.New("role assignment not found")

	// ErrAssignmentExists is returned by CreateAssignment when the store's
	// uniqueness constraint on user_id or email rejects the insert. This is
	// the only place a concurrent-assignment race can surface.
	ErrAssignmentExists = errors.New("role assignment already exists")
)

// AssignmentRepository defines the interface for role assignment storage.
// Implementations: PostgresAssignmentRepository, InMemoryAssignmentRepository,
// FileAssignmentRepository.
type AssignmentRepository interface {
	// CreateAssignment inserts a new assignment, relying on the store's
	// uniqueness constraints to reject duplicates with ErrAssignmentExists.
	CreateAssignment(ctx context.Context, params CreateAssignmentParams) (RoleAssignment, error)

	// GetAssignmentByUserID looks up an assignment by the opaque user id
	GetAssignmentByUserID(ctx context.Context, userID string) (RoleAssignment, error)

	// FindAssignment returns an assignment matching either the user id or
	// the email, whichever exists
	FindAssignment(ctx context.Context, userID, email string) (RoleAssignment, error)
}
