package userrole

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryAssignmentRepository implements AssignmentRepository using in-memory
// storage. The mutex held across check-and-insert stands in for the database
// uniqueness constraint under concurrent assignment.
type InMemoryAssignmentRepository struct {
	mu      sync.RWMutex
	byUser  map[string]RoleAssignment
	byEmail map[string]RoleAssignment
}

// NewInMemoryAssignmentRepository creates a new in-memory assignment repository
func NewInMemoryAssignmentRepository() *InMemoryAssignmentRepository {
	return &InMemoryAssignmentRepository{
		byUser:  make(map[string]RoleAssignment),
		byEmail: make(map[string]RoleAssignment),
	}
}

// CreateAssignment inserts a new assignment unless the user id or email is
// already taken
func (r *InMemoryAssignmentRepository) CreateAssignment(ctx context.Context, params CreateAssignmentParams) (RoleAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUser[params.UserID]; ok {
		return RoleAssignment{}, ErrAssignmentExists
	}
	if _, ok := r.byEmail[params.Email]; ok {
		return RoleAssignment{}, ErrAssignmentExists
	}

	assignment := RoleAssignment{
		ID:        uuid.New(),
		UserID:    params.UserID,
		Email:     params.Email,
		Role:      params.Role,
		CreatedAt: time.Now(),
	}
	r.byUser[params.UserID] = assignment
	r.byEmail[params.Email] = assignment
	return assignment, nil
}

// GetAssignmentByUserID looks up an assignment by user id
func (r *InMemoryAssignmentRepository) GetAssignmentByUserID(ctx context.Context, userID string) (RoleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignment, ok := r.byUser[userID]
	if !ok {
		return RoleAssignment{}, ErrAssignmentNotFound
	}
	return assignment, nil
}

// FindAssignment returns an assignment matching the user id or the email
func (r *InMemoryAssignmentRepository) FindAssignment(ctx context.Context, userID, email string) (RoleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if assignment, ok := r.byUser[userID]; ok {
		return assignment, nil
	}
	if assignment, ok := r.byEmail[email]; ok {
		return assignment, nil
	}
	return RoleAssignment{}, ErrAssignmentNotFound
}
