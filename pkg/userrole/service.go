package userrole

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	bkerrors "github.com/bookkeephq/bookkeep/pkg/errors"
)

// ConflictError reports that the identity already holds a role. The stored
// assignment is attached so callers can report the current role.
type ConflictError struct {
	Existing RoleAssignment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("role already assigned: user %s has role %s", e.Existing.UserID, e.Existing.Role)
}

// AssignmentService provides role assignment operations. Assignment is an
// idempotent claim: a race between two requests for the same identity resolves
// to exactly one stored role through the store's uniqueness constraint, with no
// application-level locking.
type AssignmentService struct {
	repo AssignmentRepository
}

// NewAssignmentService creates a new role assignment service
func NewAssignmentService(repo AssignmentRepository) *AssignmentService {
	return &AssignmentService{
		repo: repo,
	}
}

// AssignRole persists a new role assignment for the identity. If an assignment
// already exists matching the user id or the email, it returns *ConflictError
// carrying the stored assignment; the first assignment is permanent.
func (s *AssignmentService) AssignRole(ctx context.Context, userID, email string, role Role) (RoleAssignment, error) {
	if userID == "" || email == "" || role == "" {
		return RoleAssignment{}, bkerrors.New(bkerrors.ErrCodeMissingRequired, "User ID, email and role are required")
	}
	if _, ok := ParseRole(string(role)); !ok {
		return RoleAssignment{}, bkerrors.Newf(bkerrors.ErrCodeUnknownRole, "unknown role: %s", role)
	}

	existing, err := s.repo.FindAssignment(ctx, userID, email)
	if err == nil {
		return RoleAssignment{}, &ConflictError{Existing: existing}
	}
	if !errors.Is(err, ErrAssignmentNotFound) {
		slog.Error("Failed to look up existing assignment", "userId", userID, "err", err)
		return RoleAssignment{}, fmt.Errorf("failed to look up existing assignment: %w", err)
	}

	assignment, err := s.repo.CreateAssignment(ctx, CreateAssignmentParams{
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	if err != nil {
		if errors.Is(err, ErrAssignmentExists) {
			// Lost the race; the winner's assignment is authoritative.
			existing, findErr := s.repo.FindAssignment(ctx, userID, email)
			if findErr != nil {
				slog.Error("Failed to load winning assignment after conflict", "userId", userID, "err", findErr)
				return RoleAssignment{}, fmt.Errorf("failed to load winning assignment: %w", findErr)
			}
			return RoleAssignment{}, &ConflictError{Existing: existing}
		}
		slog.Error("Failed to create assignment", "userId", userID, "err", err)
		return RoleAssignment{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	slog.Info("Role assigned", "userId", userID, "role", role)
	return assignment, nil
}

// GetRole returns the assigned role for the user id, or ErrAssignmentNotFound
func (s *AssignmentService) GetRole(ctx context.Context, userID string) (Role, error) {
	assignment, err := s.repo.GetAssignmentByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return "", err
		}
		slog.Error("Failed to get role", "userId", userID, "err", err)
		return "", fmt.Errorf("failed to get role: %w", err)
	}
	return assignment.Role, nil
}
