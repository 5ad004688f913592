package userrole

import (
	"time"

	"github.com/google/uuid"
)

// Role is one of the two roles a user can claim. The first successful
// assignment is permanent; there is no role-change operation.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest"
)

// ParseRole validates a role value from the wire
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleGuest:
		return Role(s), true
	}
	return "", false
}

// RoleAssignment binds an identity-provider subject to a role.
// UserID and Email are each unique across all assignments.
type RoleAssignment struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAssignmentParams contains parameters for creating a role assignment
type CreateAssignmentParams struct {
	UserID string
	Email  string
	Role   Role
}
