package gate

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/exp/slog"

	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

// RoleLookup is the authoritative role source behind the gate.
// *userrole.AssignmentService satisfies it.
type RoleLookup interface {
	GetRole(ctx context.Context, userID string) (userrole.Role, error)
}

// Session tracks one client's gate state. The role field is a locally cached
// hint refreshed from the authoritative lookup; conflicts are always resolved
// in favor of the store.
type Session struct {
	mu     sync.Mutex
	lookup RoleLookup

	authenticated bool
	userID        string
	role          userrole.Role
}

// NewSession creates a session in StateUnauthenticated
func NewSession(lookup RoleLookup) *Session {
	return &Session{
		lookup: lookup,
	}
}

// SignIn records a confirmed identity and resolves the session's role from the
// cache or the authoritative lookup.
//
// A transient lookup failure degrades to StateNoRole: the visitor lands on
// role-selection instead of being locked out, and the subsequent assignment
// attempt surfaces the stored role via Conflict if one exists. This fail-open
// policy is deliberate; see DESIGN.md.
func (s *Session) SignIn(ctx context.Context, userID string) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.authenticated && s.userID == userID && s.role != "" {
		return StateWithRole
	}

	s.authenticated = true
	s.userID = userID
	s.role = ""

	role, err := s.lookup.GetRole(ctx, userID)
	if err != nil {
		if !errors.Is(err, userrole.ErrAssignmentNotFound) {
			slog.Warn("Role lookup failed, treating session as role-less", "userId", userID, "err", err)
		}
		return StateNoRole
	}

	s.role = role
	return StateWithRole
}

// CompleteRoleSelection caches the role resolved by an assignment attempt.
// Success and Conflict both resolve to a definite role.
func (s *Session) CompleteRoleSelection(role userrole.Role) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		return StateUnauthenticated
	}
	s.role = role
	return StateWithRole
}

// SignOut clears the identity and the cached role
func (s *Session) SignOut() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.userID = ""
	s.role = ""
	return StateUnauthenticated
}

// State reports the current gate state
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stateLocked()
}

// Check applies the route-guard rule against the session's current state
func (s *Session) Check(required userrole.Role) Decision {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Decide(s.stateLocked(), s.role, required)
}

// Role returns the cached role hint, empty when none is held
func (s *Session) Role() userrole.Role {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.role
}

func (s *Session) stateLocked() State {
	switch {
	case !s.authenticated:
		return StateUnauthenticated
	case s.role == "":
		return StateNoRole
	default:
		return StateWithRole
	}
}
