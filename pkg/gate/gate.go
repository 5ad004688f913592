// Package gate decides which views an identity can reach. It models the
// session as a three-state machine (unauthenticated, authenticated without a
// role, authenticated with a role) and turns a view's role requirement into a
// routing decision. The cached role is a hint, never a credential: the
// authoritative answer always comes from the role assignment store.
package gate

import (
	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

// State is the gate's view of a session
type State int

const (
	// StateUnauthenticated means no confirmed identity
	StateUnauthenticated State = iota
	// StateNoRole means a confirmed identity that has not claimed a role
	StateNoRole
	// StateWithRole means a confirmed identity with an assigned role
	StateWithRole
)

func (s State) String() string {
	switch s {
	case StateNoRole:
		return "authenticated-no-role"
	case StateWithRole:
		return "authenticated-with-role"
	default:
		return "unauthenticated"
	}
}

// Decision is the outcome of checking a role-protected view
type Decision int

const (
	// Allow grants entry to the view
	Allow Decision = iota
	// RedirectSignIn sends the visitor to the unauthenticated entry point
	RedirectSignIn
	// RedirectRoleSelect sends the visitor to the role-selection screen
	RedirectRoleSelect
	// Deny shows an access-denied affordance with a path back to
	// role-selection; the visitor holds the other role
	Deny
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectSignIn:
		return "redirect-sign-in"
	case RedirectRoleSelect:
		return "redirect-role-select"
	default:
		return "deny"
	}
}

// Decide applies the route-guard rule: entry is permitted only in
// StateWithRole when the held role equals the requirement.
func Decide(state State, held, required userrole.Role) Decision {
	switch state {
	case StateUnauthenticated:
		return RedirectSignIn
	case StateNoRole:
		return RedirectRoleSelect
	case StateWithRole:
		if held == required {
			return Allow
		}
		return Deny
	default:
		return RedirectSignIn
	}
}
