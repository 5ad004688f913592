package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		held     userrole.Role
		required userrole.Role
		want     Decision
	}{
		{"unauthenticated admin view", StateUnauthenticated, "", userrole.RoleAdmin, RedirectSignIn},
		{"unauthenticated guest view", StateUnauthenticated, "", userrole.RoleGuest, RedirectSignIn},
		{"no role admin view", StateNoRole, "", userrole.RoleAdmin, RedirectRoleSelect},
		{"no role guest view", StateNoRole, "", userrole.RoleGuest, RedirectRoleSelect},
		{"admin reaches admin view", StateWithRole, userrole.RoleAdmin, userrole.RoleAdmin, Allow},
		{"guest reaches guest view", StateWithRole, userrole.RoleGuest, userrole.RoleGuest, Allow},
		{"guest blocked from admin view", StateWithRole, userrole.RoleGuest, userrole.RoleAdmin, Deny},
		{"admin blocked from guest view", StateWithRole, userrole.RoleAdmin, userrole.RoleGuest, Deny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.state, tt.held, tt.required))
		})
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unauthenticated", StateUnauthenticated.String())
	assert.Equal(t, "authenticated-no-role", StateNoRole.String())
	assert.Equal(t, "authenticated-with-role", StateWithRole.String())
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "allow", Allow.String())
	assert.Equal(t, "redirect-sign-in", RedirectSignIn.String())
	assert.Equal(t, "redirect-role-select", RedirectRoleSelect.String())
	assert.Equal(t, "deny", Deny.String())
}
