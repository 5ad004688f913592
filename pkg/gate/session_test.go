package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeephq/bookkeep/pkg/userrole"
)

// flakyLookup fails a set number of calls before delegating
type flakyLookup struct {
	failures int
	err      error
	delegate RoleLookup
}

func (f *flakyLookup) GetRole(ctx context.Context, userID string) (userrole.Role, error) {
	if f.failures > 0 {
		f.failures--
		return "", f.err
	}
	return f.delegate.GetRole(ctx, userID)
}

func newLookupWithRole(t *testing.T, userID, email string, role userrole.Role) *userrole.AssignmentService {
	t.Helper()
	svc := userrole.NewAssignmentService(userrole.NewInMemoryAssignmentRepository())
	_, err := svc.AssignRole(context.Background(), userID, email, role)
	require.NoError(t, err)
	return svc
}

func TestSessionSignInWithExistingRole(t *testing.T) {
	ctx := context.Background()
	lookup := newLookupWithRole(t, "u1", "u1@x.com", userrole.RoleAdmin)

	session := NewSession(lookup)
	assert.Equal(t, StateUnauthenticated, session.State())

	state := session.SignIn(ctx, "u1")
	assert.Equal(t, StateWithRole, state)
	assert.Equal(t, userrole.RoleAdmin, session.Role())
	assert.Equal(t, Allow, session.Check(userrole.RoleAdmin))
	assert.Equal(t, Deny, session.Check(userrole.RoleGuest))
}

func TestSessionSignInWithoutRole(t *testing.T) {
	ctx := context.Background()
	lookup := userrole.NewAssignmentService(userrole.NewInMemoryAssignmentRepository())

	session := NewSession(lookup)
	state := session.SignIn(ctx, "u1")
	assert.Equal(t, StateNoRole, state)
	assert.Equal(t, RedirectRoleSelect, session.Check(userrole.RoleAdmin))
}

func TestSessionSignInLookupFailureFailsOpen(t *testing.T) {
	ctx := context.Background()
	lookup := &flakyLookup{
		failures: 1,
		err:      errors.New("store unavailable"),
		delegate: newLookupWithRole(t, "u1", "u1@x.com", userrole.RoleGuest),
	}

	// A transient failure lands the visitor on role-selection rather than
	// locking them out
	session := NewSession(lookup)
	state := session.SignIn(ctx, "u1")
	assert.Equal(t, StateNoRole, state)

	// The next sign-in sees the store again and recovers the stored role
	session.SignOut()
	state = session.SignIn(ctx, "u1")
	assert.Equal(t, StateWithRole, state)
	assert.Equal(t, userrole.RoleGuest, session.Role())
}

func TestSessionCompleteRoleSelection(t *testing.T) {
	ctx := context.Background()
	lookup := userrole.NewAssignmentService(userrole.NewInMemoryAssignmentRepository())

	session := NewSession(lookup)
	session.SignIn(ctx, "u1")

	// A conflict response resolves the session just like a success: the
	// reported current role becomes the cached one
	state := session.CompleteRoleSelection(userrole.RoleAdmin)
	assert.Equal(t, StateWithRole, state)
	assert.Equal(t, Allow, session.Check(userrole.RoleAdmin))
}

func TestSessionCompleteRoleSelectionRequiresIdentity(t *testing.T) {
	lookup := userrole.NewAssignmentService(userrole.NewInMemoryAssignmentRepository())

	session := NewSession(lookup)
	state := session.CompleteRoleSelection(userrole.RoleAdmin)
	assert.Equal(t, StateUnauthenticated, state)
	assert.Equal(t, RedirectSignIn, session.Check(userrole.RoleAdmin))
}

func TestSessionSignOut(t *testing.T) {
	ctx := context.Background()
	lookup := newLookupWithRole(t, "u1", "u1@x.com", userrole.RoleAdmin)

	session := NewSession(lookup)
	session.SignIn(ctx, "u1")
	require.Equal(t, StateWithRole, session.State())

	state := session.SignOut()
	assert.Equal(t, StateUnauthenticated, state)
	assert.Empty(t, session.Role())
	assert.Equal(t, RedirectSignIn, session.Check(userrole.RoleAdmin))
}
