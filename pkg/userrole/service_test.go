package userrole

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bkerrors "github.com/bookkeephq/bookkeep/pkg/errors"
)

func newTestService() *AssignmentService {
	return NewAssignmentService(NewInMemoryAssignmentRepository())
}

func TestAssignRole(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	assignment, err := svc.AssignRole(ctx, "u1", "u1@x.com", RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "u1", assignment.UserID)
	assert.Equal(t, "u1@x.com", assignment.Email)
	assert.Equal(t, RoleAdmin, assignment.Role)
	assert.NotZero(t, assignment.ID)
	assert.False(t, assignment.CreatedAt.IsZero())
}

func TestAssignRoleValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	tests := []struct {
		name   string
		userID string
		email  string
		role   Role
		code   bkerrors.ErrorCode
	}{
		{"missing user id", "", "u1@x.com", RoleAdmin, bkerrors.ErrCodeMissingRequired},
		{"missing email", "u1", "", RoleAdmin, bkerrors.ErrCodeMissingRequired},
		{"missing role", "u1", "u1@x.com", "", bkerrors.ErrCodeMissingRequired},
		{"unknown role", "u1", "u1@x.com", "superadmin", bkerrors.ErrCodeUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AssignRole(ctx, tt.userID, tt.email, tt.role)
			require.Error(t, err)
			assert.True(t, bkerrors.IsCode(err, tt.code))
		})
	}

	// Nothing was persisted
	_, err := svc.GetRole(ctx, "u1")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestAssignRoleConflictSameUserID(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AssignRole(ctx, "u1", "u1@x.com", RoleAdmin)
	require.NoError(t, err)

	_, err = svc.AssignRole(ctx, "u1", "other@x.com", RoleGuest)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, RoleAdmin, conflict.Existing.Role)
	assert.Equal(t, "u1", conflict.Existing.UserID)
}

func TestAssignRoleConflictSameEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AssignRole(ctx, "u1", "shared@x.com", RoleGuest)
	require.NoError(t, err)

	_, err = svc.AssignRole(ctx, "u2", "shared@x.com", RoleAdmin)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, RoleGuest, conflict.Existing.Role)
	assert.Equal(t, "u1", conflict.Existing.UserID)
}

func TestAssignRoleConflictIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AssignRole(ctx, "u1", "u1@x.com", RoleAdmin)
	require.NoError(t, err)

	// Repeating the losing call keeps reporting the original role, never
	// overwriting it
	for i := 0; i < 3; i++ {
		_, err = svc.AssignRole(ctx, "u1", "u1@x.com", RoleGuest)
		var conflict *ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, RoleAdmin, conflict.Existing.Role)
	}

	role, err := svc.GetRole(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, role)
}

func TestAssignRoleConcurrentClaims(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	// A race between two claims for the same identity must resolve to
	// exactly one stored role
	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			role := RoleAdmin
			if i%2 == 1 {
				role = RoleGuest
			}
			_, errs[i] = svc.AssignRole(ctx, "u1", "u1@x.com", role)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
			continue
		}
		var conflict *ConflictError
		assert.ErrorAs(t, err, &conflict)
	}
	assert.Equal(t, 1, winners)

	role, err := svc.GetRole(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, []Role{RoleAdmin, RoleGuest}, role)
}

func TestGetRoleNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.GetRole(ctx, "nobody")
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"admin", "guest"} {
		role, ok := ParseRole(valid)
		assert.True(t, ok)
		assert.Equal(t, Role(valid), role)
	}
	for _, invalid := range []string{"", "Admin", "root", "superadmin"} {
		_, ok := ParseRole(invalid)
		assert.False(t, ok)
	}
}
