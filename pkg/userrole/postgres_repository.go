package userrole

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/bookkeephq/bookkeep/pkg/userrole/userroledb"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// PostgresAssignmentRepository implements AssignmentRepository using
// userroledb.Queries
type PostgresAssignmentRepository struct {
	queries *userroledb.Queries
}

// NewPostgresAssignmentRepository creates a new PostgreSQL-based assignment
// repository
func NewPostgresAssignmentRepository(queries *userroledb.Queries) *PostgresAssignmentRepository {
	return &PostgresAssignmentRepository{
		queries: queries,
	}
}

// CreateAssignment inserts a new assignment. Unique violations on user_id or
// email surface as ErrAssignmentExists.
func (r *PostgresAssignmentRepository) CreateAssignment(ctx context.Context, params CreateAssignmentParams) (RoleAssignment, error) {
	row, err := r.queries.CreateUser(ctx, userroledb.CreateUserParams{
		UserID: params.UserID,
		Email:  params.Email,
		Role:   string(params.Role),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return RoleAssignment{}, ErrAssignmentExists
		}
		return RoleAssignment{}, err
	}
	return toAssignment(row), nil
}

// GetAssignmentByUserID looks up an assignment by user id
func (r *PostgresAssignmentRepository) GetAssignmentByUserID(ctx context.Context, userID string) (RoleAssignment, error) {
	row, err := r.queries.GetUserByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RoleAssignment{}, ErrAssignmentNotFound
		}
		return RoleAssignment{}, err
	}
	return toAssignment(row), nil
}

// FindAssignment returns an assignment matching the user id or the email
func (r *PostgresAssignmentRepository) FindAssignment(ctx context.Context, userID, email string) (RoleAssignment, error) {
	row, err := r.queries.FindUserByUserIDOrEmail(ctx, userroledb.FindUserByUserIDOrEmailParams{
		UserID: userID,
		Email:  email,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return RoleAssignment{}, ErrAssignmentNotFound
		}
		return RoleAssignment{}, err
	}
	return toAssignment(row), nil
}

func toAssignment(row userroledb.User) RoleAssignment {
	return RoleAssignment{
		ID:        row.ID,
		UserID:    row.UserID,
		Email:     row.Email,
		Role:      Role(row.Role),
		CreatedAt: row.CreatedAt.Time,
	}
}
