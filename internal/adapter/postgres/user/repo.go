// Package user implements the User repository using PostgreSQL.
// Users are keyed by email, the natural key inherited from the legacy schema.
package user

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `
    email, name, last_name, password_hash, enabled, role, registered_at`

const getByEmailSQL = `
SELECT` + userColumns + `
FROM users
WHERE email = $1`

const listSQL = `
SELECT` + userColumns + `
FROM users
ORDER BY registered_at DESC, email`

const searchByNameSQL = `
SELECT` + userColumns + `
FROM users
WHERE name ILIKE $1 OR last_name ILIKE $1
ORDER BY name, email`

const listByRoleSQL = `
SELECT` + userColumns + `
FROM users
WHERE role = $1
ORDER BY registered_at DESC, email`

const listByEnabledSQL = `
SELECT` + userColumns + `
FROM users
WHERE enabled = $1
ORDER BY registered_at DESC, email`

const createSQL = `
INSERT INTO users (email, name, last_name, password_hash, enabled, role, registered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING` + userColumns

const updateProfileSQL = `
UPDATE users SET name = $2, last_name = $3 WHERE email = $1
RETURNING` + userColumns

const updateSQL = `
UPDATE users SET name = $2, last_name = $3, enabled = $4, role = $5 WHERE email = $1
RETURNING` + userColumns

const setEnabledSQL = `
UPDATE users SET enabled = $2 WHERE email = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByEmail returns a user by email.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// List returns all users, newest first.
func (r *Repo) List(ctx context.Context) ([]*domain.User, error) {
	return r.queryUsers(ctx, listSQL)
}

// SearchByName returns users whose first or last name contains the given
// text, case-insensitively.
func (r *Repo) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	return r.queryUsers(ctx, searchByNameSQL, "%"+name+"%")
}

// ListByRole returns users with the given role.
func (r *Repo) ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	return r.queryUsers(ctx, listByRoleSQL, string(role))
}

// ListByEnabled returns users filtered by account state.
func (r *Repo) ListByEnabled(ctx context.Context, enabled bool) ([]*domain.User, error) {
	return r.queryUsers(ctx, listByEnabledSQL, enabled)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
// Returns domain.ErrAlreadyExists if the email is taken.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(querier.QueryRow(ctx, createSQL,
		u.Email, u.Name, u.LastName, u.PasswordHash, u.Enabled, string(u.Role), u.RegisteredAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return created, nil
}

// UpdateProfile updates the user's own editable fields.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) UpdateProfile(ctx context.Context, email, name, lastName string) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(querier.QueryRow(ctx, updateProfileSQL, email, name, lastName))
	if err != nil {
		return nil, postgres.MapError(err, "user", email)
	}
	return u, nil
}

// Update persists an admin-level edit of a user record.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) Update(ctx context.Context, u *domain.User) (*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanUser(querier.QueryRow(ctx, updateSQL,
		u.Email, u.Name, u.LastName, u.Enabled, string(u.Role),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return updated, nil
}

// SetEnabled activates or deactivates an account.
// Returns domain.ErrNotFound if the user does not exist.
func (r *Repo) SetEnabled(ctx context.Context, email string, enabled bool) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, setEnabledSQL, email, enabled)
	if err != nil {
		return postgres.MapError(err, "user", email)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func (r *Repo) queryUsers(ctx context.Context, sql string, args ...any) ([]*domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(&u.Email, &u.Name, &u.LastName, &u.PasswordHash, &u.Enabled, &role, &u.RegisteredAt)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}
