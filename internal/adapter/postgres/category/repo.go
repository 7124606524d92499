// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `
SELECT id, name, description FROM categories WHERE id = $1`

const getByNameSQL = `
SELECT id, name, description FROM categories WHERE name ILIKE $1 ORDER BY name`

const listSQL = `
SELECT id, name, description FROM categories ORDER BY name`

const createSQL = `
INSERT INTO categories (id, name, description)
VALUES ($1, $2, $3)
RETURNING id, name, description`

const updateSQL = `
UPDATE categories SET name = $2, description = $3 WHERE id = $1
RETURNING id, name, description`

const deleteSQL = `
DELETE FROM categories WHERE id = $1`

// GetByID returns a category by primary key.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCategory(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "category", id.String())
	}
	return c, nil
}

// SearchByName returns categories whose name contains the given text,
// case-insensitively.
func (r *Repo) SearchByName(ctx context.Context, name string) ([]*domain.Category, error) {
	return r.queryCategories(ctx, getByNameSQL, "%"+name+"%")
}

// List returns all categories ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Category, error) {
	return r.queryCategories(ctx, listSQL)
}

// Create inserts a new category and returns the persisted row.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCategory(querier.QueryRow(ctx, createSQL, c.ID, c.Name, c.Description))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID.String())
	}
	return created, nil
}

// Update persists category fields.
// Returns domain.ErrNotFound if the category does not exist.
func (r *Repo) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCategory(querier.QueryRow(ctx, updateSQL, c.ID, c.Name, c.Description))
	if err != nil {
		return nil, postgres.MapError(err, "category", c.ID.String())
	}
	return updated, nil
}

// Delete removes a category. Returns domain.ErrNotFound if it does not exist;
// the FK from vacancies surfaces as a mapped error when the category is in use.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "category", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) queryCategories(ctx context.Context, sql string, args ...any) ([]*domain.Category, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return categories, nil
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
