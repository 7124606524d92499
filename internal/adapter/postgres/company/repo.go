// Package company implements the Company repository using PostgreSQL.
package company

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const companyColumns = `
    id, cif, name, address, country, user_email`

const getByIDSQL = `
SELECT` + companyColumns + `
FROM companies
WHERE id = $1`

const getByUserEmailSQL = `
SELECT` + companyColumns + `
FROM companies
WHERE user_email = $1`

const listSQL = `
SELECT` + companyColumns + `
FROM companies
ORDER BY name, id`

const createSQL = `
INSERT INTO companies (id, cif, name, address, country, user_email)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING` + companyColumns

const updateSQL = `
UPDATE companies SET cif = $2, name = $3, address = $4, country = $5 WHERE id = $1
RETURNING` + companyColumns

const deleteSQL = `
DELETE FROM companies WHERE id = $1`

// GetByID returns a company by primary key.
// Returns domain.ErrNotFound if the company does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCompany(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "company", id.String())
	}
	return c, nil
}

// GetByUserEmail returns the company profile owned by the given user account.
// Returns domain.ErrNotFound if the user owns no company.
func (r *Repo) GetByUserEmail(ctx context.Context, email string) (*domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanCompany(querier.QueryRow(ctx, getByUserEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "company", email)
	}
	return c, nil
}

// List returns all companies ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	companies := make([]*domain.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate companies: %w", err)
	}
	return companies, nil
}

// Create inserts a new company and returns the persisted row.
// Returns domain.ErrAlreadyExists if the CIF or owning user is taken.
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanCompany(querier.QueryRow(ctx, createSQL,
		c.ID, c.CIF, c.Name, c.Address, c.Country, c.UserEmail,
	))
	if err != nil {
		return nil, postgres.MapError(err, "company", c.ID.String())
	}
	return created, nil
}

// Update persists company profile fields (the owning user never changes).
// Returns domain.ErrNotFound if the company does not exist.
func (r *Repo) Update(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanCompany(querier.QueryRow(ctx, updateSQL,
		c.ID, c.CIF, c.Name, c.Address, c.Country,
	))
	if err != nil {
		return nil, postgres.MapError(err, "company", c.ID.String())
	}
	return updated, nil
}

// Delete removes a company. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "company", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("company %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(&c.ID, &c.CIF, &c.Name, &c.Address, &c.Country, &c.UserEmail)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
