// Package vacancy implements the Vacancy repository using PostgreSQL.
// Fixed statements use raw SQL; the search query is built dynamically with
// squirrel because every filter field is optional.
package vacancy

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Repo provides vacancy persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vacancy repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vacancyColumns = `
    v.id, v.title, v.description, v.posted_at, v.salary, v.status,
    v.featured, v.image, v.details, v.category_id, v.company_id`

const getByIDSQL = `
SELECT` + vacancyColumns + `
FROM vacancies v
WHERE v.id = $1`

const createSQL = `
INSERT INTO vacancies (id, title, description, posted_at, salary, status, featured, image, details, category_id, company_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, title, description, posted_at, salary, status, featured, image, details, category_id, company_id`

const updateSQL = `
UPDATE vacancies
SET title = $2, description = $3, posted_at = $4, salary = $5, status = $6,
    featured = $7, image = $8, details = $9, category_id = $10
WHERE id = $1
RETURNING id, title, description, posted_at, salary, status, featured, image, details, category_id, company_id`

const updateStatusSQL = `
UPDATE vacancies SET status = $2 WHERE id = $1`

const countByCompanySQL = `
SELECT count(*) FROM vacancies WHERE company_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a vacancy by primary key.
// Returns domain.ErrNotFound if the vacancy does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	v, err := scanVacancy(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "vacancy", id.String())
	}
	return v, nil
}

// List returns vacancies matching the filter, newest first.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.VacancyFilter) ([]*domain.Vacancy, error) {
	normalizeFilter(&filter)

	builder := psql.
		Select("v.id", "v.title", "v.description", "v.posted_at", "v.salary",
			"v.status", "v.featured", "v.image", "v.details", "v.category_id", "v.company_id").
		From("vacancies v").
		OrderBy("v.posted_at DESC", "v.id").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Title != nil && *filter.Title != "" {
		builder = builder.Where(sq.ILike{"v.title": "%" + *filter.Title + "%"})
	}
	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"v.category_id": *filter.CategoryID})
	}
	if filter.CompanyID != nil {
		builder = builder.Where(sq.Eq{"v.company_id": *filter.CompanyID})
	}
	if filter.CompanyName != nil && *filter.CompanyName != "" {
		builder = builder.
			Join("companies c ON c.id = v.company_id").
			Where(sq.ILike{"c.name": "%" + *filter.CompanyName + "%"})
	}
	if filter.MinSalary != nil {
		builder = builder.Where(sq.GtOrEq{"v.salary": *filter.MinSalary})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"v.status": string(*filter.Status)})
	}
	if filter.Featured != nil {
		builder = builder.Where(sq.Eq{"v.featured": *filter.Featured})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build vacancy list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list vacancies: %w", err)
	}
	defer rows.Close()

	return scanVacancies(rows)
}

// CountByCompany returns the number of vacancies a company has posted,
// cancelled ones included.
func (r *Repo) CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int
	if err := querier.QueryRow(ctx, countByCompanySQL, companyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count vacancies by company: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new vacancy and returns the persisted row.
func (r *Repo) Create(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanVacancy(querier.QueryRow(ctx, createSQL,
		v.ID, v.Title, v.Description, v.PostedAt, v.Salary, string(v.Status),
		v.Featured, v.Image, v.Details, v.CategoryID, v.CompanyID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "vacancy", v.ID.String())
	}
	return created, nil
}

// Update persists every mutable field of a vacancy (company ownership never
// changes). Returns domain.ErrNotFound if the vacancy does not exist.
func (r *Repo) Update(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanVacancy(querier.QueryRow(ctx, updateSQL,
		v.ID, v.Title, v.Description, v.PostedAt, v.Salary, string(v.Status),
		v.Featured, v.Image, v.Details, v.CategoryID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "vacancy", v.ID.String())
	}
	return updated, nil
}

// UpdateStatus sets only the lifecycle status of a vacancy.
// Returns domain.ErrNotFound if the vacancy does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VacancyStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStatusSQL, id, string(status))
	if err != nil {
		return postgres.MapError(err, "vacancy", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("vacancy %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanVacancy(row pgx.Row) (*domain.Vacancy, error) {
	var (
		v      domain.Vacancy
		status string
	)
	err := row.Scan(
		&v.ID, &v.Title, &v.Description, &v.PostedAt, &v.Salary, &status,
		&v.Featured, &v.Image, &v.Details, &v.CategoryID, &v.CompanyID,
	)
	if err != nil {
		return nil, err
	}
	v.Status = domain.VacancyStatus(status)
	return &v, nil
}

func scanVacancies(rows pgx.Rows) ([]*domain.Vacancy, error) {
	vacancies := make([]*domain.Vacancy, 0)
	for rows.Next() {
		v, err := scanVacancy(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vacancy: %w", err)
		}
		vacancies = append(vacancies, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vacancies: %w", err)
	}
	return vacancies, nil
}
