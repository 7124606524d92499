// Package application implements the Application repository using PostgreSQL.
// Besides plain CRUD it carries the bulk status updates the adjudication
// workflow needs: reject-siblings and reset-all for a vacancy.
package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const applicationColumns = `
    id, submitted_at, file_ref, resume_ref, cover_note, status, vacancy_id, user_email`

const getByIDSQL = `
SELECT` + applicationColumns + `
FROM applications
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const getByVacancyAndUserSQL = `
SELECT` + applicationColumns + `
FROM applications
WHERE vacancy_id = $1 AND user_email = $2`

const listByUserSQL = `
SELECT` + applicationColumns + `
FROM applications
WHERE user_email = $1
ORDER BY submitted_at DESC, id`

const listByVacancySQL = `
SELECT` + applicationColumns + `
FROM applications
WHERE vacancy_id = $1
ORDER BY submitted_at, id`

const existsByVacancyAndStatusSQL = `
SELECT EXISTS (
    SELECT 1 FROM applications WHERE vacancy_id = $1 AND status = $2
)`

const createSQL = `
INSERT INTO applications (id, submitted_at, file_ref, resume_ref, cover_note, status, vacancy_id, user_email)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + applicationColumns

const updateStatusSQL = `
UPDATE applications SET status = $2 WHERE id = $1`

const rejectSiblingsSQL = `
UPDATE applications
SET status = $3
WHERE vacancy_id = $1 AND id <> $2`

const resetAllByVacancySQL = `
UPDATE applications SET status = $2 WHERE vacancy_id = $1`

const deleteSQL = `
DELETE FROM applications WHERE id = $1`

const deleteByVacancySQL = `
DELETE FROM applications WHERE vacancy_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an application by primary key.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	app, err := scanApplication(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "application", id.String())
	}
	return app, nil
}

// GetByIDForUpdate returns an application by primary key, locking the row
// (SELECT ... FOR UPDATE). Must be called inside a transaction; concurrent
// adjudications of the same application serialize on this lock.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	app, err := scanApplication(querier.QueryRow(ctx, getByIDForUpdateSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "application", id.String())
	}
	return app, nil
}

// GetByVacancyAndUser returns the single application a user holds against a
// vacancy. Returns domain.ErrNotFound if the pair has no application.
func (r *Repo) GetByVacancyAndUser(ctx context.Context, vacancyID uuid.UUID, userEmail string) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	app, err := scanApplication(querier.QueryRow(ctx, getByVacancyAndUserSQL, vacancyID, userEmail))
	if err != nil {
		return nil, postgres.MapError(err, "application", vacancyID.String())
	}
	return app, nil
}

// ListByUser returns all applications submitted by a user, newest first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userEmail string) ([]*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByUserSQL, userEmail)
	if err != nil {
		return nil, fmt.Errorf("list applications by user: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// ListByVacancy returns all applications for a vacancy in submission order.
// Returns an empty slice (not nil) when the vacancy has none.
func (r *Repo) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByVacancySQL, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("list applications by vacancy: %w", err)
	}
	defer rows.Close()

	return scanApplications(rows)
}

// ExistsByVacancyAndStatus reports whether any application of the vacancy is
// in the given status. Used as the adjudicated-winner guard on vacancy
// cancellation.
func (r *Repo) ExistsByVacancyAndStatus(ctx context.Context, vacancyID uuid.UUID, status domain.ApplicationStatus) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsByVacancyAndStatusSQL, vacancyID, int(status)).Scan(&exists); err != nil {
		return false, fmt.Errorf("exists application by vacancy and status: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application and returns the persisted row.
// Returns domain.ErrAlreadyExists when the (vacancy, user) pair already holds
// an application (UNIQUE constraint).
func (r *Repo) Create(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanApplication(querier.QueryRow(ctx, createSQL,
		app.ID, app.SubmittedAt, app.FileRef, app.ResumeRef, app.CoverNote,
		int(app.Status), app.VacancyID, app.UserEmail,
	))
	if err != nil {
		return nil, postgres.MapError(err, "application", app.ID.String())
	}
	return created, nil
}

// UpdateStatus sets the status of a single application.
// Returns domain.ErrNotFound if the application does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, updateStatusSQL, id, int(status))
	if err != nil {
		return postgres.MapError(err, "application", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RejectSiblings sets every application of the vacancy except the given one
// to REJECTED. Returns the number of rows touched.
func (r *Repo) RejectSiblings(ctx context.Context, vacancyID, excludeID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, rejectSiblingsSQL, vacancyID, excludeID, int(domain.ApplicationStatusRejected))
	if err != nil {
		return 0, fmt.Errorf("reject sibling applications: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ResetAllByVacancy sets every application of the vacancy back to SUBMITTED.
// Used when the current winner is rejected. Returns the number of rows touched.
func (r *Repo) ResetAllByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, resetAllByVacancySQL, vacancyID, int(domain.ApplicationStatusSubmitted))
	if err != nil {
		return 0, fmt.Errorf("reset applications by vacancy: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes an application. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "application", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByVacancy removes every application of a vacancy. Idempotent: a
// vacancy without applications is not an error. Returns the number deleted.
func (r *Repo) DeleteByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteByVacancySQL, vacancyID)
	if err != nil {
		return 0, fmt.Errorf("delete applications by vacancy: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var (
		app    domain.Application
		status int
	)
	err := row.Scan(
		&app.ID, &app.SubmittedAt, &app.FileRef, &app.ResumeRef,
		&app.CoverNote, &status, &app.VacancyID, &app.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	app.Status = domain.ApplicationStatus(status)
	return &app, nil
}

func scanApplications(rows pgx.Rows) ([]*domain.Application, error) {
	apps := make([]*domain.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return apps, nil
}
