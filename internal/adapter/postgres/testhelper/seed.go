package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role and returns the filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		Email:        "user-" + suffix + "@example.com",
		Name:         "Test",
		LastName:     "User " + suffix,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotareal",
		Enabled:      true,
		Role:         role,
		RegisteredAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (email, name, last_name, password_hash, enabled, role, registered_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.Email, user.Name, user.LastName, user.PasswordHash, user.Enabled, string(user.Role), user.RegisteredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert: %v", err)
	}

	return user
}

// SeedCompany creates a company-role user plus a company profile owned by it.
func SeedCompany(t *testing.T, pool *pgxpool.Pool) domain.Company {
	t.Helper()
	ctx := context.Background()

	owner := SeedUser(t, pool, domain.UserRoleCompany)

	suffix := uniqueSuffix()
	company := domain.Company{
		ID:        uuid.New(),
		CIF:       "B" + suffix[:7],
		Name:      "Company " + suffix,
		UserEmail: owner.Email,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO companies (id, cif, name, address, country, user_email)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		company.ID, company.CIF, company.Name, company.Address, company.Country, company.UserEmail,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany insert: %v", err)
	}

	return company
}

// SeedCategory creates a category.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()
	ctx := context.Background()

	category := domain.Category{
		ID:   uuid.New(),
		Name: "Category " + uniqueSuffix(),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, description) VALUES ($1, $2, $3)`,
		category.ID, category.Name, category.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return category
}

// SeedVacancy creates an open vacancy for the given company and category.
func SeedVacancy(t *testing.T, pool *pgxpool.Pool, companyID, categoryID uuid.UUID) domain.Vacancy {
	t.Helper()
	ctx := context.Background()

	vacancy := domain.Vacancy{
		ID:          uuid.New(),
		Title:       "Vacancy " + uniqueSuffix(),
		Description: "test vacancy",
		PostedAt:    time.Now().UTC().Truncate(24 * time.Hour),
		Salary:      30000,
		Status:      domain.VacancyStatusCreated,
		Image:       "vacancy.png",
		Details:     "details",
		CategoryID:  categoryID,
		CompanyID:   companyID,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO vacancies (id, title, description, posted_at, salary, status, featured, image, details, category_id, company_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		vacancy.ID, vacancy.Title, vacancy.Description, vacancy.PostedAt, vacancy.Salary,
		string(vacancy.Status), vacancy.Featured, vacancy.Image, vacancy.Details,
		vacancy.CategoryID, vacancy.CompanyID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVacancy insert: %v", err)
	}

	return vacancy
}

// SeedApplication creates an application for the vacancy by the given user.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, vacancyID uuid.UUID, userEmail string, status domain.ApplicationStatus) domain.Application {
	t.Helper()
	ctx := context.Background()

	app := domain.Application{
		ID:          uuid.New(),
		SubmittedAt: time.Now().UTC().Truncate(24 * time.Hour),
		FileRef:     "letter-" + uniqueSuffix() + ".pdf",
		Status:      status,
		VacancyID:   vacancyID,
		UserEmail:   userEmail,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO applications (id, submitted_at, file_ref, resume_ref, cover_note, status, vacancy_id, user_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, app.SubmittedAt, app.FileRef, app.ResumeRef, app.CoverNote,
		int(app.Status), app.VacancyID, app.UserEmail,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication insert: %v", err)
	}

	return app
}
