// Package vacancy implements the vacancy lifecycle: posting, updating,
// searching and cancellation. Cancellation (explicit or via a status update)
// cascade-deletes the vacancy's applications; the vacancy row itself is never
// hard-deleted.
package vacancy

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/config"
	"github.com/vacantes/jobboard-backend/internal/domain"
)

// vacancyRepo defines the vacancy repository interface needed by the service.
type vacancyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error)
	List(ctx context.Context, filter domain.VacancyFilter) ([]*domain.Vacancy, error)
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int, error)
	Create(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error)
	Update(ctx context.Context, v *domain.Vacancy) (*domain.Vacancy, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.VacancyStatus) error
}

// applicationRepo defines the application repository interface needed by the service.
type applicationRepo interface {
	ExistsByVacancyAndStatus(ctx context.Context, vacancyID uuid.UUID, status domain.ApplicationStatus) (bool, error)
	DeleteByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error)
}

// companyRepo defines the company repository interface needed by the service.
type companyRepo interface {
	GetByUserEmail(ctx context.Context, email string) (*domain.Company, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements vacancy operations.
type Service struct {
	log          *slog.Logger
	vacancies    vacancyRepo
	applications applicationRepo
	companies    companyRepo
	tx           txManager
	cfg          config.BoardConfig
}

// NewService creates a new vacancy service instance.
func NewService(
	logger *slog.Logger,
	vacancies vacancyRepo,
	applications applicationRepo,
	companies companyRepo,
	tx txManager,
	cfg config.BoardConfig,
) *Service {
	return &Service{
		log:          logger.With("service", "vacancy"),
		vacancies:    vacancies,
		applications: applications,
		companies:    companies,
		tx:           tx,
		cfg:          cfg,
	}
}
