// Package application implements the application lifecycle: submission,
// adjudication, rejection and cancellation. Adjudication and rejection are
// the multi-row workflows; both run in a single transaction with the target
// row locked.
package application

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// applicationRepo defines the application repository interface needed by the service.
type applicationRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	GetByVacancyAndUser(ctx context.Context, vacancyID uuid.UUID, userEmail string) (*domain.Application, error)
	ListByUser(ctx context.Context, userEmail string) ([]*domain.Application, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]*domain.Application, error)
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ApplicationStatus) error
	RejectSiblings(ctx context.Context, vacancyID, excludeID uuid.UUID) (int, error)
	ResetAllByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error)
}

// vacancyRepo defines the vacancy repository interface needed by the service.
type vacancyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error)
}

// txManager defines the transaction manager interface needed by the service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements application operations.
type Service struct {
	log          *slog.Logger
	applications applicationRepo
	vacancies    vacancyRepo
	tx           txManager
}

// NewService creates a new application service instance.
func NewService(logger *slog.Logger, applications applicationRepo, vacancies vacancyRepo, tx txManager) *Service {
	return &Service{
		log:          logger.With("service", "application"),
		applications: applications,
		vacancies:    vacancies,
		tx:           tx,
	}
}
