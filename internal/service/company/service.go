// Package company implements company profile management. Reads are public;
// a profile is edited by its owning user or an administrator.
package company

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// companyRepo defines the company repository interface needed by the service.
type companyRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	GetByUserEmail(ctx context.Context, email string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements company operations.
type Service struct {
	log       *slog.Logger
	companies companyRepo
}

// NewService creates a new company service instance.
func NewService(logger *slog.Logger, companies companyRepo) *Service {
	return &Service{
		log:       logger.With("service", "company"),
		companies: companies,
	}
}
