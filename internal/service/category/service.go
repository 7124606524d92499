// Package category implements the vacancy category catalog. Reads are
// public; mutations are admin operations enforced at the transport boundary.
package category

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// categoryRepo defines the category repository interface needed by the service.
type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	SearchByName(ctx context.Context, name string) ([]*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service implements category operations.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
}

// NewService creates a new category service instance.
func NewService(logger *slog.Logger, categories categoryRepo) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
	}
}
