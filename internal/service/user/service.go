// Package user implements account administration and profile management.
// Listing, searching and enable/disable are admin operations; the role check
// lives at the transport boundary.
package user

import (
	"context"
	"log/slog"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	ListByEnabled(ctx context.Context, enabled bool) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, email, name, lastName string) (*domain.User, error)
	SetEnabled(ctx context.Context, email string, enabled bool) error
}

// Service implements user operations.
type Service struct {
	log   *slog.Logger
	users userRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
	}
}
