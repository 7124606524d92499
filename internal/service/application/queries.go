package application

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Get returns an application by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Application, error) {
	app, err := s.applications.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("application.Get: %w", err)
	}
	return app, nil
}

// ListMine returns all applications of the calling user, newest first.
func (s *Service) ListMine(ctx context.Context) ([]*domain.Application, error) {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	apps, err := s.applications.ListByUser(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("application.ListMine: %w", err)
	}
	return apps, nil
}

// ListByVacancy returns all applications submitted to a vacancy in
// submission order. The caller's right to see them is checked at the
// transport boundary.
func (s *Service) ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]*domain.Application, error) {
	apps, err := s.applications.ListByVacancy(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("application.ListByVacancy: %w", err)
	}
	return apps, nil
}
