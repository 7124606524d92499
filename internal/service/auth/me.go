package auth

import (
	"context"
	"fmt"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Me returns the account of the calling user.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}

// MyCompany returns the company profile owned by the calling user.
func (s *Service) MyCompany(ctx context.Context) (*domain.Company, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.companies.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("auth.MyCompany: %w", err)
	}
	return company, nil
}
