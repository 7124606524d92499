package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Get returns a user by email.
func (s *Service) Get(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("user.Get: %w", err)
	}
	return user, nil
}

// List returns every account.
func (s *Service) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}
	return users, nil
}

// SearchByName returns accounts whose name or last name contains the given
// text, case-insensitively.
func (s *Service) SearchByName(ctx context.Context, name string) ([]*domain.User, error) {
	if name == "" {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "name", Message: "required"},
		}}
	}

	users, err := s.users.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("user.SearchByName: %w", err)
	}
	return users, nil
}

// ListByRole returns accounts with the given role.
func (s *Service) ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error) {
	if !role.IsValid() {
		return nil, &domain.ValidationError{Errors: []domain.FieldError{
			{Field: "role", Message: "unknown role"},
		}}
	}

	users, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("user.ListByRole: %w", err)
	}
	return users, nil
}

// ListByEnabled returns enabled or disabled accounts.
func (s *Service) ListByEnabled(ctx context.Context, enabled bool) ([]*domain.User, error) {
	users, err := s.users.ListByEnabled(ctx, enabled)
	if err != nil {
		return nil, fmt.Errorf("user.ListByEnabled: %w", err)
	}
	return users, nil
}

// Activate re-enables an account.
func (s *Service) Activate(ctx context.Context, email string) error {
	if err := s.users.SetEnabled(ctx, email, true); err != nil {
		return fmt.Errorf("user.Activate: %w", err)
	}
	s.log.InfoContext(ctx, "user activated", slog.String("email", email))
	return nil
}

// Deactivate disables an account; the user keeps their data but cannot log in.
func (s *Service) Deactivate(ctx context.Context, email string) error {
	if err := s.users.SetEnabled(ctx, email, false); err != nil {
		return fmt.Errorf("user.Deactivate: %w", err)
	}
	s.log.InfoContext(ctx, "user deactivated", slog.String("email", email))
	return nil
}
