package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// UpdateProfileInput holds the fields a user may change on their own account.
type UpdateProfileInput struct {
	Name     string
	LastName string
}

// Validate validates the profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	} else if len(i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProfile changes the calling user's own name fields. Email and role
// never change here.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.users.UpdateProfile(ctx, email, input.Name, input.LastName)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("email", email))

	return updated, nil
}
