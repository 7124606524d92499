package company

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// UpdateInput holds the mutable fields of a company profile.
type UpdateInput struct {
	CompanyID uuid.UUID
	CIF       string
	Name      string
	Address   *string
	Country   *string
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}

	if i.CIF == "" {
		errs = append(errs, domain.FieldError{Field: "cif", Message: "required"})
	} else if len(i.CIF) > 10 {
		errs = append(errs, domain.FieldError{Field: "cif", Message: "too long"})
	}

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Get returns a company by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("company.Get: %w", err)
	}
	return company, nil
}

// GetByUser returns the company profile owned by the given user account.
func (s *Service) GetByUser(ctx context.Context, email string) (*domain.Company, error) {
	company, err := s.companies.GetByUserEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("company.GetByUser: %w", err)
	}
	return company, nil
}

// List returns all companies.
func (s *Service) List(ctx context.Context) ([]*domain.Company, error) {
	companies, err := s.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("company.List: %w", err)
	}
	return companies, nil
}

// Update persists company profile fields. Only the owning user or an admin
// may edit a profile; the owning account never changes.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Company, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.companies.GetByID(ctx, input.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("company.Update get: %w", err)
	}

	role, _ := ctxutil.UserRoleFromCtx(ctx)
	if role != domain.UserRoleAdmin && current.UserEmail != email {
		return nil, domain.ErrForbidden
	}

	updated, err := s.companies.Update(ctx, &domain.Company{
		ID:        current.ID,
		CIF:       input.CIF,
		Name:      input.Name,
		Address:   input.Address,
		Country:   input.Country,
		UserEmail: current.UserEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("company.Update: %w", err)
	}

	s.log.InfoContext(ctx, "company updated", slog.String("company_id", updated.ID.String()))

	return updated, nil
}

// Delete removes a company profile. Admin only; the role check lives at the
// transport boundary.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.companies.Delete(ctx, id); err != nil {
		return fmt.Errorf("company.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted", slog.String("company_id", id.String()))
	return nil
}
