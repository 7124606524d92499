package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Register creates a client account. The email is the account's natural key;
// a taken email surfaces as ErrAlreadyExists from the repository.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		Name:         input.Name,
		LastName:     input.LastName,
		PasswordHash: hash,
		Enabled:      true,
		Role:         domain.UserRoleClient,
		RegisteredAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register create user: %w", err)
	}

	s.log.InfoContext(ctx, "client registered", slog.String("email", created.Email))

	return created, nil
}

// RegisterCompany creates a company account: the user (role company) and the
// company profile in one transaction, so a duplicate CIF rolls back the user
// row too.
func (s *Service) RegisterCompany(ctx context.Context, input RegisterCompanyInput) (*domain.Company, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.passwords.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterCompany hash password: %w", err)
	}

	var company *domain.Company
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.users.Create(ctx, &domain.User{
			Email:        input.Email,
			Name:         input.Name,
			LastName:     input.LastName,
			PasswordHash: hash,
			Enabled:      true,
			Role:         domain.UserRoleCompany,
			RegisteredAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		company, err = s.companies.Create(ctx, &domain.Company{
			ID:        uuid.New(),
			CIF:       input.CIF,
			Name:      input.Company,
			Address:   input.Address,
			Country:   input.Country,
			UserEmail: input.Email,
		})
		if err != nil {
			return fmt.Errorf("create company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.RegisterCompany: %w", err)
	}

	s.log.InfoContext(ctx, "company registered",
		slog.String("email", input.Email),
		slog.String("company_id", company.ID.String()))

	return company, nil
}
