package vacancy

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Get returns a vacancy by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error) {
	vacancy, err := s.vacancies.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Get: %w", err)
	}
	return vacancy, nil
}

// Search returns vacancies matching the filter, newest first. The page size
// is capped by the configured search result limit.
func (s *Service) Search(ctx context.Context, filter domain.VacancyFilter) ([]*domain.Vacancy, error) {
	if s.cfg.SearchResultLimit > 0 &&
		(filter.Limit <= 0 || filter.Limit > s.cfg.SearchResultLimit) {
		filter.Limit = s.cfg.SearchResultLimit
	}

	vacancies, err := s.vacancies.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Search: %w", err)
	}
	return vacancies, nil
}

// ListOwn returns every vacancy of the calling company user, cancelled ones
// included.
func (s *Service) ListOwn(ctx context.Context) ([]*domain.Vacancy, error) {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.companies.GetByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("vacancy.ListOwn get company: %w", err)
	}

	vacancies, err := s.vacancies.List(ctx, domain.VacancyFilter{CompanyID: &company.ID})
	if err != nil {
		return nil, fmt.Errorf("vacancy.ListOwn: %w", err)
	}
	return vacancies, nil
}

// OwnerCompany resolves the company profile of the calling user. The
// transport layer uses it for ownership checks on vacancy mutations.
func (s *Service) OwnerCompany(ctx context.Context) (*domain.Company, error) {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.companies.GetByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("vacancy.OwnerCompany: %w", err)
	}
	return company, nil
}
