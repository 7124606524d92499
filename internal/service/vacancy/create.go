package vacancy

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Create posts a new vacancy for the calling company user. The vacancy starts
// in status CREATED with today's date. A company that reached the configured
// posting limit gets a conflict.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Vacancy, error) {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	company, err := s.companies.GetByUserEmail(ctx, userEmail)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Create get company: %w", err)
	}

	count, err := s.vacancies.CountByCompany(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Create count: %w", err)
	}
	if s.cfg.MaxVacanciesPerCompany > 0 && count >= s.cfg.MaxVacanciesPerCompany {
		return nil, domain.NewConflictError("vacancy limit reached for company")
	}

	created, err := s.vacancies.Create(ctx, &domain.Vacancy{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		PostedAt:    time.Now().UTC(),
		Salary:      input.Salary,
		Status:      domain.VacancyStatusCreated,
		Featured:    input.Featured,
		Image:       input.Image,
		Details:     input.Details,
		CategoryID:  input.CategoryID,
		CompanyID:   company.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("vacancy.Create: %w", err)
	}

	s.log.InfoContext(ctx, "vacancy created",
		slog.String("vacancy_id", created.ID.String()),
		slog.String("company_id", company.ID.String()))

	return created, nil
}
