package vacancy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Update persists the full mutable state of a vacancy. A status change into
// CANCELLED cascade-deletes the vacancy's applications in the same
// transaction. Unlike Cancel, the update path carries no adjudicated-winner
// guard; that asymmetry is intentional and matches the cancellation the
// company performs through a general edit.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Vacancy, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.vacancies.GetByID(ctx, input.VacancyID)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Update get: %w", err)
	}

	next := &domain.Vacancy{
		ID:          current.ID,
		Title:       input.Title,
		Description: input.Description,
		PostedAt:    current.PostedAt,
		Salary:      input.Salary,
		Status:      input.Status,
		Featured:    input.Featured,
		Image:       input.Image,
		Details:     input.Details,
		CategoryID:  input.CategoryID,
		CompanyID:   current.CompanyID,
	}

	becomesCancelled := current.Status != domain.VacancyStatusCancelled &&
		input.Status == domain.VacancyStatusCancelled

	var updated *domain.Vacancy
	if becomesCancelled {
		var deleted int
		err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
			deleted, err = s.applications.DeleteByVacancy(ctx, current.ID)
			if err != nil {
				return fmt.Errorf("delete applications: %w", err)
			}
			updated, err = s.vacancies.Update(ctx, next)
			if err != nil {
				return fmt.Errorf("update vacancy: %w", err)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("vacancy.Update cancel cascade: %w", err)
		}

		s.log.InfoContext(ctx, "vacancy cancelled via update",
			slog.String("vacancy_id", current.ID.String()),
			slog.Int("applications_deleted", deleted))
		return updated, nil
	}

	updated, err = s.vacancies.Update(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Update: %w", err)
	}

	s.log.InfoContext(ctx, "vacancy updated",
		slog.String("vacancy_id", updated.ID.String()))

	return updated, nil
}
