package vacancy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Cancel closes a vacancy. A vacancy whose selection already produced a
// winner cannot be cancelled. Otherwise every application of the vacancy is
// deleted and the status set to CANCELLED in one transaction; the vacancy row
// stays for history.
func (s *Service) Cancel(ctx context.Context, vacancyID uuid.UUID) (*domain.Vacancy, error) {
	vacancy, err := s.vacancies.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Cancel get: %w", err)
	}

	hasWinner, err := s.applications.ExistsByVacancyAndStatus(ctx, vacancyID, domain.ApplicationStatusAdjudicated)
	if err != nil {
		return nil, fmt.Errorf("vacancy.Cancel check winner: %w", err)
	}
	if hasWinner {
		return nil, domain.NewConflictError("vacancy has an adjudicated application")
	}

	var deleted int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		deleted, err = s.applications.DeleteByVacancy(ctx, vacancyID)
		if err != nil {
			return fmt.Errorf("delete applications: %w", err)
		}
		if err := s.vacancies.UpdateStatus(ctx, vacancyID, domain.VacancyStatusCancelled); err != nil {
			return fmt.Errorf("set cancelled status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vacancy.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "vacancy cancelled",
		slog.String("vacancy_id", vacancyID.String()),
		slog.Int("applications_deleted", deleted))

	vacancy.Status = domain.VacancyStatusCancelled
	return vacancy, nil
}
