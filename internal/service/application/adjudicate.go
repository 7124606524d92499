package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Adjudicate marks an application as the winner of its vacancy and rejects
// every sibling application, all in one transaction. The target row is locked
// first, so two concurrent adjudications of the same vacancy serialize and
// the loser observes the already-adjudicated state.
func (s *Service) Adjudicate(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	var (
		winner   *domain.Application
		rejected int
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.applications.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if app.Status == domain.ApplicationStatusAdjudicated {
			return domain.NewConflictError("application is already adjudicated")
		}

		if err := s.applications.UpdateStatus(ctx, app.ID, domain.ApplicationStatusAdjudicated); err != nil {
			return fmt.Errorf("set winner status: %w", err)
		}

		rejected, err = s.applications.RejectSiblings(ctx, app.VacancyID, app.ID)
		if err != nil {
			return fmt.Errorf("reject siblings: %w", err)
		}

		app.Status = domain.ApplicationStatusAdjudicated
		winner = app
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("application.Adjudicate: %w", err)
	}

	s.log.InfoContext(ctx, "application adjudicated",
		slog.String("application_id", winner.ID.String()),
		slog.String("vacancy_id", winner.VacancyID.String()),
		slog.Int("siblings_rejected", rejected))

	return winner, nil
}
