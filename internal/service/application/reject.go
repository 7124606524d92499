package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Reject marks an application as rejected. Rejecting an already-rejected
// application is a conflict. Rejecting the current winner reopens the
// vacancy's selection: every application of the vacancy is reset to
// SUBMITTED and only then the target is set to REJECTED, in one transaction.
func (s *Service) Reject(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	var (
		rejected *domain.Application
		reset    int
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.applications.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if app.Status == domain.ApplicationStatusRejected {
			return domain.NewConflictError("application is already rejected")
		}

		if app.Status == domain.ApplicationStatusAdjudicated {
			reset, err = s.applications.ResetAllByVacancy(ctx, app.VacancyID)
			if err != nil {
				return fmt.Errorf("reset applications: %w", err)
			}
		}

		if err := s.applications.UpdateStatus(ctx, app.ID, domain.ApplicationStatusRejected); err != nil {
			return fmt.Errorf("set rejected status: %w", err)
		}

		app.Status = domain.ApplicationStatusRejected
		rejected = app
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("application.Reject: %w", err)
	}

	s.log.InfoContext(ctx, "application rejected",
		slog.String("application_id", rejected.ID.String()),
		slog.String("vacancy_id", rejected.VacancyID.String()),
		slog.Int("applications_reset", reset))

	return rejected, nil
}
