package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Cancel withdraws the calling user's own application. Only the applicant may
// cancel, and never an adjudicated one. The row is hard-deleted, so the user
// can apply to the same vacancy again later.
func (s *Service) Cancel(ctx context.Context, applicationID uuid.UUID) error {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		app, err := s.applications.GetByIDForUpdate(ctx, applicationID)
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if app.UserEmail != userEmail {
			return domain.ErrForbidden
		}
		if app.Status == domain.ApplicationStatusAdjudicated {
			return domain.NewConflictError("cannot cancel an adjudicated application")
		}

		if err := s.applications.Delete(ctx, app.ID); err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("application.Cancel: %w", err)
	}

	s.log.InfoContext(ctx, "application cancelled",
		slog.String("application_id", applicationID.String()))

	return nil
}

// DeleteByVacancy removes every application of a vacancy. Cascade-only: it is
// called by the vacancy lifecycle, never exposed over the API.
func (s *Service) DeleteByVacancy(ctx context.Context, vacancyID uuid.UUID) (int, error) {
	deleted, err := s.applications.DeleteByVacancy(ctx, vacancyID)
	if err != nil {
		return 0, fmt.Errorf("application.DeleteByVacancy: %w", err)
	}
	return deleted, nil
}
