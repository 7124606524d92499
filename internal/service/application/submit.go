package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// Submit creates a new application for the calling user against a vacancy.
// The vacancy must exist and still be open (status CREATED). A user may hold
// at most one application per vacancy; a duplicate is a conflict, backed by
// the UNIQUE (vacancy_id, user_email) constraint against races.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Application, error) {
	userEmail, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	vacancy, err := s.vacancies.GetByID(ctx, input.VacancyID)
	if err != nil {
		return nil, fmt.Errorf("application.Submit get vacancy: %w", err)
	}
	if !vacancy.IsOpen() {
		return nil, domain.NewConflictError("vacancy is not open for applications")
	}

	_, err = s.applications.GetByVacancyAndUser(ctx, input.VacancyID, userEmail)
	switch {
	case err == nil:
		return nil, domain.NewConflictError("application already submitted for this vacancy")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("application.Submit check duplicate: %w", err)
	}

	created, err := s.applications.Create(ctx, &domain.Application{
		ID:          uuid.New(),
		SubmittedAt: time.Now().UTC(),
		FileRef:     input.FileRef,
		ResumeRef:   input.ResumeRef,
		CoverNote:   input.CoverNote,
		Status:      domain.ApplicationStatusSubmitted,
		VacancyID:   input.VacancyID,
		UserEmail:   userEmail,
	})
	if err != nil {
		return nil, fmt.Errorf("application.Submit create: %w", err)
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.String("application_id", created.ID.String()),
		slog.String("vacancy_id", input.VacancyID.String()))

	return created, nil
}
