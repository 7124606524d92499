package application

import (
	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// SubmitInput holds parameters for submitting an application to a vacancy.
type SubmitInput struct {
	VacancyID uuid.UUID
	FileRef   string
	ResumeRef *string
	CoverNote *string
}

// Validate validates the submit input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	if i.VacancyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vacancy_id", Message: "required"})
	}

	if i.FileRef == "" {
		errs = append(errs, domain.FieldError{Field: "file_ref", Message: "required"})
	} else if len(i.FileRef) > 250 {
		errs = append(errs, domain.FieldError{Field: "file_ref", Message: "too long"})
	}

	if i.ResumeRef != nil && len(*i.ResumeRef) > 250 {
		errs = append(errs, domain.FieldError{Field: "resume_ref", Message: "too long"})
	}

	if i.CoverNote != nil && len(*i.CoverNote) > 2000 {
		errs = append(errs, domain.FieldError{Field: "cover_note", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
