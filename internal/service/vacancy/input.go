package vacancy

import (
	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// CreateInput holds parameters for posting a new vacancy.
type CreateInput struct {
	Title       string
	Description string
	Salary      float64
	Featured    bool
	Image       string
	Details     string
	CategoryID  uuid.UUID
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if i.Salary < 0 {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "must not be negative"})
	}

	if len(i.Image) > 250 {
		errs = append(errs, domain.FieldError{Field: "image", Message: "too long"})
	}

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the full mutable state of a vacancy.
type UpdateInput struct {
	VacancyID   uuid.UUID
	Title       string
	Description string
	Salary      float64
	Status      domain.VacancyStatus
	Featured    bool
	Image       string
	Details     string
	CategoryID  uuid.UUID
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.VacancyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "vacancy_id", Message: "required"})
	}

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}

	if i.Salary < 0 {
		errs = append(errs, domain.FieldError{Field: "salary", Message: "must not be negative"})
	}

	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if i.CategoryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "category_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
