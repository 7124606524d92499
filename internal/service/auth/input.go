package auth

import (
	"strings"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

const minPasswordLen = 6

func validateEmail(email string, errs []domain.FieldError) []domain.FieldError {
	switch {
	case email == "":
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 254:
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	case !strings.Contains(email, "@"):
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
	}
	return errs
}

func validatePassword(password string, errs []domain.FieldError) []domain.FieldError {
	switch {
	case password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(password) < minPasswordLen:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(password) > 72: // bcrypt input limit
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}
	return errs
}

// RegisterInput holds parameters for registering a client account.
type RegisterInput struct {
	Email    string
	Name     string
	LastName string
	Password string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(i.Email, errs)
	errs = validatePassword(i.Password, errs)

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(i.Name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	} else if len(i.LastName) > 100 {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterCompanyInput holds parameters for registering a company account:
// the user credentials plus the company profile.
type RegisterCompanyInput struct {
	RegisterInput
	CIF     string
	Company string
	Address *string
	Country *string
}

// Validate validates the company register input.
func (i RegisterCompanyInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(i.Email, errs)
	errs = validatePassword(i.Password, errs)

	if i.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.LastName == "" {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "required"})
	}

	if i.CIF == "" {
		errs = append(errs, domain.FieldError{Field: "cif", Message: "required"})
	} else if len(i.CIF) > 10 {
		errs = append(errs, domain.FieldError{Field: "cif", Message: "too long"})
	}

	if i.Company == "" {
		errs = append(errs, domain.FieldError{Field: "company", Message: "required"})
	} else if len(i.Company) > 100 {
		errs = append(errs, domain.FieldError{Field: "company", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
