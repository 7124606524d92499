package domain

import (
	"time"

	"github.com/google/uuid"
)

// VacancyStatus represents the lifecycle state of a vacancy.
type VacancyStatus string

const (
	// VacancyStatusCreated means the vacancy is open for applications.
	VacancyStatusCreated VacancyStatus = "CREATED"
	// VacancyStatusFilled is set by the company once the position is taken.
	// It is never set automatically when an application is adjudicated.
	VacancyStatusFilled VacancyStatus = "FILLED"
	// VacancyStatusCancelled is terminal. Cancelled vacancies are kept for
	// referential history and never hard-deleted.
	VacancyStatusCancelled VacancyStatus = "CANCELLED"
)

func (s VacancyStatus) String() string { return string(s) }

func (s VacancyStatus) IsValid() bool {
	switch s {
	case VacancyStatusCreated, VacancyStatusFilled, VacancyStatusCancelled:
		return true
	}
	return false
}

// Vacancy is a job opening posted by a company.
type Vacancy struct {
	ID          uuid.UUID
	Title       string
	Description string
	PostedAt    time.Time
	Salary      float64
	Status      VacancyStatus
	Featured    bool
	Image       string
	Details     string
	CategoryID  uuid.UUID
	CompanyID   uuid.UUID
}

// IsOpen reports whether the vacancy accepts new applications.
func (v *Vacancy) IsOpen() bool {
	return v.Status == VacancyStatusCreated
}
