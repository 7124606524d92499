package domain

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is persisted as a smallint, matching the legacy schema:
// 0 = submitted, 1 = adjudicated, 2 = rejected.
type ApplicationStatus int

const (
	ApplicationStatusSubmitted   ApplicationStatus = 0
	ApplicationStatusAdjudicated ApplicationStatus = 1
	ApplicationStatusRejected    ApplicationStatus = 2
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusAdjudicated, ApplicationStatusRejected:
		return true
	}
	return false
}

func (s ApplicationStatus) String() string {
	switch s {
	case ApplicationStatusSubmitted:
		return "SUBMITTED"
	case ApplicationStatusAdjudicated:
		return "ADJUDICATED"
	case ApplicationStatusRejected:
		return "REJECTED"
	}
	return "UNKNOWN"
}

// Application is a user's submission against a vacancy. At most one
// application may exist per (vacancy, user) pair, and within a vacancy at
// most one application may be adjudicated at any time.
type Application struct {
	ID          uuid.UUID
	SubmittedAt time.Time
	FileRef     string
	ResumeRef   *string
	CoverNote   *string
	Status      ApplicationStatus
	VacancyID   uuid.UUID
	UserEmail   string
}
