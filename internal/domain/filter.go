package domain

import "github.com/google/uuid"

// VacancyFilter contains filtering/pagination parameters for vacancy searches.
// Every field is optional; nil means "no constraint".
type VacancyFilter struct {
	// Title performs a case-insensitive substring match on the vacancy title.
	Title *string

	// CategoryID restricts results to one category.
	CategoryID *uuid.UUID

	// CompanyID restricts results to one company (the "own vacancies" view).
	CompanyID *uuid.UUID

	// CompanyName performs a case-insensitive substring match on the owning
	// company's name.
	CompanyName *string

	// MinSalary keeps vacancies whose salary is >= the given value.
	MinSalary *float64

	// Status filters by lifecycle state.
	Status *VacancyStatus

	// Featured filters on the featured flag.
	Featured *bool

	// Limit is the maximum number of vacancies to return. Default: 50, max: 200.
	Limit int

	// Offset is the number of vacancies to skip.
	Offset int
}
