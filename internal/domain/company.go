package domain

import "github.com/google/uuid"

// Company is a hiring organization. Exactly one user account (role company)
// owns a company profile; the link is the user's email.
type Company struct {
	ID        uuid.UUID
	CIF       string
	Name      string
	Address   *string
	Country   *string
	UserEmail string
}
