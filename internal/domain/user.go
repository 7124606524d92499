package domain

import "time"

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleClient  UserRole = "client"
	UserRoleCompany UserRole = "company"
	UserRoleAdmin   UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleClient, UserRoleCompany, UserRoleAdmin:
		return true
	}
	return false
}

// User represents an account in the job board. Email is the natural key,
// inherited from the legacy schema, and doubles as the login name.
type User struct {
	Email        string
	Name         string
	LastName     string
	PasswordHash string
	Enabled      bool
	Role         UserRole
	RegisteredAt time.Time
}
