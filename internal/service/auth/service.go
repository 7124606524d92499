// Package auth implements registration, login and the current-user lookup.
// Clients and companies register through different operations: a company
// registration creates the user account and the company profile atomically.
package auth

import (
	"context"
	"log/slog"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// companyRepo defines the company repository interface needed by the auth service.
type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByUserEmail(ctx context.Context, email string) (*domain.Company, error)
}

// txManager defines the transaction manager interface needed by the auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by the auth service.
type jwtManager interface {
	GenerateAccessToken(email string, role domain.UserRole) (string, error)
}

// passwordHasher defines the password hashing interface needed by the auth service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	companies companyRepo
	tx        txManager
	jwt       jwtManager
	passwords passwordHasher
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	companies companyRepo,
	tx txManager,
	jwt jwtManager,
	passwords passwordHasher,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		companies: companies,
		tx:        tx,
		jwt:       jwt,
		passwords: passwords,
	}
}

// AuthResult is returned by Login: the signed access token plus the account.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
