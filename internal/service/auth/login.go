package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

// Login authenticates a user with email + password and issues an access
// token. Unknown email and wrong password are indistinguishable to the
// caller; a disabled account is forbidden.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.TrimSpace(strings.ToLower(input.Email))

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	ok, err := s.passwords.Compare(user.PasswordHash, input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth.Login compare password: %w", err)
	}
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !user.Enabled {
		return nil, fmt.Errorf("account disabled: %w", domain.ErrForbidden)
	}

	token, err := s.jwt.GenerateAccessToken(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("auth.Login generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("email", user.Email))

	return &AuthResult{AccessToken: token, User: user}, nil
}
