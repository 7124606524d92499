package ctxutil

import (
	"context"

	"github.com/vacantes/jobboard-backend/internal/domain"
)

type ctxKey string

const (
	userEmailKey ctxKey = "user_email"
	userRoleKey  ctxKey = "user_role"
	requestIDKey ctxKey = "request_id"
)

// WithUser stores the authenticated user's email and role in the context.
func WithUser(ctx context.Context, email string, role domain.UserRole) context.Context {
	ctx = context.WithValue(ctx, userEmailKey, email)
	return context.WithValue(ctx, userRoleKey, role)
}

// UserEmailFromCtx extracts the authenticated user's email from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func UserEmailFromCtx(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}

// UserRoleFromCtx extracts the authenticated user's role from the context.
func UserRoleFromCtx(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.UserRole)
	if !ok || !role.IsValid() {
		return "", false
	}
	return role, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
