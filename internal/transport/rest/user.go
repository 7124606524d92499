package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	Get(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SearchByName(ctx context.Context, name string) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
	ListByEnabled(ctx context.Context, enabled bool) ([]*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	Activate(ctx context.Context, email string) error
	Deactivate(ctx context.Context, email string) error
}

// UserHandler serves user REST endpoints: the caller's own profile plus
// admin account management.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
}

// UpdateProfile handles PUT /users/me.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:     req.Name,
		LastName: req.LastName,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Get handles GET /users/{email}. Admin only.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// List handles GET /users. Admin only. Optional parameters narrow the
// listing: name (contains match), role, enabled.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var (
		users []*domain.User
		err   error
	)

	switch {
	case q.Get("name") != "":
		users, err = h.svc.SearchByName(r.Context(), q.Get("name"))
	case q.Get("role") != "":
		users, err = h.svc.ListByRole(r.Context(), domain.UserRole(q.Get("role")))
	case q.Get("enabled") != "":
		var enabled bool
		enabled, err = strconv.ParseBool(q.Get("enabled"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid enabled value")
			return
		}
		users, err = h.svc.ListByEnabled(r.Context(), enabled)
	default:
		users, err = h.svc.List(r.Context())
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, out)
}

// Activate handles POST /users/{email}/activate. Admin only.
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Activate(r.Context(), r.PathValue("email")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Deactivate handles POST /users/{email}/deactivate. Admin only.
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Deactivate(r.Context(), r.PathValue("email")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
