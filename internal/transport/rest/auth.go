package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*domain.User, error)
	RegisterCompany(ctx context.Context, input auth.RegisterCompanyInput) (*domain.Company, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Me(ctx context.Context) (*domain.User, error)
	MyCompany(ctx context.Context) (*domain.Company, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Password string `json:"password"`
}

type registerCompanyRequest struct {
	registerRequest
	CIF     string  `json:"cif"`
	Company string  `json:"company"`
	Address *string `json:"address,omitempty"`
	Country *string `json:"country,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	LastName     string `json:"lastName"`
	Enabled      bool   `json:"enabled"`
	Role         string `json:"role"`
	RegisteredAt string `json:"registeredAt"`
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), auth.RegisterInput{
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

// RegisterCompany handles POST /auth/register-company.
func (h *AuthHandler) RegisterCompany(w http.ResponseWriter, r *http.Request) {
	var req registerCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	company, err := h.svc.RegisterCompany(r.Context(), auth.RegisterCompanyInput{
		RegisterInput: auth.RegisterInput{
			Email:    req.Email,
			Name:     req.Name,
			LastName: req.LastName,
			Password: req.Password,
		},
		CIF:     req.CIF,
		Company: req.Company,
		Address: req.Address,
		Country: req.Country,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCompanyResponse(company))
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		User:        toUserResponse(result.User),
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.Me(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(user))
}

// MyCompany handles GET /auth/me/company.
func (h *AuthHandler) MyCompany(w http.ResponseWriter, r *http.Request) {
	company, err := h.svc.MyCompany(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(company))
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Email:        u.Email,
		Name:         u.Name,
		LastName:     u.LastName,
		Enabled:      u.Enabled,
		Role:         u.Role.String(),
		RegisteredAt: u.RegisteredAt.Format(time.RFC3339),
	}
}
