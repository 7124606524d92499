package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/service/company"
)

// companyService defines the minimal interface needed by CompanyHandler.
type companyService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, input company.UpdateInput) (*domain.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CompanyHandler serves company REST endpoints.
type CompanyHandler struct {
	svc companyService
	log *slog.Logger
}

// NewCompanyHandler creates a CompanyHandler.
func NewCompanyHandler(svc companyService, logger *slog.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: logger.With("handler", "company")}
}

type companyRequest struct {
	CIF     string  `json:"cif"`
	Name    string  `json:"name"`
	Address *string `json:"address,omitempty"`
	Country *string `json:"country,omitempty"`
}

type companyResponse struct {
	ID        string  `json:"id"`
	CIF       string  `json:"cif"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Country   *string `json:"country,omitempty"`
	UserEmail string  `json:"userEmail"`
}

// Get handles GET /companies/{id}.
func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}

// List handles GET /companies.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]companyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, toCompanyResponse(c))
	}
	writeJSON(w, http.StatusOK, out)
}

// Update handles PUT /companies/{id}. Owner-or-admin is enforced by the
// service.
func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.Update(r.Context(), company.UpdateInput{
		CompanyID: id,
		CIF:       req.CIF,
		Name:      req.Name,
		Address:   req.Address,
		Country:   req.Country,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toCompanyResponse(c))
}

// Delete handles DELETE /companies/{id}. Admin only.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toCompanyResponse(c *domain.Company) companyResponse {
	return companyResponse{
		ID:        c.ID.String(),
		CIF:       c.CIF,
		Name:      c.Name,
		Address:   c.Address,
		Country:   c.Country,
		UserEmail: c.UserEmail,
	}
}
