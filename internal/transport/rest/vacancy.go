package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/service/vacancy"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// vacancyService defines the minimal interface needed by VacancyHandler.
type vacancyService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error)
	Search(ctx context.Context, filter domain.VacancyFilter) ([]*domain.Vacancy, error)
	ListOwn(ctx context.Context) ([]*domain.Vacancy, error)
	Create(ctx context.Context, input vacancy.CreateInput) (*domain.Vacancy, error)
	Update(ctx context.Context, input vacancy.UpdateInput) (*domain.Vacancy, error)
	Cancel(ctx context.Context, vacancyID uuid.UUID) (*domain.Vacancy, error)
	OwnerCompany(ctx context.Context) (*domain.Company, error)
}

// VacancyHandler serves vacancy REST endpoints.
type VacancyHandler struct {
	svc vacancyService
	log *slog.Logger
}

// NewVacancyHandler creates a VacancyHandler.
func NewVacancyHandler(svc vacancyService, logger *slog.Logger) *VacancyHandler {
	return &VacancyHandler{svc: svc, log: logger.With("handler", "vacancy")}
}

type vacancyRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Salary      float64 `json:"salary"`
	Status      string  `json:"status,omitempty"`
	Featured    bool    `json:"featured"`
	Image       string  `json:"image"`
	Details     string  `json:"details"`
	CategoryID  string  `json:"categoryId"`
}

type vacancyResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PostedAt    string  `json:"postedAt"`
	Salary      float64 `json:"salary"`
	Status      string  `json:"status"`
	Featured    bool    `json:"featured"`
	Image       string  `json:"image,omitempty"`
	Details     string  `json:"details,omitempty"`
	CategoryID  string  `json:"categoryId"`
	CompanyID   string  `json:"companyId"`
}

// Get handles GET /vacancies/{id}.
func (h *VacancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vacancy id")
		return
	}

	v, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVacancyResponse(v))
}

// Search handles GET /vacancies. All filter parameters are optional.
func (h *VacancyHandler) Search(w http.ResponseWriter, r *http.Request) {
	filter, err := parseVacancyFilter(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vacancies, err := h.svc.Search(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVacancyListResponse(vacancies))
}

// ListOwn handles GET /company/vacancies. Returns the vacancies posted by
// the caller's company.
func (h *VacancyHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	vacancies, err := h.svc.ListOwn(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVacancyListResponse(vacancies))
}

// Create handles POST /vacancies.
func (h *VacancyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)

	v, err := h.svc.Create(r.Context(), vacancy.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Featured:    req.Featured,
		Image:       req.Image,
		Details:     req.Details,
		CategoryID:  categoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVacancyResponse(v))
}

// Update handles PUT /vacancies/{id}. Only the owning company or an admin
// may edit a vacancy.
func (h *VacancyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vacancy id")
		return
	}

	if err := h.authorizeOwner(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var req vacancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	categoryID, _ := uuid.Parse(req.CategoryID)

	v, err := h.svc.Update(r.Context(), vacancy.UpdateInput{
		VacancyID:   id,
		Title:       req.Title,
		Description: req.Description,
		Salary:      req.Salary,
		Status:      domain.VacancyStatus(req.Status),
		Featured:    req.Featured,
		Image:       req.Image,
		Details:     req.Details,
		CategoryID:  categoryID,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVacancyResponse(v))
}

// Cancel handles POST /vacancies/{id}/cancel.
func (h *VacancyHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vacancy id")
		return
	}

	if err := h.authorizeOwner(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	v, err := h.svc.Cancel(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toVacancyResponse(v))
}

// authorizeOwner checks that the context user's company owns the vacancy.
// Admins bypass the ownership check.
func (h *VacancyHandler) authorizeOwner(ctx context.Context, vacancyID uuid.UUID) error {
	if role, _ := ctxutil.UserRoleFromCtx(ctx); role == domain.UserRoleAdmin {
		return nil
	}

	v, err := h.svc.Get(ctx, vacancyID)
	if err != nil {
		return err
	}

	company, err := h.svc.OwnerCompany(ctx)
	if err != nil {
		// Callers without a company profile have no claim on the vacancy.
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}

	if v.CompanyID != company.ID {
		return domain.ErrForbidden
	}
	return nil
}

func parseVacancyFilter(r *http.Request) (domain.VacancyFilter, error) {
	q := r.URL.Query()
	var filter domain.VacancyFilter

	if v := q.Get("title"); v != "" {
		filter.Title = &v
	}
	if v := q.Get("companyName"); v != "" {
		filter.CompanyName = &v
	}
	if v := q.Get("categoryId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, domain.NewValidationError("categoryId", "invalid uuid")
		}
		filter.CategoryID = &id
	}
	if v := q.Get("companyId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, domain.NewValidationError("companyId", "invalid uuid")
		}
		filter.CompanyID = &id
	}
	if v := q.Get("minSalary"); v != "" {
		salary, err := strconv.ParseFloat(v, 64)
		if err != nil || salary < 0 {
			return filter, domain.NewValidationError("minSalary", "invalid number")
		}
		filter.MinSalary = &salary
	}
	if v := q.Get("status"); v != "" {
		status := domain.VacancyStatus(v)
		if !status.IsValid() {
			return filter, domain.NewValidationError("status", "unknown status")
		}
		filter.Status = &status
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, domain.NewValidationError("featured", "invalid boolean")
		}
		filter.Featured = &featured
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return filter, domain.NewValidationError("limit", "invalid number")
		}
		filter.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return filter, domain.NewValidationError("offset", "invalid number")
		}
		filter.Offset = offset
	}

	return filter, nil
}

func toVacancyResponse(v *domain.Vacancy) vacancyResponse {
	return vacancyResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		Description: v.Description,
		PostedAt:    v.PostedAt.Format(time.RFC3339),
		Salary:      v.Salary,
		Status:      v.Status.String(),
		Featured:    v.Featured,
		Image:       v.Image,
		Details:     v.Details,
		CategoryID:  v.CategoryID.String(),
		CompanyID:   v.CompanyID.String(),
	}
}

func toVacancyListResponse(vacancies []*domain.Vacancy) []vacancyResponse {
	out := make([]vacancyResponse, 0, len(vacancies))
	for _, v := range vacancies {
		out = append(out, toVacancyResponse(v))
	}
	return out
}
