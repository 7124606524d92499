package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/service/application"
	"github.com/vacantes/jobboard-backend/pkg/ctxutil"
)

// applicationService defines the minimal interface needed by ApplicationHandler.
type applicationService interface {
	Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Application, error)
	ListMine(ctx context.Context) ([]*domain.Application, error)
	ListByVacancy(ctx context.Context, vacancyID uuid.UUID) ([]*domain.Application, error)
	Adjudicate(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	Reject(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	Cancel(ctx context.Context, applicationID uuid.UUID) error
}

// vacancyOwnership resolves which company owns a vacancy. Used to keep
// adjudication endpoints scoped to the vacancy's own company.
type vacancyOwnership interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Vacancy, error)
	OwnerCompany(ctx context.Context) (*domain.Company, error)
}

// ApplicationHandler serves application REST endpoints.
type ApplicationHandler struct {
	svc       applicationService
	vacancies vacancyOwnership
	log       *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, vacancies vacancyOwnership, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		svc:       svc,
		vacancies: vacancies,
		log:       logger.With("handler", "application"),
	}
}

type submitRequest struct {
	VacancyID string  `json:"vacancyId"`
	FileRef   string  `json:"fileRef"`
	ResumeRef *string `json:"resumeRef,omitempty"`
	CoverNote *string `json:"coverNote,omitempty"`
}

type applicationResponse struct {
	ID          string  `json:"id"`
	SubmittedAt string  `json:"submittedAt"`
	FileRef     string  `json:"fileRef"`
	ResumeRef   *string `json:"resumeRef,omitempty"`
	CoverNote   *string `json:"coverNote,omitempty"`
	Status      string  `json:"status"`
	VacancyID   string  `json:"vacancyId"`
	UserEmail   string  `json:"userEmail"`
}

// Submit handles POST /applications.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	vacancyID, _ := uuid.Parse(req.VacancyID)

	app, err := h.svc.Submit(r.Context(), application.SubmitInput{
		VacancyID: vacancyID,
		FileRef:   req.FileRef,
		ResumeRef: req.ResumeRef,
		CoverNote: req.CoverNote,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// Get handles GET /applications/{id}. Visible to the applicant, the
// vacancy's owning company, and admins.
func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.authorizeView(r.Context(), app); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(app))
}

// ListMine handles GET /applications/mine.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListMine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationListResponse(apps))
}

// ListByVacancy handles GET /vacancies/{id}/applications. Only the owning
// company or an admin may see a vacancy's applications.
func (h *ApplicationHandler) ListByVacancy(w http.ResponseWriter, r *http.Request) {
	vacancyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid vacancy id")
		return
	}

	if err := h.authorizeVacancyOwner(r.Context(), vacancyID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	apps, err := h.svc.ListByVacancy(r.Context(), vacancyID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationListResponse(apps))
}

// Adjudicate handles POST /applications/{id}/adjudicate.
func (h *ApplicationHandler) Adjudicate(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Adjudicate)
}

// Reject handles POST /applications/{id}/reject.
func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.svc.Reject)
}

// decide runs an adjudication decision after verifying that the caller's
// company owns the target application's vacancy.
func (h *ApplicationHandler) decide(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Application, error)) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	app, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if err := h.authorizeVacancyOwner(r.Context(), app.VacancyID); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	decided, err := op(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toApplicationResponse(decided))
}

// Cancel handles DELETE /applications/{id}. Applicant ownership is
// enforced by the service.
func (h *ApplicationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid application id")
		return
	}

	if err := h.svc.Cancel(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ApplicationHandler) authorizeView(ctx context.Context, app *domain.Application) error {
	if email, ok := ctxutil.UserEmailFromCtx(ctx); ok && email == app.UserEmail {
		return nil
	}
	return h.authorizeVacancyOwner(ctx, app.VacancyID)
}

func (h *ApplicationHandler) authorizeVacancyOwner(ctx context.Context, vacancyID uuid.UUID) error {
	if role, _ := ctxutil.UserRoleFromCtx(ctx); role == domain.UserRoleAdmin {
		return nil
	}

	v, err := h.vacancies.Get(ctx, vacancyID)
	if err != nil {
		return err
	}

	company, err := h.vacancies.OwnerCompany(ctx)
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

func toApplicationResponse(app *domain.Application) applicationResponse {
	return applicationResponse{
		ID:          app.ID.String(),
		SubmittedAt: app.SubmittedAt.Format(time.RFC3339),
		FileRef:     app.FileRef,
		ResumeRef:   app.ResumeRef,
		CoverNote:   app.CoverNote,
		Status:      app.Status.String(),
		VacancyID:   app.VacancyID.String(),
		UserEmail:   app.UserEmail,
	}
}

func toApplicationListResponse(apps []*domain.Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationResponse(app))
	}
	return out
}
