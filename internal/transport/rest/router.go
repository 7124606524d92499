package rest

import (
	"net/http"

	"github.com/vacantes/jobboard-backend/internal/domain"
	"github.com/vacantes/jobboard-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Auth        *AuthHandler
	Vacancy     *VacancyHandler
	Application *ApplicationHandler
	Company     *CompanyHandler
	Category    *CategoryHandler
	User        *UserHandler
	Health      *HealthHandler
}

// NewRouter builds the route table. The passed base middleware (recovery,
// request ID, CORS, logging, auth) wraps every route; role middleware is
// applied per route group.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	authed := middleware.RequireAuth()
	client := middleware.RequireRole(domain.UserRoleClient, domain.UserRoleAdmin)
	company := middleware.RequireRole(domain.UserRoleCompany, domain.UserRoleAdmin)
	admin := middleware.RequireRole(domain.UserRoleAdmin)

	// Probes.
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	// Auth.
	mux.HandleFunc("POST /auth/register", h.Auth.Register)
	mux.HandleFunc("POST /auth/register-company", h.Auth.RegisterCompany)
	mux.HandleFunc("POST /auth/login", h.Auth.Login)
	mux.Handle("GET /auth/me", authed(http.HandlerFunc(h.Auth.Me)))
	mux.Handle("GET /auth/me/company", authed(http.HandlerFunc(h.Auth.MyCompany)))

	// Vacancies. Reads are public; writes belong to the owning company.
	mux.HandleFunc("GET /vacancies", h.Vacancy.Search)
	mux.HandleFunc("GET /vacancies/{id}", h.Vacancy.Get)
	mux.Handle("POST /vacancies", company(http.HandlerFunc(h.Vacancy.Create)))
	mux.Handle("PUT /vacancies/{id}", company(http.HandlerFunc(h.Vacancy.Update)))
	mux.Handle("POST /vacancies/{id}/cancel", company(http.HandlerFunc(h.Vacancy.Cancel)))
	mux.Handle("GET /company/vacancies", company(http.HandlerFunc(h.Vacancy.ListOwn)))

	// Applications.
	mux.Handle("POST /applications", client(http.HandlerFunc(h.Application.Submit)))
	mux.Handle("GET /applications/mine", client(http.HandlerFunc(h.Application.ListMine)))
	mux.Handle("GET /applications/{id}", authed(http.HandlerFunc(h.Application.Get)))
	mux.Handle("DELETE /applications/{id}", client(http.HandlerFunc(h.Application.Cancel)))
	mux.Handle("GET /vacancies/{id}/applications", company(http.HandlerFunc(h.Application.ListByVacancy)))
	mux.Handle("POST /applications/{id}/adjudicate", company(http.HandlerFunc(h.Application.Adjudicate)))
	mux.Handle("POST /applications/{id}/reject", company(http.HandlerFunc(h.Application.Reject)))

	// Companies.
	mux.HandleFunc("GET /companies", h.Company.List)
	mux.HandleFunc("GET /companies/{id}", h.Company.Get)
	mux.Handle("PUT /companies/{id}", company(http.HandlerFunc(h.Company.Update)))
	mux.Handle("DELETE /companies/{id}", admin(http.HandlerFunc(h.Company.Delete)))

	// Categories.
	mux.HandleFunc("GET /categories", h.Category.List)
	mux.HandleFunc("GET /categories/{id}", h.Category.Get)
	mux.Handle("POST /categories", admin(http.HandlerFunc(h.Category.Create)))
	mux.Handle("PUT /categories/{id}", admin(http.HandlerFunc(h.Category.Update)))
	mux.Handle("DELETE /categories/{id}", admin(http.HandlerFunc(h.Category.Delete)))

	// Users.
	mux.Handle("PUT /users/me", authed(http.HandlerFunc(h.User.UpdateProfile)))
	mux.Handle("GET /users", admin(http.HandlerFunc(h.User.List)))
	mux.Handle("GET /users/{email}", admin(http.HandlerFunc(h.User.Get)))
	mux.Handle("POST /users/{email}/activate", admin(http.HandlerFunc(h.User.Activate)))
	mux.Handle("POST /users/{email}/deactivate", admin(http.HandlerFunc(h.User.Deactivate)))

	return mux
}
