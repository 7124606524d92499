package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	applicationrepo "github.com/vacantes/jobboard-backend/internal/adapter/postgres/application"
	categoryrepo "github.com/vacantes/jobboard-backend/internal/adapter/postgres/category"
	companyrepo "github.com/vacantes/jobboard-backend/internal/adapter/postgres/company"
	userrepo "github.com/vacantes/jobboard-backend/internal/adapter/postgres/user"
	vacancyrepo "github.com/vacantes/jobboard-backend/internal/adapter/postgres/vacancy"
	authpkg "github.com/vacantes/jobboard-backend/internal/auth"
	"github.com/vacantes/jobboard-backend/internal/config"
	applicationsvc "github.com/vacantes/jobboard-backend/internal/service/application"
	authsvc "github.com/vacantes/jobboard-backend/internal/service/auth"
	categorysvc "github.com/vacantes/jobboard-backend/internal/service/category"
	companysvc "github.com/vacantes/jobboard-backend/internal/service/company"
	usersvc "github.com/vacantes/jobboard-backend/internal/service/user"
	vacancysvc "github.com/vacantes/jobboard-backend/internal/service/vacancy"
	"github.com/vacantes/jobboard-backend/internal/transport/middleware"
	"github.com/vacantes/jobboard-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, assembles repositories, services, and the HTTP transport, and
// serves until ctx is cancelled. Shutdown is graceful within the configured
// timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// Repositories.
	applications := applicationrepo.New(pool)
	vacancies := vacancyrepo.New(pool)
	companies := companyrepo.New(pool)
	categories := categoryrepo.New(pool)
	users := userrepo.New(pool)

	// Auth infrastructure.
	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	// Services.
	authService := authsvc.NewService(logger, users, companies, txm, jwtMgr, hasher)
	applicationService := applicationsvc.NewService(logger, applications, vacancies, txm)
	vacancyService := vacancysvc.NewService(logger, vacancies, applications, companies, txm, cfg.Board)
	companyService := companysvc.NewService(logger, companies)
	categoryService := categorysvc.NewService(logger, categories)
	userService := usersvc.NewService(logger, users)

	// HTTP transport.
	mux := rest.NewRouter(rest.Handlers{
		Auth:        rest.NewAuthHandler(authService, logger),
		Vacancy:     rest.NewVacancyHandler(vacancyService, logger),
		Application: rest.NewApplicationHandler(applicationService, vacancyService, logger),
		Company:     rest.NewCompanyHandler(companyService, logger),
		Category:    rest.NewCategoryHandler(categoryService, logger),
		User:        rest.NewUserHandler(userService, logger),
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
	})

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Logger(logger),
		limiter.Limit(cfg.Server.RateLimitPerMin),
		middleware.Auth(jwtMgr),
	)(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}
