// Command migrate applies goose SQL migrations from the migrations
// directory to the configured database.
//
// Usage:
//
//	migrate [--dir migrations] up|down|status|version
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vacantes/jobboard-backend/internal/adapter/postgres"
	"github.com/vacantes/jobboard-backend/internal/app"
	"github.com/vacantes/jobboard-backend/internal/config"
)

func main() {
	dirFlag := flag.String("dir", "migrations", "directory with migration files")
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("set dialect", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := goose.RunContext(ctx, command, db, *dirFlag); err != nil {
		logger.Error("migration failed",
			slog.String("command", command),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("migration completed", slog.String("command", command))
}
