// Command migrate applies or inspects the embedded goose migrations.
//
// Usage:
//
//	migrate [up|down|status]
//
// The database is taken from the regular configuration (CONFIG_PATH or
// DATABASE_DSN). Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealplanner-backend/internal/app"
	"github.com/heartmarshall/mealplanner-backend/internal/config"
)

func main() {
	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.Storage.Driver != config.DriverPostgres {
		log.Fatalf("migrate requires storage driver %q (got %q)", config.DriverPostgres, cfg.Storage.Driver)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := postgres.NewMigrator(db)
	if err != nil {
		logger.Error("create migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}

	switch command {
	case "up":
		err = postgres.Migrate(ctx, pool, logger)
	case "down":
		err = down(ctx, provider, logger)
	case "status":
		err = status(ctx, provider)
	default:
		fmt.Fprintln(os.Stderr, "Usage: migrate [up|down|status]")
		os.Exit(1)
	}

	if err != nil {
		logger.Error("migrate "+command+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func down(ctx context.Context, provider *goose.Provider, logger *slog.Logger) error {
	res, err := provider.Down(ctx)
	if err != nil {
		return err
	}
	logger.Info("migration rolled back",
		slog.Int64("version", res.Source.Version),
		slog.Duration("duration", res.Duration),
	)
	return nil
}

func status(ctx context.Context, provider *goose.Provider) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}
	for _, s := range statuses {
		fmt.Printf("%-6d %-8s %s\n", s.Source.Version, s.State, s.Source.Path)
	}
	return nil
}
