// Command cleanup applies the planner retention policy: week plans and
// manual slot ingredients older than the configured number of weeks are
// deleted. It is intended to be invoked by an external cron job, not as an
// in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/heartmarshall/mealplanner-backend/internal/app"
	"github.com/heartmarshall/mealplanner-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	backend, err := app.NewBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("open backend", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	household, err := backend.Households.FetchOrCreate(ctx)
	if err != nil {
		logger.Error("resolve household", slog.String("error", err.Error()))
		os.Exit(1)
	}

	res, err := backend.Planner.CleanupOldPlannerData(ctx, household.ID)
	if err != nil {
		logger.Error("planner cleanup failed",
			slog.String("error", err.Error()),
			slog.String("household_id", household.ID.String()),
		)
		os.Exit(1)
	}

	logger.Info("planner cleanup completed",
		slog.Time("cutoff", res.Cutoff),
		slog.Int("week_plans_deleted", res.WeekPlansDeleted),
		slog.Int("slot_ingredients_deleted", res.SlotIngredientsDeleted),
	)
}
