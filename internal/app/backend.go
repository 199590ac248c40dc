package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/memory"
	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres"
	householdrepo "github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres/household"
	mealrepo "github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres/meal"
	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres/shoppinglist"
	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres/weekplan"
	"github.com/heartmarshall/mealplanner-backend/internal/config"
	"github.com/heartmarshall/mealplanner-backend/internal/service/household"
	"github.com/heartmarshall/mealplanner-backend/internal/service/meal"
	"github.com/heartmarshall/mealplanner-backend/internal/service/planner"
	"github.com/heartmarshall/mealplanner-backend/internal/service/shopping"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// Backend is the storage driver plus every service built on it.
type Backend struct {
	Households *household.Service
	Meals      *meal.Service
	Planner    *planner.Service
	Shopping   *shopping.Service

	Store  pinger
	Driver string

	close func()
}

// Close releases the storage driver.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend opens the configured store and wires the services. For
// postgres it also applies pending migrations.
func NewBackend(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Backend, error) {
	plannerCfg := planner.Config{
		Location:       cfg.Planner.Location,
		RetentionWeeks: cfg.Planner.RetentionWeeks,
	}
	loc := cfg.Planner.Location
	name := cfg.Planner.HouseholdName

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := memory.New()
		tx := store.TxManager()
		return &Backend{
			Households: household.NewService(log, store.Households(), tx, name),
			Meals:      meal.NewService(log, store.Meals(), tx),
			Planner:    planner.NewService(log, store.WeekPlans(), store.Meals(), tx, plannerCfg),
			Shopping: shopping.NewService(log, store.Households(), store.WeekPlans(), store.Meals(),
				store.ShoppingList(), tx, loc),
			Store:  store,
			Driver: config.DriverMemory,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}

		tx := postgres.NewTxManager(pool)
		households := householdrepo.New(pool)
		meals := mealrepo.New(pool)
		weekPlans := weekplan.New(pool)
		items := shoppinglist.New(pool)
		return &Backend{
			Households: household.NewService(log, households, tx, name),
			Meals:      meal.NewService(log, meals, tx),
			Planner:    planner.NewService(log, weekPlans, meals, tx, plannerCfg),
			Shopping:   shopping.NewService(log, households, weekPlans, meals, items, tx, loc),
			Store:      pool,
			Driver:     config.DriverPostgres,
			close:      pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
