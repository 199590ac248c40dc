package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/mealplanner-backend/internal/config"
	"github.com/heartmarshall/mealplanner-backend/internal/transport/middleware"
	"github.com/heartmarshall/mealplanner-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// store, serves the REST API and shuts the server down when ctx is done.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("timezone", cfg.Planner.Location.String()),
	)

	backend, err := NewBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open backend: %w", err)
	}
	defer backend.Close()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewHandler(cfg, logger, backend),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler builds the REST router wrapped in the middleware chain.
func NewHandler(cfg *config.Config, logger *slog.Logger, b *Backend) http.Handler {
	loc := cfg.Planner.Location

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(b.Store, b.Driver, Version),
		Household:   rest.NewHouseholdHandler(b.Households, logger),
		Meal:        rest.NewMealHandler(b.Households, b.Meals, logger),
		Planner:     rest.NewPlannerHandler(b.Households, b.Planner, logger),
		Shopping:    rest.NewShoppingHandler(b.Shopping, loc, logger),
		Maintenance: rest.NewMaintenanceHandler(b.Households, b.Planner, loc, logger),
	})

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(router)
}
