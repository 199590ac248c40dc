package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// GetOrCreateDay returns the plan's day for date, creating it with empty
// slots and cleared flags if absent. Dates are compared by calendar day.
func (s *Service) GetOrCreateDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		day, err = s.getOrCreateDay(txCtx, weekPlanID, date)
		return err
	})
	if err != nil {
		return nil, err
	}
	return day, nil
}

func (s *Service) getOrCreateDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	wp, err := s.weekPlans.GetByID(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("get week plan: %w", err)
	}
	return s.dayIn(ctx, wp, date)
}

func (s *Service) dayIn(ctx context.Context, wp *domain.WeekPlan, date time.Time) (*domain.Day, error) {
	if !domain.WeekContains(wp.WeekStart, date, s.loc) {
		return nil, domain.NewValidationError("date", "outside the week plan")
	}

	dayDate := domain.StartOfDay(date, s.loc)
	day, err := s.weekPlans.GetDayByDate(ctx, wp.ID, dayDate)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get day: %w", err)
	}

	day, err = s.weekPlans.CreateDay(ctx, &domain.Day{
		ID:         uuid.New(),
		WeekPlanID: wp.ID,
		Date:       dayDate,
	})
	if err != nil {
		return nil, fmt.Errorf("create day: %w", err)
	}
	return day, nil
}

// GetDay returns the plan's stored day for date. Unlike GetOrCreateDay it
// never persists anything: a day not created yet is ErrNotFound.
func (s *Service) GetDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	wp, err := s.weekPlans.GetByID(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("get week plan: %w", err)
	}
	if !domain.WeekContains(wp.WeekStart, date, s.loc) {
		return nil, domain.NewValidationError("date", "outside the week plan")
	}
	return s.findDay(ctx, wp.ID, date)
}

// findDay returns the stored day for date without creating it.
func (s *Service) findDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	day, err := s.weekPlans.GetDayByDate(ctx, weekPlanID, domain.StartOfDay(date, s.loc))
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return day, nil
}

// ListDays returns the days created so far for a plan, ordered by date.
func (s *Service) ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error) {
	days, err := s.weekPlans.ListDays(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	return days, nil
}

// ClearDay removes every meal from the day's four slots. Already-have
// flags are left as they are.
func (s *Service) ClearDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		found, err := s.findDay(txCtx, weekPlanID, date)
		if err != nil {
			return err
		}
		if err := s.weekPlans.ClearDayMeals(txCtx, found.ID); err != nil {
			return fmt.Errorf("clear day meals: %w", err)
		}
		day, err = s.weekPlans.GetDayByID(txCtx, found.ID)
		if err != nil {
			return fmt.Errorf("get day: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "day cleared",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.String("date", day.Date.Format(time.DateOnly)),
	)
	return day, nil
}

// RemoveDay deletes the day with its assignments and flags.
func (s *Service) RemoveDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		day, err := s.findDay(txCtx, weekPlanID, date)
		if err != nil {
			return err
		}
		if err := s.weekPlans.DeleteDay(txCtx, day.ID); err != nil {
			return fmt.Errorf("delete day: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "day removed",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.String("date", domain.StartOfDay(date, s.loc).Format(time.DateOnly)),
	)
	return nil
}
