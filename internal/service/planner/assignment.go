package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// AssignMeal adds a meal to a slot's meal set, creating the day if needed.
// Assigning a meal that is already in the slot changes nothing.
func (s *Service) AssignMeal(ctx context.Context, input MealAssignmentInput) (*domain.Day, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		wp, err := s.weekPlans.GetByID(txCtx, input.WeekPlanID)
		if err != nil {
			return fmt.Errorf("get week plan: %w", err)
		}
		if _, err := s.meals.GetByID(txCtx, wp.HouseholdID, input.MealID); err != nil {
			return fmt.Errorf("get meal: %w", err)
		}
		d, err := s.dayIn(txCtx, wp, input.Date)
		if err != nil {
			return err
		}
		if err := s.weekPlans.AddDayMeal(txCtx, d.ID, input.Slot, input.MealID); err != nil {
			return fmt.Errorf("add day meal: %w", err)
		}
		day, err = s.weekPlans.GetDayByID(txCtx, d.ID)
		if err != nil {
			return fmt.Errorf("get day: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "meal assigned",
		slog.String("week_plan_id", input.WeekPlanID.String()),
		slog.String("day_id", day.ID.String()),
		slog.String("slot", input.Slot.String()),
		slog.String("meal_id", input.MealID.String()),
	)
	return day, nil
}

// UnassignMeal removes a meal from a slot. Removing a meal that is not
// assigned is a no-op; a missing day is ErrNotFound.
func (s *Service) UnassignMeal(ctx context.Context, input MealAssignmentInput) (*domain.Day, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.findDay(txCtx, input.WeekPlanID, input.Date)
		if err != nil {
			return err
		}
		if err := s.weekPlans.RemoveDayMeal(txCtx, d.ID, input.Slot, input.MealID); err != nil {
			return fmt.Errorf("remove day meal: %w", err)
		}
		day, err = s.weekPlans.GetDayByID(txCtx, d.ID)
		if err != nil {
			return fmt.Errorf("get day: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "meal unassigned",
		slog.String("week_plan_id", input.WeekPlanID.String()),
		slog.String("day_id", day.ID.String()),
		slog.String("slot", input.Slot.String()),
		slog.String("meal_id", input.MealID.String()),
	)
	return day, nil
}
