package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// FetchOrCreateWeekPlan returns the household's plan for the week containing
// weekStart, creating it if absent. Any two dates of the same Monday-Sunday
// span yield the same plan.
func (s *Service) FetchOrCreateWeekPlan(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error) {
	if householdID == uuid.Nil {
		return nil, domain.NewValidationError("household_id", "required")
	}
	if weekStart.IsZero() {
		return nil, domain.NewValidationError("week_start", "required")
	}

	start := domain.StartOfWeek(weekStart, s.loc)
	candidate := &domain.WeekPlan{
		ID:          uuid.New(),
		HouseholdID: householdID,
		WeekStart:   start,
		CreatedAt:   s.clock().UTC(),
	}

	var wp *domain.WeekPlan
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		wp, err = s.weekPlans.CreateIfNotExists(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("create week plan: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if wp.ID == candidate.ID {
		s.log.InfoContext(ctx, "week plan created",
			slog.String("household_id", householdID.String()),
			slog.String("week_plan_id", wp.ID.String()),
			slog.String("week_start", start.Format(time.DateOnly)),
		)
	}
	return wp, nil
}

// CurrentWeekPlan returns the plan for the week containing now.
func (s *Service) CurrentWeekPlan(ctx context.Context, householdID uuid.UUID) (*domain.WeekPlan, error) {
	return s.FetchOrCreateWeekPlan(ctx, householdID, s.clock())
}

// GetWeekPlan returns a week plan by id.
func (s *Service) GetWeekPlan(ctx context.Context, weekPlanID uuid.UUID) (*domain.WeekPlan, error) {
	wp, err := s.weekPlans.GetByID(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("get week plan: %w", err)
	}
	return wp, nil
}
