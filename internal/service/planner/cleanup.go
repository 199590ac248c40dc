package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// CleanupOldPlannerData deletes the household's week plans that start before
// the retention cutoff, with everything they own, and any manual slot
// ingredient dated before it. Running it twice in a row deletes nothing the
// second time.
func (s *Service) CleanupOldPlannerData(ctx context.Context, householdID uuid.UUID) (*domain.CleanupResult, error) {
	if householdID == uuid.Nil {
		return nil, domain.NewValidationError("household_id", "required")
	}

	res := &domain.CleanupResult{
		Cutoff: domain.RetentionCutoff(s.clock(), s.retention, s.loc),
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		n, err := s.weekPlans.DeleteOlderThan(txCtx, householdID, res.Cutoff)
		if err != nil {
			return fmt.Errorf("delete old week plans: %w", err)
		}
		res.WeekPlansDeleted = n

		n, err = s.weekPlans.DeleteSlotIngredientsBefore(txCtx, householdID, res.Cutoff)
		if err != nil {
			return fmt.Errorf("delete old slot ingredients: %w", err)
		}
		res.SlotIngredientsDeleted = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "planner cleanup finished",
		slog.String("household_id", householdID.String()),
		slog.String("cutoff", res.Cutoff.Format(time.DateOnly)),
		slog.Int("week_plans_deleted", res.WeekPlansDeleted),
		slog.Int("slot_ingredients_deleted", res.SlotIngredientsDeleted),
	)
	return res, nil
}
