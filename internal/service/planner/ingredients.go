package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// AddManualSlotIngredient records a hand-entered ingredient for one day and slot.
func (s *Service) AddManualSlotIngredient(ctx context.Context, input AddSlotIngredientInput) (*domain.ManualSlotIngredient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.addSlotIngredients(ctx, input.SlotRef, []string{domain.CleanName(input.Name)})
	if err != nil {
		return nil, err
	}
	return &created[0], nil
}

// AddManualSlotIngredients records one ingredient per non-blank line of text.
// Either every line is stored or none is.
func (s *Service) AddManualSlotIngredients(ctx context.Context, input AddSlotIngredientsInput) ([]domain.ManualSlotIngredient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	return s.addSlotIngredients(ctx, input.SlotRef, domain.SplitLines(input.Text))
}

func (s *Service) addSlotIngredients(ctx context.Context, ref SlotRef, names []string) ([]domain.ManualSlotIngredient, error) {
	now := s.clock().UTC()
	date := domain.StartOfDay(ref.Date, s.loc)
	items := make([]domain.ManualSlotIngredient, len(names))
	for i, name := range names {
		items[i] = domain.ManualSlotIngredient{
			ID:         uuid.New(),
			WeekPlanID: ref.WeekPlanID,
			Name:       name,
			Slot:       ref.Slot,
			Date:       date,
			// Distinct timestamps keep entry order stable when listing.
			CreatedAt: now.Add(time.Duration(i) * time.Microsecond),
		}
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		wp, err := s.weekPlans.GetByID(txCtx, ref.WeekPlanID)
		if err != nil {
			return fmt.Errorf("get week plan: %w", err)
		}
		if !domain.WeekContains(wp.WeekStart, date, s.loc) {
			return domain.NewValidationError("date", "outside the week plan")
		}
		if err := s.weekPlans.CreateSlotIngredients(txCtx, items); err != nil {
			return fmt.Errorf("create slot ingredients: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual slot ingredients added",
		slog.String("week_plan_id", ref.WeekPlanID.String()),
		slog.String("date", date.Format(time.DateOnly)),
		slog.String("slot", ref.Slot.String()),
		slog.Int("count", len(items)),
	)
	return items, nil
}

// ListManualSlotIngredients returns the manual ingredients of one day and slot.
func (s *Service) ListManualSlotIngredients(ctx context.Context, ref SlotRef) ([]domain.ManualSlotIngredient, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	all, err := s.weekPlans.ListSlotIngredients(ctx, ref.WeekPlanID)
	if err != nil {
		return nil, fmt.Errorf("list slot ingredients: %w", err)
	}

	out := make([]domain.ManualSlotIngredient, 0, len(all))
	for _, it := range all {
		if it.Slot == ref.Slot && domain.SameDay(it.Date, ref.Date, s.loc) {
			out = append(out, it)
		}
	}
	return out, nil
}

// ListAllSlotIngredients returns every manual slot ingredient of a plan.
func (s *Service) ListAllSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error) {
	items, err := s.weekPlans.ListSlotIngredients(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("list slot ingredients: %w", err)
	}
	return items, nil
}

// DeleteManualSlotIngredient removes one manual slot ingredient.
func (s *Service) DeleteManualSlotIngredient(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.weekPlans.DeleteSlotIngredient(ctx, id); err != nil {
		return fmt.Errorf("delete slot ingredient: %w", err)
	}

	s.log.InfoContext(ctx, "manual slot ingredient deleted", slog.String("id", id.String()))
	return nil
}

// AddManualIngredient records a week-plan level ingredient not tied to any slot.
func (s *Service) AddManualIngredient(ctx context.Context, input AddManualIngredientInput) (*domain.Ingredient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	weekPlanID := input.WeekPlanID
	var ing *domain.Ingredient
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		ing, err = s.weekPlans.CreateManualIngredient(txCtx, &domain.Ingredient{
			ID:         uuid.New(),
			Name:       domain.CleanName(input.Name),
			FromManual: true,
			WeekPlanID: &weekPlanID,
			CreatedAt:  s.clock().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create manual ingredient: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual ingredient added",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.String("ingredient_id", ing.ID.String()),
		slog.String("name", ing.Name),
	)
	return ing, nil
}

// ListManualIngredients returns a plan's week-level manual ingredients in entry order.
func (s *Service) ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error) {
	items, err := s.weekPlans.ListManualIngredients(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("list manual ingredients: %w", err)
	}
	return items, nil
}

// DeleteManualIngredient removes one week-level manual ingredient.
func (s *Service) DeleteManualIngredient(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if err := s.weekPlans.DeleteManualIngredient(ctx, id); err != nil {
		return fmt.Errorf("delete manual ingredient: %w", err)
	}

	s.log.InfoContext(ctx, "manual ingredient deleted", slog.String("id", id.String()))
	return nil
}
