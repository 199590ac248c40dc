package shopping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// Toggle flips the ticked state of one item. Nothing else changes.
func (s *Service) Toggle(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingListItem, error) {
	if itemID == uuid.Nil {
		return nil, domain.NewValidationError("item_id", "required")
	}

	var item *domain.ShoppingListItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}
		if _, err := s.weekPlans.LockForUpdate(txCtx, current.WeekPlanID); err != nil {
			return fmt.Errorf("lock week plan: %w", err)
		}
		// Re-read under the lock so two toggles never flip from the same state.
		current, err = s.items.GetByID(txCtx, itemID)
		if err != nil {
			return fmt.Errorf("get item: %w", err)
		}

		item, err = s.items.SetTicked(txCtx, itemID, !current.Ticked)
		if err != nil {
			return fmt.Errorf("set ticked: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "item toggled",
		slog.String("item_id", item.ID.String()),
		slog.Bool("ticked", item.Ticked),
	)
	return item, nil
}

// SetGroupTicked sets the ticked state of every item of the week plan whose
// name matches name after normalization, and returns how many matched.
func (s *Service) SetGroupTicked(ctx context.Context, input SetGroupTickedInput) (int, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}

	key := domain.NormalizeName(input.Name)
	var n int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.weekPlans.LockForUpdate(txCtx, input.WeekPlanID); err != nil {
			return fmt.Errorf("lock week plan: %w", err)
		}
		var err error
		n, err = s.items.SetTickedByName(txCtx, input.WeekPlanID, key, input.Ticked)
		if err != nil {
			return fmt.Errorf("set group ticked: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "group ticked",
		slog.String("week_plan_id", input.WeekPlanID.String()),
		slog.String("group", key),
		slog.Bool("ticked", input.Ticked),
		slog.Int("items", n),
	)
	return n, nil
}

// ClearTickedOff removes every ticked item of a week plan. Items that came
// from a day slot first mark that slot of their own week plan as
// already-have, so regeneration does not ask for them again. A slot whose
// day no longer exists is logged and skipped; the item is still removed.
// Everything happens in one transaction.
func (s *Service) ClearTickedOff(ctx context.Context, weekPlanID uuid.UUID) (*ClearResult, error) {
	if weekPlanID == uuid.Nil {
		return nil, domain.NewValidationError("week_plan_id", "required")
	}

	res := &ClearResult{}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.weekPlans.LockForUpdate(txCtx, weekPlanID); err != nil {
			return fmt.Errorf("lock week plan: %w", err)
		}

		ticked, err := s.items.ListTicked(txCtx, weekPlanID)
		if err != nil {
			return fmt.Errorf("list ticked items: %w", err)
		}

		ids := make([]uuid.UUID, 0, len(ticked))
		for _, item := range ticked {
			ids = append(ids, item.ID)
			if !item.OriginType.IsSlotBound() || item.OriginSlot == nil {
				continue
			}

			marked, err := s.markAlreadyHave(txCtx, item)
			if err != nil {
				return err
			}
			if marked {
				res.SlotsMarked++
			} else {
				res.DaysMissing++
			}
		}

		res.Removed, err = s.items.DeleteByIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("delete ticked items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "ticked items cleared",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.Int("removed", res.Removed),
		slog.Int("slots_marked", res.SlotsMarked),
		slog.Int("days_missing", res.DaysMissing),
	)
	return res, nil
}

// markAlreadyHave sets the flag of the item's origin slot on the day of its
// origin date in the item's own week plan. It reports false when that day
// does not exist.
func (s *Service) markAlreadyHave(ctx context.Context, item domain.ShoppingListItem) (bool, error) {
	date := domain.StartOfDay(item.OriginDate, s.loc)
	day, err := s.weekPlans.GetDayByDate(ctx, item.WeekPlanID, date)
	if errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "day for ticked item not found",
			slog.String("item_id", item.ID.String()),
			slog.String("week_plan_id", item.WeekPlanID.String()),
			slog.String("date", date.Format(time.DateOnly)),
		)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get day: %w", err)
	}

	slot := *item.OriginSlot
	if day.AlreadyHave(slot) {
		return true, nil
	}
	if err := s.weekPlans.SetAlreadyHave(ctx, day.ID, slot, true); err != nil {
		return false, fmt.Errorf("set already-have: %w", err)
	}
	return true, nil
}
