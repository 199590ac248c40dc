package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// SetAlreadyHave sets the already-have flag of one slot, creating the day
// if needed. Setting the current value again is a no-op.
func (s *Service) SetAlreadyHave(ctx context.Context, input SetAlreadyHaveInput) (*domain.Day, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		day, err = s.setAlreadyHave(txCtx, input.SlotRef, func(bool) bool { return input.Value })
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "already-have set",
		slog.String("day_id", day.ID.String()),
		slog.String("slot", input.Slot.String()),
		slog.Bool("value", input.Value),
	)
	return day, nil
}

// ToggleAlreadyHave flips the already-have flag of one slot and returns the new value.
func (s *Service) ToggleAlreadyHave(ctx context.Context, ref SlotRef) (bool, error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	var day *domain.Day
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		day, err = s.setAlreadyHave(txCtx, ref, func(cur bool) bool { return !cur })
		return err
	})
	if err != nil {
		return false, err
	}

	value := day.AlreadyHave(ref.Slot)
	s.log.InfoContext(ctx, "already-have toggled",
		slog.String("day_id", day.ID.String()),
		slog.String("slot", ref.Slot.String()),
		slog.Bool("value", value),
	)
	return value, nil
}

func (s *Service) setAlreadyHave(ctx context.Context, ref SlotRef, next func(bool) bool) (*domain.Day, error) {
	day, err := s.getOrCreateDay(ctx, ref.WeekPlanID, ref.Date)
	if err != nil {
		return nil, err
	}
	if err := s.weekPlans.SetAlreadyHave(ctx, day.ID, ref.Slot, next(day.AlreadyHave(ref.Slot))); err != nil {
		return nil, fmt.Errorf("set already-have: %w", err)
	}
	day, err = s.weekPlans.GetDayByID(ctx, day.ID)
	if err != nil {
		return nil, fmt.Errorf("get day: %w", err)
	}
	return day, nil
}

// GetAlreadyHave reports the already-have flag of one slot. A day that was
// never created has every flag cleared.
func (s *Service) GetAlreadyHave(ctx context.Context, ref SlotRef) (bool, error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	day, err := s.findDay(ctx, ref.WeekPlanID, ref.Date)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return day.AlreadyHave(ref.Slot), nil
}
