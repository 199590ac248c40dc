package household

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// FetchOrCreate returns the household, creating it on first use.
// Concurrent first calls are serialized so exactly one household exists.
func (s *Service) FetchOrCreate(ctx context.Context) (*domain.Household, error) {
	h, err := s.households.GetFirst(ctx)
	if err == nil {
		return h, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get household: %w", err)
	}

	created := false
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.households.LockCreation(txCtx); err != nil {
			return fmt.Errorf("lock household creation: %w", err)
		}

		existing, err := s.households.GetFirst(txCtx)
		if err == nil {
			h = existing
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get household: %w", err)
		}

		h, err = s.households.Create(txCtx, &domain.Household{
			ID:        uuid.New(),
			Name:      s.defaultName,
			CreatedAt: s.clock().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create household: %w", err)
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		s.log.InfoContext(ctx, "household created",
			slog.String("household_id", h.ID.String()),
			slog.String("name", h.Name),
		)
	}
	return h, nil
}

// Rename changes the household name.
func (s *Service) Rename(ctx context.Context, input RenameInput) (*domain.Household, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := domain.CleanName(input.Name)
	h, err := s.households.UpdateName(ctx, input.HouseholdID, name)
	if err != nil {
		return nil, fmt.Errorf("update household name: %w", err)
	}

	s.log.InfoContext(ctx, "household renamed",
		slog.String("household_id", h.ID.String()),
		slog.String("name", name),
	)
	return h, nil
}
