package household

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// AddUsualItem adds a standing grocery item to the household.
func (s *Service) AddUsualItem(ctx context.Context, input AddUsualItemInput) (*domain.UsualItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.households.CreateUsualItem(ctx, &domain.UsualItem{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Name:        domain.CleanName(input.Name),
		CreatedAt:   s.clock().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create usual item: %w", err)
	}

	s.log.InfoContext(ctx, "usual item added",
		slog.String("household_id", item.HouseholdID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
	)
	return item, nil
}

// RemoveUsualItem deletes a usual item of the household.
func (s *Service) RemoveUsualItem(ctx context.Context, householdID, itemID uuid.UUID) error {
	if itemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	if err := s.households.DeleteUsualItem(ctx, householdID, itemID); err != nil {
		return fmt.Errorf("delete usual item: %w", err)
	}

	s.log.InfoContext(ctx, "usual item removed",
		slog.String("household_id", householdID.String()),
		slog.String("item_id", itemID.String()),
	)
	return nil
}

// ListUsualItems returns the household's usual items sorted by name.
func (s *Service) ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error) {
	items, err := s.households.ListUsualItems(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("list usual items: %w", err)
	}
	return items, nil
}
