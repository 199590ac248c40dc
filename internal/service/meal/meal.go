package meal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// CreateMeal creates a meal with its ingredients. Ingredient names are
// trimmed and blank entries are dropped; at least one must remain.
func (s *Service) CreateMeal(ctx context.Context, input CreateMealInput) (*domain.Meal, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	m := &domain.Meal{
		ID:          uuid.New(),
		HouseholdID: input.HouseholdID,
		Name:        domain.CleanName(input.Name),
		Tags:        strings.Join(cleanTags(input.Tags), ","),
		Recipe:      trimOrNil(input.Recipe),
		CreatedAt:   now,
	}
	for pos, name := range cleanIngredients(input.Ingredients) {
		mealID := m.ID
		m.Ingredients = append(m.Ingredients, domain.Ingredient{
			ID:        uuid.New(),
			Name:      name,
			MealID:    &mealID,
			Position:  pos,
			CreatedAt: now,
		})
	}

	var created *domain.Meal
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.meals.Create(txCtx, m)
		if err != nil {
			return fmt.Errorf("create meal: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "meal created",
		slog.String("household_id", created.HouseholdID.String()),
		slog.String("meal_id", created.ID.String()),
		slog.String("name", created.Name),
		slog.Int("ingredients", len(created.Ingredients)),
	)
	return created, nil
}

// DeleteMeal removes a meal, its ingredients and every slot assignment of it.
func (s *Service) DeleteMeal(ctx context.Context, householdID, mealID uuid.UUID) error {
	if mealID == uuid.Nil {
		return domain.NewValidationError("meal_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.meals.Delete(txCtx, householdID, mealID); err != nil {
			return fmt.Errorf("delete meal: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "meal deleted",
		slog.String("household_id", householdID.String()),
		slog.String("meal_id", mealID.String()),
	)
	return nil
}

// GetMeal returns one meal with its ingredients.
func (s *Service) GetMeal(ctx context.Context, householdID, mealID uuid.UUID) (*domain.Meal, error) {
	m, err := s.meals.GetByID(ctx, householdID, mealID)
	if err != nil {
		return nil, fmt.Errorf("get meal: %w", err)
	}
	return m, nil
}

// ListMeals returns the household's meals sorted by name.
func (s *Service) ListMeals(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error) {
	meals, err := s.meals.ListByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// ListMealsByTag returns the meals offered for tag. A blank tag lists all meals.
func (s *Service) ListMealsByTag(ctx context.Context, householdID uuid.UUID, tag string) ([]domain.Meal, error) {
	meals, err := s.ListMeals(ctx, householdID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(tag) == "" {
		return meals, nil
	}

	out := make([]domain.Meal, 0, len(meals))
	for _, m := range meals {
		if m.MatchesTag(tag) {
			out = append(out, m)
		}
	}
	return out, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
