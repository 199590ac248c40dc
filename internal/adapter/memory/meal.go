package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// MealRepo stores meals and their ingredients.
type MealRepo struct {
	s *Store
}

// Create stores a meal and its ingredients.
func (r *MealRepo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.households[m.HouseholdID]; !ok {
			return fmt.Errorf("meal %s: %w", m.ID, domain.ErrNotFound)
		}
		if strings.TrimSpace(m.Name) == "" {
			return fmt.Errorf("meal %s: %w", m.ID, domain.ErrValidation)
		}
		stored := *m
		stored.Ingredients = nil
		st.meals[m.ID] = stored

		for _, ing := range m.Ingredients {
			mealID := m.ID
			ing.MealID = &mealID
			ing.WeekPlanID = nil
			ing.FromManual = false
			st.ingredients[ing.ID] = ing
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := *m
	out.Ingredients = slices.Clone(m.Ingredients)
	return &out, nil
}

// GetByID returns a household's meal with its ingredients.
func (r *MealRepo) GetByID(ctx context.Context, householdID, id uuid.UUID) (*domain.Meal, error) {
	var out domain.Meal
	err := r.s.read(ctx, func(st *state) error {
		m, ok := st.meals[id]
		if !ok || m.HouseholdID != householdID {
			return fmt.Errorf("meal %s: %w", id, domain.ErrNotFound)
		}
		out = withIngredients(st, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByIDs returns the meals with the given ids. Missing ids are skipped.
func (r *MealRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error) {
	out := []domain.Meal{}
	err := r.s.read(ctx, func(st *state) error {
		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			m, ok := st.meals[id]
			if !ok || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, withIngredients(st, m))
		}
		return nil
	})
	return out, err
}

// ListByHousehold returns all meals of a household ordered by name.
func (r *MealRepo) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error) {
	out := []domain.Meal{}
	err := r.s.read(ctx, func(st *state) error {
		for _, m := range st.meals {
			if m.HouseholdID == householdID {
				out = append(out, withIngredients(st, m))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.Meal) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return out, nil
}

// Delete removes a meal with its ingredients and every slot assignment of it.
func (r *MealRepo) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		m, ok := st.meals[id]
		if !ok || m.HouseholdID != householdID {
			return fmt.Errorf("meal %s: %w", id, domain.ErrNotFound)
		}
		delete(st.meals, id)
		for ingID, ing := range st.ingredients {
			if ing.MealID != nil && *ing.MealID == id {
				delete(st.ingredients, ingID)
			}
		}
		for dayID, d := range st.days {
			for _, slot := range domain.Slots {
				a := d.Slot(slot)
				a.MealIDs = slices.DeleteFunc(slices.Clone(a.MealIDs), func(m uuid.UUID) bool { return m == id })
			}
			st.days[dayID] = d
		}
		return nil
	})
}

func withIngredients(st *state, m domain.Meal) domain.Meal {
	var ings []domain.Ingredient
	for _, ing := range st.ingredients {
		if ing.MealID != nil && *ing.MealID == m.ID {
			ings = append(ings, ing)
		}
	}
	sortIngredients(ings)
	m.Ingredients = ings
	return m
}

func sortIngredients(ings []domain.Ingredient) {
	slices.SortFunc(ings, func(a, b domain.Ingredient) int {
		return cmp.Or(
			cmp.Compare(a.Position, b.Position),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
}
