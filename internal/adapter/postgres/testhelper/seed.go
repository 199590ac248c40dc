package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedHousehold inserts a household with a unique name.
func SeedHousehold(t *testing.T, pool *pgxpool.Pool) domain.Household {
	t.Helper()

	h := domain.Household{
		ID:        uuid.New(),
		Name:      "Household " + uniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO households (id, name, created_at) VALUES ($1, $2, $3)`,
		h.ID, h.Name, h.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHousehold: %v", err)
	}
	return h
}

// SeedMeal inserts a meal owned by householdID with one ingredient per name,
// in the given order.
func SeedMeal(t *testing.T, pool *pgxpool.Pool, householdID uuid.UUID, name string, ingredients ...string) domain.Meal {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Meal{
		ID:          uuid.New(),
		HouseholdID: householdID,
		Name:        name,
		Tags:        "",
		CreatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meals (id, household_id, name, tags, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.HouseholdID, m.Name, m.Tags, m.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeal insert meal: %v", err)
	}

	for i, ingName := range ingredients {
		mealID := m.ID
		ing := domain.Ingredient{ID: uuid.New(), Name: ingName, MealID: &mealID, Position: i, CreatedAt: now}
		_, err := pool.Exec(ctx,
			`INSERT INTO ingredients (id, name, from_manual, meal_id, position, created_at)
			 VALUES ($1, $2, false, $3, $4, $5)`,
			ing.ID, ing.Name, mealID, ing.Position, ing.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedMeal insert ingredient: %v", err)
		}
		m.Ingredients = append(m.Ingredients, ing)
	}

	return m
}

// SeedWeekPlan inserts a week plan for the given week start.
func SeedWeekPlan(t *testing.T, pool *pgxpool.Pool, householdID uuid.UUID, weekStart time.Time) domain.WeekPlan {
	t.Helper()

	wp := domain.WeekPlan{
		ID:          uuid.New(),
		HouseholdID: householdID,
		WeekStart:   weekStart,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO week_plans (id, household_id, week_start, created_at) VALUES ($1, $2, $3, $4)`,
		wp.ID, wp.HouseholdID, wp.WeekStart, wp.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWeekPlan: %v", err)
	}
	return wp
}
