// Package weekplan implements persistence for week plans, their days and
// slot assignments, and the manual ingredients attached to a week plan.
package weekplan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// Repo provides week plan persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new week plan repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type weekPlanRow struct {
	ID          uuid.UUID `db:"id"`
	HouseholdID uuid.UUID `db:"household_id"`
	WeekStart   time.Time `db:"week_start"`
	CreatedAt   time.Time `db:"created_at"`
}

type dayRow struct {
	ID                   uuid.UUID `db:"id"`
	WeekPlanID           uuid.UUID `db:"week_plan_id"`
	Date                 time.Time `db:"date"`
	AlreadyHaveBreakfast bool      `db:"already_have_breakfast"`
	AlreadyHaveLunch     bool      `db:"already_have_lunch"`
	AlreadyHaveDinner    bool      `db:"already_have_dinner"`
	AlreadyHaveOther     bool      `db:"already_have_other"`
}

type dayMealRow struct {
	DayID  uuid.UUID `db:"day_id"`
	Slot   string    `db:"slot"`
	MealID uuid.UUID `db:"meal_id"`
}

type slotIngredientRow struct {
	ID         uuid.UUID `db:"id"`
	WeekPlanID uuid.UUID `db:"week_plan_id"`
	Name       string    `db:"name"`
	Slot       string    `db:"slot"`
	Date       time.Time `db:"date"`
	CreatedAt  time.Time `db:"created_at"`
}

type ingredientRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	FromManual bool       `db:"from_manual"`
	MealID     *uuid.UUID `db:"meal_id"`
	WeekPlanID *uuid.UUID `db:"week_plan_id"`
	Position   int        `db:"position"`
	CreatedAt  time.Time  `db:"created_at"`
}

var (
	weekPlanColumns       = []string{"id", "household_id", "week_start", "created_at"}
	dayColumns            = []string{"id", "week_plan_id", "date", "already_have_breakfast", "already_have_lunch", "already_have_dinner", "already_have_other"}
	slotIngredientColumns = []string{"id", "week_plan_id", "name", "slot", "date", "created_at"}
	ingredientColumns     = []string{"id", "name", "from_manual", "meal_id", "week_plan_id", "position", "created_at"}
)

// alreadyHaveColumn maps a slot to its flag column.
func alreadyHaveColumn(s domain.Slot) (string, error) {
	switch s {
	case domain.SlotBreakfast:
		return "already_have_breakfast", nil
	case domain.SlotLunch:
		return "already_have_lunch", nil
	case domain.SlotDinner:
		return "already_have_dinner", nil
	case domain.SlotOther:
		return "already_have_other", nil
	}
	return "", domain.NewValidationError("slot", fmt.Sprintf("unknown slot %q", s))
}

func toDomainWeekPlan(row weekPlanRow) domain.WeekPlan {
	return domain.WeekPlan{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		WeekStart:   row.WeekStart,
		CreatedAt:   row.CreatedAt,
	}
}

func toDomainDay(row dayRow) domain.Day {
	return domain.Day{
		ID:         row.ID,
		WeekPlanID: row.WeekPlanID,
		Date:       row.Date,
		Breakfast:  domain.SlotAssignment{AlreadyHave: row.AlreadyHaveBreakfast},
		Lunch:      domain.SlotAssignment{AlreadyHave: row.AlreadyHaveLunch},
		Dinner:     domain.SlotAssignment{AlreadyHave: row.AlreadyHaveDinner},
		Other:      domain.SlotAssignment{AlreadyHave: row.AlreadyHaveOther},
	}
}

func toDomainSlotIngredient(row slotIngredientRow) domain.ManualSlotIngredient {
	return domain.ManualSlotIngredient{
		ID:         row.ID,
		WeekPlanID: row.WeekPlanID,
		Name:       row.Name,
		Slot:       domain.Slot(row.Slot),
		Date:       row.Date,
		CreatedAt:  row.CreatedAt,
	}
}

func toDomainIngredient(row ingredientRow) domain.Ingredient {
	return domain.Ingredient{
		ID:         row.ID,
		Name:       row.Name,
		FromManual: row.FromManual,
		MealID:     row.MealID,
		WeekPlanID: row.WeekPlanID,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
	}
}
