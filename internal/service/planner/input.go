package planner

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

const maxNameLength = 200

// SlotRef addresses one slot of one calendar date of a week plan.
type SlotRef struct {
	WeekPlanID uuid.UUID
	Date       time.Time
	Slot       domain.Slot
}

func (r SlotRef) fieldErrors() []domain.FieldError {
	var errs []domain.FieldError
	if r.WeekPlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "week_plan_id", Message: "required"})
	}
	if r.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if !r.Slot.IsValid() {
		errs = append(errs, domain.FieldError{Field: "slot", Message: "must be one of breakfast, lunch, dinner, other"})
	}
	return errs
}

// Validate checks all fields and collects all errors.
func (r SlotRef) Validate() error {
	return toError(r.fieldErrors())
}

// MealAssignmentInput holds the parameters for assigning or unassigning a meal.
type MealAssignmentInput struct {
	SlotRef
	MealID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i MealAssignmentInput) Validate() error {
	errs := i.fieldErrors()
	if i.MealID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meal_id", Message: "required"})
	}
	return toError(errs)
}

// SetAlreadyHaveInput holds the parameters for setting an already-have flag.
type SetAlreadyHaveInput struct {
	SlotRef
	Value bool
}

// AddSlotIngredientInput holds the parameters for a manual slot ingredient.
type AddSlotIngredientInput struct {
	SlotRef
	Name string
}

// Validate checks all fields and collects all errors.
func (i AddSlotIngredientInput) Validate() error {
	return toError(appendNameErrors(i.fieldErrors(), "name", i.Name))
}

// AddSlotIngredientsInput holds multi-line text, one ingredient per line.
type AddSlotIngredientsInput struct {
	SlotRef
	Text string
}

// Validate checks all fields and collects all errors.
func (i AddSlotIngredientsInput) Validate() error {
	errs := i.fieldErrors()
	lines := domain.SplitLines(i.Text)
	if len(lines) == 0 {
		errs = append(errs, domain.FieldError{Field: "text", Message: "at least one ingredient required"})
	}
	for _, line := range lines {
		if len(line) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "text", Message: "ingredient max 200 characters"})
			break
		}
	}
	return toError(errs)
}

// AddManualIngredientInput holds the parameters for a week-plan level ingredient.
type AddManualIngredientInput struct {
	WeekPlanID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i AddManualIngredientInput) Validate() error {
	var errs []domain.FieldError
	if i.WeekPlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "week_plan_id", Message: "required"})
	}
	return toError(appendNameErrors(errs, "name", i.Name))
}

func appendNameErrors(errs []domain.FieldError, field, raw string) []domain.FieldError {
	name := domain.CleanName(raw)
	if name == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func toError(errs []domain.FieldError) error {
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
