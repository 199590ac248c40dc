package shopping

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

const maxNameLength = 200

// AddManualItemInput holds the parameters for a user-typed list item.
type AddManualItemInput struct {
	WeekPlanID uuid.UUID
	Name       string
}

// Validate checks all fields and collects all errors.
func (i AddManualItemInput) Validate() error {
	var errs []domain.FieldError
	if i.WeekPlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "week_plan_id", Message: "required"})
	}
	name := domain.CleanName(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetGroupTickedInput holds the parameters for ticking a same-name group.
type SetGroupTickedInput struct {
	WeekPlanID uuid.UUID
	Name       string
	Ticked     bool
}

// Validate checks all fields and collects all errors.
func (i SetGroupTickedInput) Validate() error {
	var errs []domain.FieldError
	if i.WeekPlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "week_plan_id", Message: "required"})
	}
	if domain.NormalizeName(i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
