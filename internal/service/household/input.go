package household

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

const maxNameLength = 200

// RenameInput holds the parameters for renaming the household.
type RenameInput struct {
	HouseholdID uuid.UUID
	Name        string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError
	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddUsualItemInput holds the parameters for adding a usual item.
type AddUsualItemInput struct {
	HouseholdID uuid.UUID
	Name        string
}

// Validate checks all fields and collects all errors.
func (i AddUsualItemInput) Validate() error {
	var errs []domain.FieldError
	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}
	errs = appendNameErrors(errs, i.Name)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendNameErrors(errs []domain.FieldError, raw string) []domain.FieldError {
	name := domain.CleanName(raw)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}
