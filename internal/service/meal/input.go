package meal

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

const (
	maxNameLength   = 200
	maxRecipeLength = 20000
	maxIngredients  = 100
	maxTagLength    = 50
	maxTagsPerMeal  = 20
)

// CreateMealInput holds the parameters for creating a meal.
type CreateMealInput struct {
	HouseholdID uuid.UUID
	Name        string
	Tags        []string
	Recipe      *string
	Ingredients []string
}

// Validate checks all fields and collects all errors.
func (i CreateMealInput) Validate() error {
	var errs []domain.FieldError

	if i.HouseholdID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "household_id", Message: "required"})
	}

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	ingredients := cleanIngredients(i.Ingredients)
	if len(ingredients) == 0 {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "at least one ingredient required"})
	}
	if len(ingredients) > maxIngredients {
		errs = append(errs, domain.FieldError{Field: "ingredients", Message: "max 100 ingredients"})
	}
	for _, ing := range ingredients {
		if len(ing) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: "ingredients", Message: "ingredient max 200 characters"})
			break
		}
	}

	tags := cleanTags(i.Tags)
	if len(tags) > maxTagsPerMeal {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "max 20 tags"})
	}
	for _, tag := range tags {
		if len(tag) > maxTagLength {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag max 50 characters"})
			break
		}
	}

	if i.Recipe != nil && len(*i.Recipe) > maxRecipeLength {
		errs = append(errs, domain.FieldError{Field: "recipe", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// cleanIngredients trims names and drops empty entries.
func cleanIngredients(raw []string) []string {
	var out []string
	for _, name := range raw {
		if name = domain.CleanName(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// cleanTags trims tags, drops empties and splits any comma-joined entry,
// since the stored form is a single comma-separated string.
func cleanTags(raw []string) []string {
	var out []string
	for _, tag := range raw {
		out = append(out, domain.SplitList(tag)...)
	}
	return out
}
