package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// TagAll marks a meal as suitable for every slot.
const TagAll = "all"

// Meal is a household dish with its ingredients.
type Meal struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	Tags        string // comma-separated labels
	Recipe      *string
	Ingredients []Ingredient
	CreatedAt   time.Time
}

// TagList returns the meal's tags split and trimmed.
func (m Meal) TagList() []string {
	return SplitList(m.Tags)
}

// MatchesTag reports whether the meal should be offered for tag.
// Matching is a case-insensitive substring test on the tag string;
// meals tagged "all" match everything.
func (m Meal) MatchesTag(tag string) bool {
	tags := strings.ToLower(m.Tags)
	return strings.Contains(tags, strings.ToLower(strings.TrimSpace(tag))) ||
		strings.Contains(tags, TagAll)
}

// Ingredient is owned by exactly one of a Meal or a WeekPlan.
// FromManual marks week-plan level ingredients typed in by the user.
type Ingredient struct {
	ID         uuid.UUID
	Name       string
	FromManual bool
	MealID     *uuid.UUID
	WeekPlanID *uuid.UUID
	Position   int
	CreatedAt  time.Time
}

// HasExclusiveOwner reports whether exactly one owner is set.
func (i Ingredient) HasExclusiveOwner() bool {
	return (i.MealID == nil) != (i.WeekPlanID == nil)
}
