package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// WeekPlan is a household's plan for the 7 days starting at WeekStart (a Monday, 00:00).
type WeekPlan struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	WeekStart   time.Time
	CreatedAt   time.Time
}

// SlotAssignment holds the meals planned for one slot and its already-have flag.
type SlotAssignment struct {
	MealIDs     []uuid.UUID
	AlreadyHave bool
}

// HasMeal reports whether mealID is assigned to the slot.
func (a SlotAssignment) HasMeal(mealID uuid.UUID) bool {
	return slices.Contains(a.MealIDs, mealID)
}

// Day is one calendar date of a WeekPlan.
type Day struct {
	ID         uuid.UUID
	WeekPlanID uuid.UUID
	Date       time.Time

	Breakfast SlotAssignment
	Lunch     SlotAssignment
	Dinner    SlotAssignment
	Other     SlotAssignment
}

// Slot returns the assignment for s. Slots are validated at the input
// boundary, so an unknown value here is a programming error.
func (d *Day) Slot(s Slot) *SlotAssignment {
	switch s {
	case SlotBreakfast:
		return &d.Breakfast
	case SlotLunch:
		return &d.Lunch
	case SlotDinner:
		return &d.Dinner
	case SlotOther:
		return &d.Other
	}
	panic(fmt.Sprintf("domain: unknown slot %q", s))
}

// AlreadyHave reports the already-have flag of slot s.
func (d *Day) AlreadyHave(s Slot) bool {
	return d.Slot(s).AlreadyHave
}

// HasAnyAlreadyHave reports whether any slot of the day is flagged.
func (d *Day) HasAnyAlreadyHave() bool {
	return d.Breakfast.AlreadyHave || d.Lunch.AlreadyHave || d.Dinner.AlreadyHave || d.Other.AlreadyHave
}

// ManualSlotIngredient is a hand-entered ingredient tied to a day and slot.
type ManualSlotIngredient struct {
	ID         uuid.UUID
	WeekPlanID uuid.UUID
	Name       string
	Slot       Slot
	Date       time.Time
	CreatedAt  time.Time
}

// CleanupResult reports what the retention policy removed.
type CleanupResult struct {
	Cutoff                 time.Time
	WeekPlansDeleted       int
	SlotIngredientsDeleted int
}
