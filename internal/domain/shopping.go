package domain

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is a freshly computed shopping-list entry prior to reconciliation.
type Candidate struct {
	Name       string
	OriginType OriginType
	OriginMeal *string
	OriginSlot *Slot
	OriginDate time.Time
	// SourceIngredientID is the week-level manual ingredient the candidate
	// was derived from, nil otherwise.
	SourceIngredientID *uuid.UUID
}

// ShoppingListItem is the persisted record of what is currently on the list.
type ShoppingListItem struct {
	ID         uuid.UUID
	WeekPlanID uuid.UUID
	Name       string
	OriginType OriginType
	OriginMeal *string
	OriginSlot *Slot
	OriginDate time.Time
	Ticked     bool
	CreatedAt  time.Time

	SourceIngredientID *uuid.UUID
}

// IsStale reports whether regeneration replaces this item: unticked items
// that were not typed in by the user. Manual items derived from a week-level
// ingredient are regenerated like any other.
func (i ShoppingListItem) IsStale() bool {
	if i.Ticked {
		return false
	}
	return i.OriginType != OriginManual || i.SourceIngredientID != nil
}

// NewShoppingListItem materializes a candidate as an unticked item.
func NewShoppingListItem(weekPlanID uuid.UUID, c Candidate, now time.Time) ShoppingListItem {
	return ShoppingListItem{
		ID:         uuid.New(),
		WeekPlanID: weekPlanID,
		Name:       c.Name,
		OriginType: c.OriginType,
		OriginMeal: c.OriginMeal,
		OriginSlot: c.OriginSlot,
		OriginDate: c.OriginDate,
		Ticked:     false,
		CreatedAt:  now,

		SourceIngredientID: c.SourceIngredientID,
	}
}

// ItemGroup collects same-name items for display. Grouping never merges entities.
type ItemGroup struct {
	Key   string
	Name  string
	Items []ShoppingListItem
}

// AllTicked reports whether every item in the group is ticked.
func (g ItemGroup) AllTicked() bool {
	for _, it := range g.Items {
		if !it.Ticked {
			return false
		}
	}
	return len(g.Items) > 0
}

// ShoppingList is the read model of a week plan's list.
type ShoppingList struct {
	WeekPlanID uuid.UUID
	ToBuy      []ShoppingListItem
	Ticked     []ShoppingListItem
	Groups     []ItemGroup
}
