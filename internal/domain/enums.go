package domain

import (
	"fmt"
	"strings"
)

// Slot is a meal-time category within a Day.
type Slot string

const (
	SlotBreakfast Slot = "breakfast"
	SlotLunch     Slot = "lunch"
	SlotDinner    Slot = "dinner"
	SlotOther     Slot = "other"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotBreakfast, SlotLunch, SlotDinner, SlotOther}

func (s Slot) String() string { return string(s) }

func (s Slot) IsValid() bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotDinner, SlotOther:
		return true
	}
	return false
}

// ParseSlot converts a case-insensitive slot label into a Slot.
// Unknown labels are a validation error, never a silent default.
func ParseSlot(raw string) (Slot, error) {
	s := Slot(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", NewValidationError("slot", fmt.Sprintf("unknown slot %q", raw))
	}
	return s, nil
}

// OriginType is the provenance tag of a shopping-list item.
type OriginType string

const (
	OriginUsual      OriginType = "usual"
	OriginMeal       OriginType = "meal"
	OriginManualSlot OriginType = "manual_slot"
	OriginManual     OriginType = "manual"
)

func (o OriginType) String() string { return string(o) }

func (o OriginType) IsValid() bool {
	switch o {
	case OriginUsual, OriginMeal, OriginManualSlot, OriginManual:
		return true
	}
	return false
}

// IsSlotBound reports whether items of this origin belong to a day slot and
// therefore mark that slot as already-have when cleared.
func (o OriginType) IsSlotBound() bool {
	switch o {
	case OriginMeal, OriginManualSlot:
		return true
	case OriginUsual, OriginManual:
		return false
	}
	return false
}
