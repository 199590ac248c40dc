package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultHouseholdName is used when a household is created implicitly.
const DefaultHouseholdName = "My Household"

// Household owns usual items, meals and week plans.
type Household struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// UsualItem is a standing grocery item included in every generated list.
type UsualItem struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	Name        string
	CreatedAt   time.Time
}
