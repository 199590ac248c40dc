package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// HouseholdRepo stores households and their usual items.
type HouseholdRepo struct {
	s *Store
}

// GetFirst returns the oldest household or domain.ErrNotFound.
func (r *HouseholdRepo) GetFirst(ctx context.Context) (*domain.Household, error) {
	var out *domain.Household
	err := r.s.read(ctx, func(st *state) error {
		for _, h := range st.households {
			if out == nil || h.CreatedAt.Before(out.CreatedAt) ||
				(h.CreatedAt.Equal(out.CreatedAt) && h.ID.String() < out.ID.String()) {
				out = &h
			}
		}
		if out == nil {
			return fmt.Errorf("get first household: %w", domain.ErrNotFound)
		}
		return nil
	})
	return out, err
}

// GetByID returns a household by id.
func (r *HouseholdRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	var out domain.Household
	err := r.s.read(ctx, func(st *state) error {
		h, ok := st.households[id]
		if !ok {
			return fmt.Errorf("household %s: %w", id, domain.ErrNotFound)
		}
		out = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Create stores a household.
func (r *HouseholdRepo) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	out := *h
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.households[h.ID]; ok {
			return fmt.Errorf("household %s: %w", h.ID, domain.ErrAlreadyExists)
		}
		st.households[h.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateName renames a household.
func (r *HouseholdRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error) {
	var out domain.Household
	err := r.s.write(ctx, func(st *state) error {
		h, ok := st.households[id]
		if !ok {
			return fmt.Errorf("household %s: %w", id, domain.ErrNotFound)
		}
		h.Name = name
		st.households[id] = h
		out = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LockCreation is a no-op: transactions already run one at a time.
func (r *HouseholdRepo) LockCreation(context.Context) error {
	return nil
}

// ListUsualItems returns a household's usual items ordered by name.
func (r *HouseholdRepo) ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error) {
	out := []domain.UsualItem{}
	err := r.s.read(ctx, func(st *state) error {
		for _, it := range st.usualItems {
			if it.HouseholdID == householdID {
				out = append(out, it)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.UsualItem) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return out, nil
}

// CreateUsualItem stores a usual item.
func (r *HouseholdRepo) CreateUsualItem(ctx context.Context, item *domain.UsualItem) (*domain.UsualItem, error) {
	out := *item
	err := r.s.write(ctx, func(st *state) error {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("usual_item %s: %w", item.ID, domain.ErrValidation)
		}
		if _, ok := st.households[item.HouseholdID]; !ok {
			return fmt.Errorf("usual_item %s: %w", item.ID, domain.ErrNotFound)
		}
		st.usualItems[item.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUsualItem removes a usual item of the household.
func (r *HouseholdRepo) DeleteUsualItem(ctx context.Context, householdID, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		it, ok := st.usualItems[id]
		if !ok || it.HouseholdID != householdID {
			return fmt.Errorf("usual_item %s: %w", id, domain.ErrNotFound)
		}
		delete(st.usualItems, id)
		return nil
	})
}
