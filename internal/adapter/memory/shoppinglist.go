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

// ShoppingListRepo stores shopping list items.
type ShoppingListRepo struct {
	s *Store
}

// GetByID returns a list item by id.
func (r *ShoppingListRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	var out domain.ShoppingListItem
	err := r.s.read(ctx, func(st *state) error {
		it, ok := st.items[id]
		if !ok {
			return fmt.Errorf("shopping_list_item %s: %w", id, domain.ErrNotFound)
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByWeekPlan returns a plan's items ordered by origin date and name.
func (r *ShoppingListRepo) ListByWeekPlan(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	return r.list(ctx, func(it domain.ShoppingListItem) bool { return it.WeekPlanID == weekPlanID })
}

// ListTicked returns a plan's ticked items.
func (r *ShoppingListRepo) ListTicked(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	return r.list(ctx, func(it domain.ShoppingListItem) bool { return it.WeekPlanID == weekPlanID && it.Ticked })
}

func (r *ShoppingListRepo) list(ctx context.Context, match func(domain.ShoppingListItem) bool) ([]domain.ShoppingListItem, error) {
	out := []domain.ShoppingListItem{}
	err := r.s.read(ctx, func(st *state) error {
		for _, it := range st.items {
			if match(it) {
				out = append(out, it)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.ShoppingListItem) int {
		return cmp.Or(
			a.OriginDate.Compare(b.OriginDate),
			strings.Compare(a.Name, b.Name),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})
	return out, nil
}

// Create stores a single item.
func (r *ShoppingListRepo) Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	if err := r.CreateBatch(ctx, []domain.ShoppingListItem{*item}); err != nil {
		return nil, err
	}
	out := *item
	return &out, nil
}

// CreateBatch stores items; either all are stored or none.
func (r *ShoppingListRepo) CreateBatch(ctx context.Context, items []domain.ShoppingListItem) error {
	return r.s.write(ctx, func(st *state) error {
		for _, it := range items {
			if _, ok := st.weekPlans[it.WeekPlanID]; !ok {
				return fmt.Errorf("shopping_list_item %s: %w", it.ID, domain.ErrNotFound)
			}
			if !it.OriginType.IsValid() {
				return fmt.Errorf("shopping_list_item %s: %w", it.ID, domain.ErrValidation)
			}
			if _, ok := st.items[it.ID]; ok {
				return fmt.Errorf("shopping_list_item %s: %w", it.ID, domain.ErrAlreadyExists)
			}
		}
		for _, it := range items {
			st.items[it.ID] = it
		}
		return nil
	})
}

// SetTicked stores an item's ticked flag.
func (r *ShoppingListRepo) SetTicked(ctx context.Context, id uuid.UUID, ticked bool) (*domain.ShoppingListItem, error) {
	var out domain.ShoppingListItem
	err := r.s.write(ctx, func(st *state) error {
		it, ok := st.items[id]
		if !ok {
			return fmt.Errorf("shopping_list_item %s: %w", id, domain.ErrNotFound)
		}
		it.Ticked = ticked
		st.items[id] = it
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetTickedByName sets the ticked flag on every plan item whose normalized
// name equals normalizedName.
func (r *ShoppingListRepo) SetTickedByName(ctx context.Context, weekPlanID uuid.UUID, normalizedName string, ticked bool) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, it := range st.items {
			if it.WeekPlanID == weekPlanID && domain.NormalizeName(it.Name) == normalizedName {
				it.Ticked = ticked
				st.items[id] = it
				n++
			}
		}
		return nil
	})
	return n, err
}

// DeleteStale removes a plan's unticked, non-manual items.
func (r *ShoppingListRepo) DeleteStale(ctx context.Context, weekPlanID uuid.UUID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, it := range st.items {
			if it.WeekPlanID == weekPlanID && it.IsStale() {
				delete(st.items, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// DeleteByIDs removes the given items.
func (r *ShoppingListRepo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for _, id := range ids {
			if _, ok := st.items[id]; ok {
				delete(st.items, id)
				n++
			}
		}
		return nil
	})
	return n, err
}
