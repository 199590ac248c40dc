package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// WeekPlanRepo stores week plans, days and week plan level ingredients.
type WeekPlanRepo struct {
	s *Store
}

// ---------------------------------------------------------------------------
// Week plans
// ---------------------------------------------------------------------------

// GetByID returns a week plan by id.
func (r *WeekPlanRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error) {
	var out domain.WeekPlan
	err := r.s.read(ctx, func(st *state) error {
		wp, ok := st.weekPlans[id]
		if !ok {
			return fmt.Errorf("week_plan %s: %w", id, domain.ErrNotFound)
		}
		out = wp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// LockForUpdate returns the week plan. The surrounding transaction already
// has exclusive access to the store.
func (r *WeekPlanRepo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error) {
	return r.GetByID(ctx, id)
}

// GetByWeekStart returns the household's plan starting at weekStart.
func (r *WeekPlanRepo) GetByWeekStart(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error) {
	var out *domain.WeekPlan
	err := r.s.read(ctx, func(st *state) error {
		out = findWeekPlan(st, householdID, weekStart)
		if out == nil {
			return fmt.Errorf("week_plan %s: %w", householdID, domain.ErrNotFound)
		}
		return nil
	})
	return out, err
}

// CreateIfNotExists stores wp unless the household already has a plan for
// the same week start, and returns whichever is stored.
func (r *WeekPlanRepo) CreateIfNotExists(ctx context.Context, wp *domain.WeekPlan) (*domain.WeekPlan, error) {
	var out *domain.WeekPlan
	err := r.s.write(ctx, func(st *state) error {
		if existing := findWeekPlan(st, wp.HouseholdID, wp.WeekStart); existing != nil {
			out = existing
			return nil
		}
		if _, ok := st.households[wp.HouseholdID]; !ok {
			return fmt.Errorf("week_plan %s: %w", wp.ID, domain.ErrNotFound)
		}
		st.weekPlans[wp.ID] = *wp
		stored := *wp
		out = &stored
		return nil
	})
	return out, err
}

// DeleteOlderThan removes the household's week plans starting before cutoff
// together with everything they own.
func (r *WeekPlanRepo) DeleteOlderThan(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, wp := range st.weekPlans {
			if wp.HouseholdID == householdID && wp.WeekStart.Before(cutoff) {
				deleteWeekPlan(st, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

func findWeekPlan(st *state, householdID uuid.UUID, weekStart time.Time) *domain.WeekPlan {
	for _, wp := range st.weekPlans {
		if wp.HouseholdID == householdID && wp.WeekStart.Equal(weekStart) {
			return &wp
		}
	}
	return nil
}

func deleteWeekPlan(st *state, id uuid.UUID) {
	delete(st.weekPlans, id)
	for dayID, d := range st.days {
		if d.WeekPlanID == id {
			delete(st.days, dayID)
		}
	}
	for sid, si := range st.slotIngredients {
		if si.WeekPlanID == id {
			delete(st.slotIngredients, sid)
		}
	}
	for iid, ing := range st.ingredients {
		if ing.WeekPlanID != nil && *ing.WeekPlanID == id {
			delete(st.ingredients, iid)
		}
	}
	for itemID, it := range st.items {
		if it.WeekPlanID == id {
			delete(st.items, itemID)
		}
	}
}

// ---------------------------------------------------------------------------
// Days
// ---------------------------------------------------------------------------

// GetDayByDate returns the plan's day stored for date.
func (r *WeekPlanRepo) GetDayByDate(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	var out *domain.Day
	err := r.s.read(ctx, func(st *state) error {
		out = findDay(st, weekPlanID, date)
		if out == nil {
			return fmt.Errorf("day %s %s: %w", weekPlanID, date.Format(time.DateOnly), domain.ErrNotFound)
		}
		return nil
	})
	return out, err
}

// GetDayByID returns a day by id.
func (r *WeekPlanRepo) GetDayByID(ctx context.Context, id uuid.UUID) (*domain.Day, error) {
	var out domain.Day
	err := r.s.read(ctx, func(st *state) error {
		d, ok := st.days[id]
		if !ok {
			return fmt.Errorf("day %s: %w", id, domain.ErrNotFound)
		}
		out = cloneDay(d)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDays returns a week plan's days ordered by date.
func (r *WeekPlanRepo) ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error) {
	out := []domain.Day{}
	err := r.s.read(ctx, func(st *state) error {
		for _, d := range st.days {
			if d.WeekPlanID == weekPlanID {
				out = append(out, cloneDay(d))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.Day) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// CreateDay stores d unless the plan already has a day on the same date,
// and returns whichever is stored.
func (r *WeekPlanRepo) CreateDay(ctx context.Context, d *domain.Day) (*domain.Day, error) {
	var out *domain.Day
	err := r.s.write(ctx, func(st *state) error {
		if existing := findDay(st, d.WeekPlanID, d.Date); existing != nil {
			out = existing
			return nil
		}
		if _, ok := st.weekPlans[d.WeekPlanID]; !ok {
			return fmt.Errorf("day %s: %w", d.ID, domain.ErrNotFound)
		}
		stored := cloneDay(*d)
		st.days[d.ID] = stored
		c := cloneDay(stored)
		out = &c
		return nil
	})
	return out, err
}

// DeleteDay removes a day.
func (r *WeekPlanRepo) DeleteDay(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.days[id]; !ok {
			return fmt.Errorf("day %s: %w", id, domain.ErrNotFound)
		}
		delete(st.days, id)
		return nil
	})
}

// AddDayMeal appends mealID to a slot unless it is already there.
func (r *WeekPlanRepo) AddDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	return r.updateDay(ctx, dayID, func(st *state, d *domain.Day) error {
		if _, ok := st.meals[mealID]; !ok {
			return fmt.Errorf("meal %s: %w", mealID, domain.ErrNotFound)
		}
		a := d.Slot(slot)
		if !a.HasMeal(mealID) {
			a.MealIDs = append(a.MealIDs, mealID)
		}
		return nil
	})
}

// RemoveDayMeal removes mealID from a slot.
func (r *WeekPlanRepo) RemoveDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	return r.updateDay(ctx, dayID, func(_ *state, d *domain.Day) error {
		a := d.Slot(slot)
		a.MealIDs = slices.DeleteFunc(a.MealIDs, func(id uuid.UUID) bool { return id == mealID })
		return nil
	})
}

// ClearDayMeals empties every slot of a day. Flags are kept.
func (r *WeekPlanRepo) ClearDayMeals(ctx context.Context, dayID uuid.UUID) error {
	return r.updateDay(ctx, dayID, func(_ *state, d *domain.Day) error {
		for _, slot := range domain.Slots {
			d.Slot(slot).MealIDs = nil
		}
		return nil
	})
}

// SetAlreadyHave stores the already-have flag of one slot.
func (r *WeekPlanRepo) SetAlreadyHave(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error {
	if !slot.IsValid() {
		return domain.NewValidationError("slot", fmt.Sprintf("unknown slot %q", slot))
	}
	return r.updateDay(ctx, dayID, func(_ *state, d *domain.Day) error {
		d.Slot(slot).AlreadyHave = value
		return nil
	})
}

func (r *WeekPlanRepo) updateDay(ctx context.Context, dayID uuid.UUID, fn func(st *state, d *domain.Day) error) error {
	return r.s.write(ctx, func(st *state) error {
		stored, ok := st.days[dayID]
		if !ok {
			return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
		}
		d := cloneDay(stored)
		if err := fn(st, &d); err != nil {
			return err
		}
		st.days[dayID] = d
		return nil
	})
}

func findDay(st *state, weekPlanID uuid.UUID, date time.Time) *domain.Day {
	for _, d := range st.days {
		if d.WeekPlanID == weekPlanID && d.Date.Equal(date) {
			c := cloneDay(d)
			return &c
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Manual slot ingredients
// ---------------------------------------------------------------------------

// CreateSlotIngredients stores manual slot ingredients.
func (r *WeekPlanRepo) CreateSlotIngredients(ctx context.Context, items []domain.ManualSlotIngredient) error {
	return r.s.write(ctx, func(st *state) error {
		for _, it := range items {
			if _, ok := st.weekPlans[it.WeekPlanID]; !ok {
				return fmt.Errorf("manual_slot_ingredient %s: %w", it.ID, domain.ErrNotFound)
			}
			if strings.TrimSpace(it.Name) == "" || !it.Slot.IsValid() {
				return fmt.Errorf("manual_slot_ingredient %s: %w", it.ID, domain.ErrValidation)
			}
		}
		for _, it := range items {
			st.slotIngredients[it.ID] = it
		}
		return nil
	})
}

// ListSlotIngredients returns a plan's manual slot ingredients ordered by
// date, then by entry time.
func (r *WeekPlanRepo) ListSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error) {
	out := []domain.ManualSlotIngredient{}
	err := r.s.read(ctx, func(st *state) error {
		for _, it := range st.slotIngredients {
			if it.WeekPlanID == weekPlanID {
				out = append(out, it)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(out, func(a, b domain.ManualSlotIngredient) int {
		return cmp.Or(
			a.Date.Compare(b.Date),
			a.CreatedAt.Compare(b.CreatedAt),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return out, nil
}

// DeleteSlotIngredient removes one manual slot ingredient.
func (r *WeekPlanRepo) DeleteSlotIngredient(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		if _, ok := st.slotIngredients[id]; !ok {
			return fmt.Errorf("manual_slot_ingredient %s: %w", id, domain.ErrNotFound)
		}
		delete(st.slotIngredients, id)
		return nil
	})
}

// DeleteSlotIngredientsBefore removes the household's manual slot
// ingredients dated before cutoff.
func (r *WeekPlanRepo) DeleteSlotIngredientsBefore(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, it := range st.slotIngredients {
			wp, ok := st.weekPlans[it.WeekPlanID]
			if ok && wp.HouseholdID == householdID && it.Date.Before(cutoff) {
				delete(st.slotIngredients, id)
				n++
			}
		}
		return nil
	})
	return n, err
}

// ---------------------------------------------------------------------------
// Week plan level manual ingredients
// ---------------------------------------------------------------------------

// CreateManualIngredient stores an ingredient owned by a week plan.
func (r *WeekPlanRepo) CreateManualIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	out := *ing
	err := r.s.write(ctx, func(st *state) error {
		if !ing.HasExclusiveOwner() || ing.WeekPlanID == nil {
			return fmt.Errorf("ingredient %s: %w", ing.ID, domain.ErrValidation)
		}
		if _, ok := st.weekPlans[*ing.WeekPlanID]; !ok {
			return fmt.Errorf("ingredient %s: %w", ing.ID, domain.ErrNotFound)
		}
		next := 0
		for _, other := range st.ingredients {
			if other.WeekPlanID != nil && *other.WeekPlanID == *ing.WeekPlanID && other.Position >= next {
				next = other.Position + 1
			}
		}
		out.FromManual = true
		out.Position = next
		st.ingredients[ing.ID] = out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListManualIngredients returns a plan's manual ingredients in entry order.
func (r *WeekPlanRepo) ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error) {
	out := []domain.Ingredient{}
	err := r.s.read(ctx, func(st *state) error {
		for _, ing := range st.ingredients {
			if ing.FromManual && ing.WeekPlanID != nil && *ing.WeekPlanID == weekPlanID {
				out = append(out, ing)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sortIngredients(out)
	return out, nil
}

// DeleteManualIngredient removes a week plan level ingredient.
func (r *WeekPlanRepo) DeleteManualIngredient(ctx context.Context, id uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		ing, ok := st.ingredients[id]
		if !ok || ing.WeekPlanID == nil {
			return fmt.Errorf("ingredient %s: %w", id, domain.ErrNotFound)
		}
		delete(st.ingredients, id)
		return nil
	})
}
