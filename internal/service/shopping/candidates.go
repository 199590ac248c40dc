package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// PlanSnapshot is everything candidate computation reads for one week plan.
type PlanSnapshot struct {
	UsualItems        []domain.UsualItem
	Days              []domain.Day
	Meals             map[uuid.UUID]domain.Meal
	SlotIngredients   []domain.ManualSlotIngredient
	ManualIngredients []domain.Ingredient
}

// BuildCandidates computes the candidate list for a snapshot. It emits, in
// order: one usual candidate per usual item; for every day and slot without
// the already-have flag, one meal candidate per ingredient of each assigned
// meal; one manual_slot candidate per slot ingredient whose day slot is not
// flagged; one manual candidate per week-level manual ingredient.
// Same-name candidates are kept apart.
func BuildCandidates(snap PlanSnapshot, now time.Time, loc *time.Location) []domain.Candidate {
	var out []domain.Candidate

	for _, u := range snap.UsualItems {
		out = append(out, domain.Candidate{
			Name:       u.Name,
			OriginType: domain.OriginUsual,
			OriginDate: now,
		})
	}

	for _, day := range snap.Days {
		for _, slot := range domain.Slots {
			assignment := day.Slot(slot)
			if assignment.AlreadyHave {
				continue
			}
			for _, mealID := range assignment.MealIDs {
				meal, ok := snap.Meals[mealID]
				if !ok {
					continue
				}
				for _, ing := range meal.Ingredients {
					out = append(out, domain.Candidate{
						Name:       ing.Name,
						OriginType: domain.OriginMeal,
						OriginMeal: ptr(meal.Name),
						OriginSlot: ptr(slot),
						OriginDate: day.Date,
					})
				}
			}
		}
	}

	for _, si := range snap.SlotIngredients {
		if slotSuppressed(snap.Days, si.Date, si.Slot, loc) {
			continue
		}
		out = append(out, domain.Candidate{
			Name:       si.Name,
			OriginType: domain.OriginManualSlot,
			OriginSlot: ptr(si.Slot),
			OriginDate: si.Date,
		})
	}

	for _, ing := range snap.ManualIngredients {
		if !ing.FromManual || ing.WeekPlanID == nil {
			continue
		}
		out = append(out, domain.Candidate{
			Name:               ing.Name,
			OriginType:         domain.OriginManual,
			OriginDate:         now,
			SourceIngredientID: ptr(ing.ID),
		})
	}

	return out
}

// slotSuppressed reports whether the day on date has the slot flagged.
func slotSuppressed(days []domain.Day, date time.Time, slot domain.Slot, loc *time.Location) bool {
	for i := range days {
		if domain.SameDay(days[i].Date, date, loc) {
			return days[i].AlreadyHave(slot)
		}
	}
	return false
}

// ComputeCandidates loads a week plan's inputs and computes its candidates.
func (s *Service) ComputeCandidates(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Candidate, error) {
	wp, err := s.weekPlans.GetByID(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("get week plan: %w", err)
	}
	snap, err := s.loadSnapshot(ctx, wp)
	if err != nil {
		return nil, err
	}
	return BuildCandidates(*snap, s.clock().UTC(), s.loc), nil
}

func (s *Service) loadSnapshot(ctx context.Context, wp *domain.WeekPlan) (*PlanSnapshot, error) {
	usual, err := s.households.ListUsualItems(ctx, wp.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("list usual items: %w", err)
	}
	days, err := s.weekPlans.ListDays(ctx, wp.ID)
	if err != nil {
		return nil, fmt.Errorf("list days: %w", err)
	}
	slotIngredients, err := s.weekPlans.ListSlotIngredients(ctx, wp.ID)
	if err != nil {
		return nil, fmt.Errorf("list slot ingredients: %w", err)
	}
	manual, err := s.weekPlans.ListManualIngredients(ctx, wp.ID)
	if err != nil {
		return nil, fmt.Errorf("list manual ingredients: %w", err)
	}

	var mealIDs []uuid.UUID
	for _, d := range days {
		for _, slot := range domain.Slots {
			mealIDs = append(mealIDs, d.Slot(slot).MealIDs...)
		}
	}
	meals := make(map[uuid.UUID]domain.Meal)
	if len(mealIDs) > 0 {
		list, err := s.meals.GetByIDs(ctx, mealIDs)
		if err != nil {
			return nil, fmt.Errorf("get meals: %w", err)
		}
		for _, m := range list {
			meals[m.ID] = m
		}
	}

	return &PlanSnapshot{
		UsualItems:        usual,
		Days:              days,
		Meals:             meals,
		SlotIngredients:   slotIngredients,
		ManualIngredients: manual,
	}, nil
}

func ptr[T any](v T) *T { return &v }
