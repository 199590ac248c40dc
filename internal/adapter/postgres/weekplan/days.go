package weekplan

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// GetDayByDate returns the day of a week plan stored for date. The caller
// passes the local start of day, which is what CreateDay stores.
func (r *Repo) GetDayByDate(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	days, err := r.selectDays(ctx, sq.Eq{"week_plan_id": weekPlanID, "date": date})
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("day %s %s: %w", weekPlanID, date.Format(time.DateOnly), domain.ErrNotFound)
	}
	return &days[0], nil
}

// GetDayByID returns a day with its slot assignments.
func (r *Repo) GetDayByID(ctx context.Context, id uuid.UUID) (*domain.Day, error) {
	days, err := r.selectDays(ctx, sq.Eq{"id": id})
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("day %s: %w", id, domain.ErrNotFound)
	}
	return &days[0], nil
}

// ListDays returns a week plan's days ordered by date.
func (r *Repo) ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error) {
	return r.selectDays(ctx, sq.Eq{"week_plan_id": weekPlanID})
}

// CreateDay inserts d unless the plan already has a day on the same date,
// and returns whichever row is stored.
func (r *Repo) CreateDay(ctx context.Context, d *domain.Day) (*domain.Day, error) {
	query, args, err := postgres.Builder.
		Insert("days").
		Columns(dayColumns...).
		Values(d.ID, d.WeekPlanID, d.Date,
			d.Breakfast.AlreadyHave, d.Lunch.AlreadyHave, d.Dinner.AlreadyHave, d.Other.AlreadyHave).
		Suffix("ON CONFLICT (week_plan_id, date) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "day", d.ID)
	}
	return r.GetDayByDate(ctx, d.WeekPlanID, d.Date)
}

// DeleteDay removes a day and its slot assignments.
func (r *Repo) DeleteDay(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("days").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "day", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("day %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddDayMeal appends mealID to a slot. Adding a meal already in the slot is a no-op.
func (r *Repo) AddDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Insert("day_meals").
		Columns("day_id", "slot", "meal_id", "position").
		Values(dayID, string(slot), mealID,
			sq.Expr("(SELECT COALESCE(MAX(position), -1) + 1 FROM day_meals WHERE day_id = ? AND slot = ?)", dayID, string(slot))).
		Suffix("ON CONFLICT (day_id, slot, meal_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "day_meal", dayID)
	}
	return nil
}

// RemoveDayMeal removes mealID from a slot. Removing an absent meal is a no-op.
func (r *Repo) RemoveDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("day_meals").
		Where(sq.Eq{"day_id": dayID, "slot": string(slot), "meal_id": mealID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "day_meal", dayID)
	}
	return nil
}

// ClearDayMeals empties every slot of a day. Already-have flags are kept.
func (r *Repo) ClearDayMeals(ctx context.Context, dayID uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("day_meals").
		Where(sq.Eq{"day_id": dayID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "day_meal", dayID)
	}
	return nil
}

// SetAlreadyHave stores the already-have flag of one slot.
func (r *Repo) SetAlreadyHave(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error {
	column, err := alreadyHaveColumn(slot)
	if err != nil {
		return err
	}

	query, args, err := postgres.Builder.
		Update("days").
		Set(column, value).
		Where(sq.Eq{"id": dayID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "day", dayID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("day %s: %w", dayID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) selectDays(ctx context.Context, where sq.Eq) ([]domain.Day, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Select(dayColumns...).
		From("days").
		Where(where).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []dayRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "select days")
	}
	if len(rows) == 0 {
		return []domain.Day{}, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	query, args, err = postgres.Builder.
		Select("day_id", "slot", "meal_id").
		From("day_meals").
		Where(sq.Eq{"day_id": ids}).
		OrderBy("day_id", "slot", "position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var mealRows []dayMealRow
	if err := pgxscan.Select(ctx, q, &mealRows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "select day_meals")
	}

	days := make([]domain.Day, len(rows))
	index := make(map[uuid.UUID]int, len(rows))
	for i, row := range rows {
		days[i] = toDomainDay(row)
		index[row.ID] = i
	}
	for _, mr := range mealRows {
		i, ok := index[mr.DayID]
		slot := domain.Slot(mr.Slot)
		if !ok || !slot.IsValid() {
			continue
		}
		a := days[i].Slot(slot)
		a.MealIDs = append(a.MealIDs, mr.MealID)
	}
	return days, nil
}
