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

// GetByID returns a week plan by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, false, id)
}

// LockForUpdate returns the week plan and holds a row lock on it until the
// surrounding transaction ends. Writers to the plan's list serialize on it.
func (r *Repo) LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, true, id)
}

// GetByWeekStart returns the household's plan for a normalized week start.
func (r *Repo) GetByWeekStart(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error) {
	return r.getOne(ctx, sq.Eq{"household_id": householdID, "week_start": weekStart}, false, householdID)
}

func (r *Repo) getOne(ctx context.Context, where sq.Eq, lock bool, id uuid.UUID) (*domain.WeekPlan, error) {
	b := postgres.Builder.
		Select(weekPlanColumns...).
		From("week_plans").
		Where(where)
	if lock {
		b = b.Suffix("FOR UPDATE")
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row weekPlanRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "week_plan", id)
	}

	wp := toDomainWeekPlan(row)
	return &wp, nil
}

// CreateIfNotExists inserts wp unless the household already has a plan for
// the same week start, and returns whichever row is stored.
func (r *Repo) CreateIfNotExists(ctx context.Context, wp *domain.WeekPlan) (*domain.WeekPlan, error) {
	query, args, err := postgres.Builder.
		Insert("week_plans").
		Columns(weekPlanColumns...).
		Values(wp.ID, wp.HouseholdID, wp.WeekStart, wp.CreatedAt).
		Suffix("ON CONFLICT (household_id, week_start) DO NOTHING").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "week_plan", wp.ID)
	}
	return r.GetByWeekStart(ctx, wp.HouseholdID, wp.WeekStart)
}

// DeleteOlderThan removes the household's week plans starting before cutoff.
// Days, slot assignments, manual ingredients and list items cascade.
func (r *Repo) DeleteOlderThan(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	query, args, err := postgres.Builder.
		Delete("week_plans").
		Where(sq.Eq{"household_id": householdID}).
		Where(sq.Lt{"week_start": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.WrapError(err, "delete old week_plans")
	}
	return int(tag.RowsAffected()), nil
}
