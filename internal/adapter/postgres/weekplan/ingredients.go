package weekplan

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/adapter/postgres"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Manual slot ingredients
// ---------------------------------------------------------------------------

// CreateSlotIngredients inserts manual slot ingredients in one statement.
func (r *Repo) CreateSlotIngredients(ctx context.Context, items []domain.ManualSlotIngredient) error {
	if len(items) == 0 {
		return nil
	}

	ins := postgres.Builder.Insert("manual_slot_ingredients").Columns(slotIngredientColumns...)
	for _, it := range items {
		ins = ins.Values(it.ID, it.WeekPlanID, it.Name, string(it.Slot), it.Date, it.CreatedAt)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "manual_slot_ingredient", items[0].WeekPlanID)
	}
	return nil
}

// ListSlotIngredients returns a week plan's manual slot ingredients ordered
// by date, then by entry time.
func (r *Repo) ListSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error) {
	query, args, err := postgres.Builder.
		Select(slotIngredientColumns...).
		From("manual_slot_ingredients").
		Where(sq.Eq{"week_plan_id": weekPlanID}).
		OrderBy("date ASC", "created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []slotIngredientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list manual_slot_ingredients")
	}

	out := make([]domain.ManualSlotIngredient, len(rows))
	for i, row := range rows {
		out[i] = toDomainSlotIngredient(row)
	}
	return out, nil
}

// DeleteSlotIngredient removes one manual slot ingredient.
func (r *Repo) DeleteSlotIngredient(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("manual_slot_ingredients").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "manual_slot_ingredient", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("manual_slot_ingredient %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteSlotIngredientsBefore removes the household's manual slot
// ingredients dated before cutoff, whatever week plan holds them.
func (r *Repo) DeleteSlotIngredientsBefore(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	// Subqueries keep "?" placeholders; the outer builder numbers them.
	plans := sq.Select("id").
		From("week_plans").
		Where(sq.Eq{"household_id": householdID})

	query, args, err := postgres.Builder.
		Delete("manual_slot_ingredients").
		Where(sq.Lt{"date": cutoff}).
		Where(sq.Expr("week_plan_id IN (?)", plans)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.WrapError(err, "delete old manual_slot_ingredients")
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Week plan level manual ingredients
// ---------------------------------------------------------------------------

// CreateManualIngredient inserts an ingredient owned by a week plan.
func (r *Repo) CreateManualIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	query, args, err := postgres.Builder.
		Insert("ingredients").
		Columns(ingredientColumns...).
		Values(ing.ID, ing.Name, true, nil, ing.WeekPlanID,
			sq.Expr("(SELECT COALESCE(MAX(position), -1) + 1 FROM ingredients WHERE week_plan_id = ?)", ing.WeekPlanID),
			ing.CreatedAt).
		Suffix("RETURNING " + strings.Join(ingredientColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row ingredientRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "ingredient", ing.ID)
	}

	out := toDomainIngredient(row)
	return &out, nil
}

// ListManualIngredients returns a week plan's manual ingredients in entry order.
func (r *Repo) ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error) {
	query, args, err := postgres.Builder.
		Select(ingredientColumns...).
		From("ingredients").
		Where(sq.Eq{"week_plan_id": weekPlanID, "from_manual": true}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []ingredientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list manual ingredients")
	}

	out := make([]domain.Ingredient, len(rows))
	for i, row := range rows {
		out[i] = toDomainIngredient(row)
	}
	return out, nil
}

// DeleteManualIngredient removes a week plan level ingredient.
func (r *Repo) DeleteManualIngredient(ctx context.Context, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("ingredients").
		Where(sq.Eq{"id": id}).
		Where(sq.NotEq{"week_plan_id": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "ingredient", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
