// Package shoppinglist implements the persisted shopping list using PostgreSQL.
package shoppinglist

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

// Repo provides shopping list item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new shopping list repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type itemRow struct {
	ID         uuid.UUID `db:"id"`
	WeekPlanID uuid.UUID `db:"week_plan_id"`
	Name       string    `db:"name"`
	OriginType string    `db:"origin_type"`
	OriginMeal *string   `db:"origin_meal"`
	OriginSlot *string   `db:"origin_slot"`
	OriginDate time.Time `db:"origin_date"`
	Ticked     bool      `db:"ticked"`
	CreatedAt  time.Time `db:"created_at"`

	SourceIngredientID *uuid.UUID `db:"source_ingredient_id"`
}

var itemColumns = []string{
	"id", "week_plan_id", "name", "origin_type", "origin_meal",
	"origin_slot", "origin_date", "ticked", "created_at", "source_ingredient_id",
}

// normalizedNameSQL mirrors domain.NormalizeName.
const normalizedNameSQL = `lower(regexp_replace(btrim(name), '\s+', ' ', 'g'))`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a list item by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder.
		Select(itemColumns...).
		From("shopping_list_items").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "shopping_list_item", id)
	}

	item := toDomainItem(row)
	return &item, nil
}

// ListByWeekPlan returns every item of a week plan ordered by origin date and name.
func (r *Repo) ListByWeekPlan(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	return r.list(ctx, sq.Eq{"week_plan_id": weekPlanID})
}

// ListTicked returns the ticked items of a week plan.
func (r *Repo) ListTicked(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	return r.list(ctx, sq.Eq{"week_plan_id": weekPlanID, "ticked": true})
}

func (r *Repo) list(ctx context.Context, where sq.Eq) ([]domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder.
		Select(itemColumns...).
		From("shopping_list_items").
		Where(where).
		OrderBy("origin_date ASC", "name ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list shopping_list_items")
	}

	items := make([]domain.ShoppingListItem, len(rows))
	for i, row := range rows {
		items[i] = toDomainItem(row)
	}
	return items, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a single item.
func (r *Repo) Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder.
		Insert("shopping_list_items").
		Columns(itemColumns...).
		Values(itemValues(*item)...).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "shopping_list_item", item.ID)
	}

	out := toDomainItem(row)
	return &out, nil
}

// CreateBatch inserts items in one statement.
func (r *Repo) CreateBatch(ctx context.Context, items []domain.ShoppingListItem) error {
	if len(items) == 0 {
		return nil
	}

	ins := postgres.Builder.Insert("shopping_list_items").Columns(itemColumns...)
	for _, it := range items {
		ins = ins.Values(itemValues(it)...)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.WrapError(err, "insert shopping_list_items")
	}
	return nil
}

// SetTicked stores an item's ticked flag and returns the updated item.
func (r *Repo) SetTicked(ctx context.Context, id uuid.UUID, ticked bool) (*domain.ShoppingListItem, error) {
	query, args, err := postgres.Builder.
		Update("shopping_list_items").
		Set("ticked", ticked).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(itemColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row itemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "shopping_list_item", id)
	}

	out := toDomainItem(row)
	return &out, nil
}

// SetTickedByName sets the ticked flag on every item of a week plan whose
// normalized name equals normalizedName.
func (r *Repo) SetTickedByName(ctx context.Context, weekPlanID uuid.UUID, normalizedName string, ticked bool) (int, error) {
	query, args, err := postgres.Builder.
		Update("shopping_list_items").
		Set("ticked", ticked).
		Where(sq.Eq{"week_plan_id": weekPlanID}).
		Where(sq.Expr(normalizedNameSQL+" = ?", normalizedName)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "shopping_list", weekPlanID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteStale removes the unticked items regeneration replaces: everything
// unticked except manual entries typed in by the user.
func (r *Repo) DeleteStale(ctx context.Context, weekPlanID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.
		Delete("shopping_list_items").
		Where(sq.Eq{"week_plan_id": weekPlanID, "ticked": false}).
		Where(sq.Or{
			sq.NotEq{"origin_type": string(domain.OriginManual)},
			sq.NotEq{"source_ingredient_id": nil},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "shopping_list", weekPlanID)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteByIDs removes the given items.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder.
		Delete("shopping_list_items").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.WrapError(err, "delete shopping_list_items")
	}
	return int(tag.RowsAffected()), nil
}

func itemValues(it domain.ShoppingListItem) []any {
	var slot *string
	if it.OriginSlot != nil {
		s := string(*it.OriginSlot)
		slot = &s
	}
	return []any{
		it.ID, it.WeekPlanID, it.Name, string(it.OriginType), it.OriginMeal,
		slot, it.OriginDate, it.Ticked, it.CreatedAt, it.SourceIngredientID,
	}
}

func toDomainItem(row itemRow) domain.ShoppingListItem {
	item := domain.ShoppingListItem{
		ID:         row.ID,
		WeekPlanID: row.WeekPlanID,
		Name:       row.Name,
		OriginType: domain.OriginType(row.OriginType),
		OriginMeal: row.OriginMeal,
		OriginDate: row.OriginDate,
		Ticked:     row.Ticked,
		CreatedAt:  row.CreatedAt,

		SourceIngredientID: row.SourceIngredientID,
	}
	if row.OriginSlot != nil {
		s := domain.Slot(*row.OriginSlot)
		item.OriginSlot = &s
	}
	return item
}
