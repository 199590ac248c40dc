// Package meal implements the meal repository using PostgreSQL.
// Meal ingredients live in the shared ingredients table with meal_id set.
package meal

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

// Repo provides meal persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new meal repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type mealRow struct {
	ID          uuid.UUID `db:"id"`
	HouseholdID uuid.UUID `db:"household_id"`
	Name        string    `db:"name"`
	Tags        string    `db:"tags"`
	Recipe      *string   `db:"recipe"`
	CreatedAt   time.Time `db:"created_at"`
}

type ingredientRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	FromManual bool       `db:"from_manual"`
	MealID     *uuid.UUID `db:"meal_id"`
	WeekPlanID *uuid.UUID `db:"week_plan_id"`
	Position   int        `db:"position"`
	CreatedAt  time.Time  `db:"created_at"`
}

var (
	mealColumns       = []string{"id", "household_id", "name", "tags", "recipe", "created_at"}
	ingredientColumns = []string{"id", "name", "from_manual", "meal_id", "week_plan_id", "position", "created_at"}
)

// Create inserts a meal and its ingredients. Call inside RunInTx so both
// inserts commit together.
func (r *Repo) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	query, args, err := postgres.Builder.
		Insert("meals").
		Columns(mealColumns...).
		Values(m.ID, m.HouseholdID, m.Name, m.Tags, m.Recipe, m.CreatedAt).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	if _, err := q.Exec(ctx, query, args...); err != nil {
		return nil, postgres.MapError(err, "meal", m.ID)
	}

	if len(m.Ingredients) > 0 {
		ins := postgres.Builder.Insert("ingredients").Columns(ingredientColumns...)
		for _, ing := range m.Ingredients {
			ins = ins.Values(ing.ID, ing.Name, false, m.ID, nil, ing.Position, ing.CreatedAt)
		}
		query, args, err = ins.ToSql()
		if err != nil {
			return nil, fmt.Errorf("build query: %w", err)
		}
		if _, err := q.Exec(ctx, query, args...); err != nil {
			return nil, postgres.MapError(err, "meal ingredients", m.ID)
		}
	}

	out := *m
	return &out, nil
}

// GetByID returns a household's meal with its ingredients.
func (r *Repo) GetByID(ctx context.Context, householdID, id uuid.UUID) (*domain.Meal, error) {
	query, args, err := postgres.Builder.
		Select(mealColumns...).
		From("meals").
		Where(sq.Eq{"id": id, "household_id": householdID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row mealRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "meal", id)
	}

	meals, err := r.attachIngredients(ctx, []mealRow{row})
	if err != nil {
		return nil, err
	}
	return &meals[0], nil
}

// GetByIDs returns the meals with the given ids. Missing ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error) {
	if len(ids) == 0 {
		return []domain.Meal{}, nil
	}

	query, args, err := postgres.Builder.
		Select(mealColumns...).
		From("meals").
		Where(sq.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []mealRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "get meals by ids")
	}
	return r.attachIngredients(ctx, rows)
}

// ListByHousehold returns all meals of a household ordered by name.
func (r *Repo) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error) {
	query, args, err := postgres.Builder.
		Select(mealColumns...).
		From("meals").
		Where(sq.Eq{"household_id": householdID}).
		OrderBy("lower(name) ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []mealRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list meals")
	}
	return r.attachIngredients(ctx, rows)
}

// Delete removes a meal. Its ingredients and slot assignments go with it
// through ON DELETE CASCADE.
func (r *Repo) Delete(ctx context.Context, householdID, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("meals").
		Where(sq.Eq{"id": id, "household_id": householdID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "meal", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meal %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) attachIngredients(ctx context.Context, rows []mealRow) ([]domain.Meal, error) {
	meals := make([]domain.Meal, len(rows))
	if len(rows) == 0 {
		return meals, nil
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	query, args, err := postgres.Builder.
		Select(ingredientColumns...).
		From("ingredients").
		Where(sq.Eq{"meal_id": ids}).
		OrderBy("meal_id", "position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var ingRows []ingredientRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ingRows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list meal ingredients")
	}

	byMeal := make(map[uuid.UUID][]domain.Ingredient, len(rows))
	for _, ir := range ingRows {
		if ir.MealID == nil {
			continue
		}
		byMeal[*ir.MealID] = append(byMeal[*ir.MealID], toDomainIngredient(ir))
	}

	for i, row := range rows {
		meals[i] = domain.Meal{
			ID:          row.ID,
			HouseholdID: row.HouseholdID,
			Name:        row.Name,
			Tags:        row.Tags,
			Recipe:      row.Recipe,
			Ingredients: byMeal[row.ID],
			CreatedAt:   row.CreatedAt,
		}
	}
	return meals, nil
}

func toDomainIngredient(row ingredientRow) domain.Ingredient {
	return domain.Ingredient{
		ID:         row.ID,
		Name:       row.Name,
		FromManual: row.FromManual,
		MealID:     row.MealID,
		WeekPlanID: row.WeekPlanID,
		Position:   row.Position,
		CreatedAt:  row.CreatedAt,
	}
}
