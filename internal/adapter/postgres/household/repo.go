// Package household implements the household and usual item repository
// using PostgreSQL.
package household

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

// creationLockKey serializes implicit household creation across processes.
const creationLockKey int64 = 0x6d65616c706c616e

// Repo provides household persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new household repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

type householdRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type usualItemRow struct {
	ID          uuid.UUID `db:"id"`
	HouseholdID uuid.UUID `db:"household_id"`
	Name        string    `db:"name"`
	CreatedAt   time.Time `db:"created_at"`
}

var (
	householdColumns = []string{"id", "name", "created_at"}
	usualItemColumns = []string{"id", "household_id", "name", "created_at"}
)

// ---------------------------------------------------------------------------
// Households
// ---------------------------------------------------------------------------

// GetFirst returns the oldest household.
// Returns domain.ErrNotFound if none exists yet.
func (r *Repo) GetFirst(ctx context.Context) (*domain.Household, error) {
	query, args, err := postgres.Builder.
		Select(householdColumns...).
		From("households").
		OrderBy("created_at ASC", "id ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row householdRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.WrapError(err, "get first household")
	}

	h := toDomainHousehold(row)
	return &h, nil
}

// GetByID returns a household by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error) {
	query, args, err := postgres.Builder.
		Select(householdColumns...).
		From("households").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row householdRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "household", id)
	}

	h := toDomainHousehold(row)
	return &h, nil
}

// Create inserts a household and returns the stored row.
func (r *Repo) Create(ctx context.Context, h *domain.Household) (*domain.Household, error) {
	query, args, err := postgres.Builder.
		Insert("households").
		Columns(householdColumns...).
		Values(h.ID, h.Name, h.CreatedAt).
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row householdRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "household", h.ID)
	}

	out := toDomainHousehold(row)
	return &out, nil
}

// UpdateName renames a household.
func (r *Repo) UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error) {
	query, args, err := postgres.Builder.
		Update("households").
		Set("name", name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row householdRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "household", id)
	}

	h := toDomainHousehold(row)
	return &h, nil
}

// LockCreation takes a transaction-scoped advisory lock so that concurrent
// fetch-or-create calls cannot both insert. Must run inside RunInTx.
func (r *Repo) LockCreation(ctx context.Context) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, "SELECT pg_advisory_xact_lock($1)", creationLockKey); err != nil {
		return postgres.WrapError(err, "lock household creation")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Usual items
// ---------------------------------------------------------------------------

// ListUsualItems returns a household's usual items ordered by name.
func (r *Repo) ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error) {
	query, args, err := postgres.Builder.
		Select(usualItemColumns...).
		From("usual_items").
		Where(sq.Eq{"household_id": householdID}).
		OrderBy("lower(name) ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []usualItemRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.WrapError(err, "list usual_items")
	}

	items := make([]domain.UsualItem, len(rows))
	for i, row := range rows {
		items[i] = toDomainUsualItem(row)
	}
	return items, nil
}

// CreateUsualItem inserts a usual item.
func (r *Repo) CreateUsualItem(ctx context.Context, item *domain.UsualItem) (*domain.UsualItem, error) {
	query, args, err := postgres.Builder.
		Insert("usual_items").
		Columns(usualItemColumns...).
		Values(item.ID, item.HouseholdID, item.Name, item.CreatedAt).
		Suffix("RETURNING id, household_id, name, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row usualItemRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "usual_item", item.ID)
	}

	out := toDomainUsualItem(row)
	return &out, nil
}

// DeleteUsualItem removes a usual item. Returns domain.ErrNotFound if it does
// not exist or belongs to another household.
func (r *Repo) DeleteUsualItem(ctx context.Context, householdID, id uuid.UUID) error {
	query, args, err := postgres.Builder.
		Delete("usual_items").
		Where(sq.Eq{"id": id, "household_id": householdID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "usual_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("usual_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func toDomainHousehold(row householdRow) domain.Household {
	return domain.Household{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt}
}

func toDomainUsualItem(row usualItemRow) domain.UsualItem {
	return domain.UsualItem{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		Name:        row.Name,
		CreatedAt:   row.CreatedAt,
	}
}
