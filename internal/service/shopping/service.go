package shopping

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type householdRepo interface {
	ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error)
}

type weekPlanRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error)
	LockForUpdate(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error)
	ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error)
	GetDayByDate(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error)
	SetAlreadyHave(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error
	ListSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error)
	ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error)
}

type mealRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	ListByWeekPlan(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error)
	ListTicked(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error)
	Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	CreateBatch(ctx context.Context, items []domain.ShoppingListItem) error
	SetTicked(ctx context.Context, id uuid.UUID, ticked bool) (*domain.ShoppingListItem, error)
	SetTickedByName(ctx context.Context, weekPlanID uuid.UUID, normalizedName string, ticked bool) (int, error)
	DeleteStale(ctx context.Context, weekPlanID uuid.UUID) (int, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service derives, reconciles and tracks the shopping list of a week plan.
type Service struct {
	households householdRepo
	weekPlans  weekPlanRepo
	meals      mealRepo
	items      itemRepo
	tx         txManager
	log        *slog.Logger
	loc        *time.Location
	clock      func() time.Time
}

// NewService creates a new Shopping service. loc is the household's local
// calendar; nil means UTC.
func NewService(
	log *slog.Logger,
	households householdRepo,
	weekPlans weekPlanRepo,
	meals mealRepo,
	items itemRepo,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		households: households,
		weekPlans:  weekPlans,
		meals:      meals,
		items:      items,
		tx:         tx,
		log:        log.With("service", "shopping"),
		loc:        loc,
		clock:      time.Now,
	}
}

// ReconcileResult reports how a regeneration changed the persisted list.
type ReconcileResult struct {
	Removed int
	Added   int
}

// ClearResult reports what ClearTickedOff did.
type ClearResult struct {
	Removed     int
	SlotsMarked int
	// DaysMissing counts slot-bound items whose day no longer exists.
	DaysMissing int
}
