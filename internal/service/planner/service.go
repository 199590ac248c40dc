package planner

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type weekPlanRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error)
	GetByWeekStart(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error)
	CreateIfNotExists(ctx context.Context, wp *domain.WeekPlan) (*domain.WeekPlan, error)
	DeleteOlderThan(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error)

	GetDayByDate(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error)
	GetDayByID(ctx context.Context, id uuid.UUID) (*domain.Day, error)
	ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error)
	CreateDay(ctx context.Context, d *domain.Day) (*domain.Day, error)
	DeleteDay(ctx context.Context, id uuid.UUID) error
	AddDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error
	RemoveDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error
	ClearDayMeals(ctx context.Context, dayID uuid.UUID) error
	SetAlreadyHave(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error

	CreateSlotIngredients(ctx context.Context, items []domain.ManualSlotIngredient) error
	ListSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error)
	DeleteSlotIngredient(ctx context.Context, id uuid.UUID) error
	DeleteSlotIngredientsBefore(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error)

	CreateManualIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error)
	DeleteManualIngredient(ctx context.Context, id uuid.UUID) error
}

type mealRepo interface {
	GetByID(ctx context.Context, householdID, id uuid.UUID) (*domain.Meal, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultRetentionWeeks is how many past weeks CleanupOldPlannerData keeps.
const DefaultRetentionWeeks = 4

// Config holds the calendar settings of the planner.
type Config struct {
	// Location is the household's local calendar. Nil means UTC.
	Location       *time.Location
	RetentionWeeks int
}

// Service manages week plans, their days and manual ingredients.
type Service struct {
	weekPlans weekPlanRepo
	meals     mealRepo
	tx        txManager
	log       *slog.Logger
	loc       *time.Location
	retention int
	clock     func() time.Time
}

// NewService creates a new Planner service.
func NewService(
	log *slog.Logger,
	weekPlans weekPlanRepo,
	meals mealRepo,
	tx txManager,
	cfg Config,
) *Service {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	retention := cfg.RetentionWeeks
	if retention < 1 {
		retention = DefaultRetentionWeeks
	}
	return &Service{
		weekPlans: weekPlans,
		meals:     meals,
		tx:        tx,
		log:       log.With("service", "planner"),
		loc:       loc,
		retention: retention,
		clock:     time.Now,
	}
}

// Location returns the calendar the planner normalizes dates in.
func (s *Service) Location() *time.Location {
	return s.loc
}
