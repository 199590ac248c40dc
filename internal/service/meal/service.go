package meal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type mealRepo interface {
	Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	GetByID(ctx context.Context, householdID, id uuid.UUID) (*domain.Meal, error)
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error)
	Delete(ctx context.Context, householdID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides meal management operations.
type Service struct {
	meals mealRepo
	tx    txManager
	log   *slog.Logger
	clock func() time.Time
}

// NewService creates a new Meal service.
func NewService(
	log *slog.Logger,
	meals mealRepo,
	tx txManager,
) *Service {
	return &Service{
		meals: meals,
		tx:    tx,
		log:   log.With("service", "meal"),
		clock: time.Now,
	}
}
