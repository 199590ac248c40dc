package household

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type householdRepo interface {
	GetFirst(ctx context.Context) (*domain.Household, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	Create(ctx context.Context, h *domain.Household) (*domain.Household, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error)
	LockCreation(ctx context.Context) error

	ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error)
	CreateUsualItem(ctx context.Context, item *domain.UsualItem) (*domain.UsualItem, error)
	DeleteUsualItem(ctx context.Context, householdID, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the household and its usual items.
type Service struct {
	households  householdRepo
	tx          txManager
	log         *slog.Logger
	defaultName string
	clock       func() time.Time
}

// NewService creates a new Household service. defaultName is used when the
// household is created implicitly.
func NewService(
	log *slog.Logger,
	households householdRepo,
	tx txManager,
	defaultName string,
) *Service {
	if defaultName == "" {
		defaultName = domain.DefaultHouseholdName
	}
	return &Service{
		households:  households,
		tx:          tx,
		log:         log.With("service", "household"),
		defaultName: defaultName,
		clock:       time.Now,
	}
}
