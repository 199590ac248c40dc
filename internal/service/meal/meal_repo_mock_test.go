package meal

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	CreateFunc          func(ctx context.Context, m *domain.Meal) (*domain.Meal, error)
	GetByIDFunc         func(ctx context.Context, householdID uuid.UUID, id uuid.UUID) (*domain.Meal, error)
	ListByHouseholdFunc func(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error)
	DeleteFunc          func(ctx context.Context, householdID uuid.UUID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			M   *domain.Meal
		}
		GetByID []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			ID          uuid.UUID
		}
		ListByHousehold []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
		}
		Delete []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			ID          uuid.UUID
		}
	}
	lockCreate          sync.RWMutex
	lockGetByID         sync.RWMutex
	lockListByHousehold sync.RWMutex
	lockDelete          sync.RWMutex
}

func (mock *mealRepoMock) Create(ctx context.Context, m *domain.Meal) (*domain.Meal, error) {
	if mock.CreateFunc == nil {
		panic("mealRepoMock.CreateFunc: method is nil but mealRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		M   *domain.Meal
	}{
		Ctx: ctx,
		M:   m,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, m)
}

func (mock *mealRepoMock) CreateCalls() []struct {
	Ctx context.Context
	M   *domain.Meal
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *mealRepoMock) GetByID(ctx context.Context, householdID uuid.UUID, id uuid.UUID) (*domain.Meal, error) {
	if mock.GetByIDFunc == nil {
		panic("mealRepoMock.GetByIDFunc: method is nil but mealRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
		ID          uuid.UUID
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		ID:          id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, householdID, id)
}

func (mock *mealRepoMock) GetByIDCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
	ID          uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *mealRepoMock) ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]domain.Meal, error) {
	if mock.ListByHouseholdFunc == nil {
		panic("mealRepoMock.ListByHouseholdFunc: method is nil but mealRepo.ListByHousehold was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
	}
	mock.lockListByHousehold.Lock()
	mock.calls.ListByHousehold = append(mock.calls.ListByHousehold, callInfo)
	mock.lockListByHousehold.Unlock()
	return mock.ListByHouseholdFunc(ctx, householdID)
}

func (mock *mealRepoMock) ListByHouseholdCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
} {
	mock.lockListByHousehold.RLock()
	calls := mock.calls.ListByHousehold
	mock.lockListByHousehold.RUnlock()
	return calls
}

func (mock *mealRepoMock) Delete(ctx context.Context, householdID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("mealRepoMock.DeleteFunc: method is nil but mealRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
		ID          uuid.UUID
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		ID:          id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, householdID, id)
}

func (mock *mealRepoMock) DeleteCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
	ID          uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
