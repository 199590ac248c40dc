package planner

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	GetByIDFunc func(ctx context.Context, householdID uuid.UUID, id uuid.UUID) (*domain.Meal, error)

	calls struct {
		GetByID []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			ID          uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
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
