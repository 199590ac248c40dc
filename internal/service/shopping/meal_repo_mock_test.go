package shopping

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ mealRepo = &mealRepoMock{}

type mealRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error)

	calls struct {
		GetByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *mealRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Meal, error) {
	if mock.GetByIDsFunc == nil {
		panic("mealRepoMock.GetByIDsFunc: method is nil but mealRepo.GetByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *mealRepoMock) GetByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
