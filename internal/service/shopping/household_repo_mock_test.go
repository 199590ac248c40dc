package shopping

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ householdRepo = &householdRepoMock{}

type householdRepoMock struct {
	ListUsualItemsFunc func(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error)

	calls struct {
		ListUsualItems []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
		}
	}
	lockListUsualItems sync.RWMutex
}

func (mock *householdRepoMock) ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error) {
	if mock.ListUsualItemsFunc == nil {
		panic("householdRepoMock.ListUsualItemsFunc: method is nil but householdRepo.ListUsualItems was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
	}
	mock.lockListUsualItems.Lock()
	mock.calls.ListUsualItems = append(mock.calls.ListUsualItems, callInfo)
	mock.lockListUsualItems.Unlock()
	return mock.ListUsualItemsFunc(ctx, householdID)
}

func (mock *householdRepoMock) ListUsualItemsCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
} {
	mock.lockListUsualItems.RLock()
	calls := mock.calls.ListUsualItems
	mock.lockListUsualItems.RUnlock()
	return calls
}
