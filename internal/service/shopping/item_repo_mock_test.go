package shopping

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error)
	ListByWeekPlanFunc  func(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error)
	ListTickedFunc      func(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error)
	CreateFunc          func(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error)
	CreateBatchFunc     func(ctx context.Context, items []domain.ShoppingListItem) error
	SetTickedFunc       func(ctx context.Context, id uuid.UUID, ticked bool) (*domain.ShoppingListItem, error)
	SetTickedByNameFunc func(ctx context.Context, weekPlanID uuid.UUID, normalizedName string, ticked bool) (int, error)
	DeleteStaleFunc     func(ctx context.Context, weekPlanID uuid.UUID) (int, error)
	DeleteByIDsFunc     func(ctx context.Context, ids []uuid.UUID) (int, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByWeekPlan []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		ListTicked []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item *domain.ShoppingListItem
		}
		CreateBatch []struct {
			Ctx   context.Context
			Items []domain.ShoppingListItem
		}
		SetTicked []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Ticked bool
		}
		SetTickedByName []struct {
			Ctx            context.Context
			WeekPlanID     uuid.UUID
			NormalizedName string
			Ticked         bool
		}
		DeleteStale []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		DeleteByIDs []struct {
			Ctx context.Context
			IDs []uuid.UUID
		}
	}
	lockGetByID         sync.RWMutex
	lockListByWeekPlan  sync.RWMutex
	lockListTicked      sync.RWMutex
	lockCreate          sync.RWMutex
	lockCreateBatch     sync.RWMutex
	lockSetTicked       sync.RWMutex
	lockSetTickedByName sync.RWMutex
	lockDeleteStale     sync.RWMutex
	lockDeleteByIDs     sync.RWMutex
}

func (mock *itemRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.ShoppingListItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListByWeekPlan(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	if mock.ListByWeekPlanFunc == nil {
		panic("itemRepoMock.ListByWeekPlanFunc: method is nil but itemRepo.ListByWeekPlan was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockListByWeekPlan.Lock()
	mock.calls.ListByWeekPlan = append(mock.calls.ListByWeekPlan, callInfo)
	mock.lockListByWeekPlan.Unlock()
	return mock.ListByWeekPlanFunc(ctx, weekPlanID)
}

func (mock *itemRepoMock) ListByWeekPlanCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockListByWeekPlan.RLock()
	calls := mock.calls.ListByWeekPlan
	mock.lockListByWeekPlan.RUnlock()
	return calls
}

func (mock *itemRepoMock) ListTicked(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ShoppingListItem, error) {
	if mock.ListTickedFunc == nil {
		panic("itemRepoMock.ListTickedFunc: method is nil but itemRepo.ListTicked was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockListTicked.Lock()
	mock.calls.ListTicked = append(mock.calls.ListTicked, callInfo)
	mock.lockListTicked.Unlock()
	return mock.ListTickedFunc(ctx, weekPlanID)
}

func (mock *itemRepoMock) ListTickedCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockListTicked.RLock()
	calls := mock.calls.ListTicked
	mock.lockListTicked.RUnlock()
	return calls
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.ShoppingListItem) (*domain.ShoppingListItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ShoppingListItem
	}{
		Ctx:  ctx,
		Item: item,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.ShoppingListItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) CreateBatch(ctx context.Context, items []domain.ShoppingListItem) error {
	if mock.CreateBatchFunc == nil {
		panic("itemRepoMock.CreateBatchFunc: method is nil but itemRepo.CreateBatch was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.ShoppingListItem
	}{
		Ctx:   ctx,
		Items: items,
	}
	mock.lockCreateBatch.Lock()
	mock.calls.CreateBatch = append(mock.calls.CreateBatch, callInfo)
	mock.lockCreateBatch.Unlock()
	return mock.CreateBatchFunc(ctx, items)
}

func (mock *itemRepoMock) CreateBatchCalls() []struct {
	Ctx   context.Context
	Items []domain.ShoppingListItem
} {
	mock.lockCreateBatch.RLock()
	calls := mock.calls.CreateBatch
	mock.lockCreateBatch.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetTicked(ctx context.Context, id uuid.UUID, ticked bool) (*domain.ShoppingListItem, error) {
	if mock.SetTickedFunc == nil {
		panic("itemRepoMock.SetTickedFunc: method is nil but itemRepo.SetTicked was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Ticked bool
	}{
		Ctx:    ctx,
		ID:     id,
		Ticked: ticked,
	}
	mock.lockSetTicked.Lock()
	mock.calls.SetTicked = append(mock.calls.SetTicked, callInfo)
	mock.lockSetTicked.Unlock()
	return mock.SetTickedFunc(ctx, id, ticked)
}

func (mock *itemRepoMock) SetTickedCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Ticked bool
} {
	mock.lockSetTicked.RLock()
	calls := mock.calls.SetTicked
	mock.lockSetTicked.RUnlock()
	return calls
}

func (mock *itemRepoMock) SetTickedByName(ctx context.Context, weekPlanID uuid.UUID, normalizedName string, ticked bool) (int, error) {
	if mock.SetTickedByNameFunc == nil {
		panic("itemRepoMock.SetTickedByNameFunc: method is nil but itemRepo.SetTickedByName was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		WeekPlanID     uuid.UUID
		NormalizedName string
		Ticked         bool
	}{
		Ctx:            ctx,
		WeekPlanID:     weekPlanID,
		NormalizedName: normalizedName,
		Ticked:         ticked,
	}
	mock.lockSetTickedByName.Lock()
	mock.calls.SetTickedByName = append(mock.calls.SetTickedByName, callInfo)
	mock.lockSetTickedByName.Unlock()
	return mock.SetTickedByNameFunc(ctx, weekPlanID, normalizedName, ticked)
}

func (mock *itemRepoMock) SetTickedByNameCalls() []struct {
	Ctx            context.Context
	WeekPlanID     uuid.UUID
	NormalizedName string
	Ticked         bool
} {
	mock.lockSetTickedByName.RLock()
	calls := mock.calls.SetTickedByName
	mock.lockSetTickedByName.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteStale(ctx context.Context, weekPlanID uuid.UUID) (int, error) {
	if mock.DeleteStaleFunc == nil {
		panic("itemRepoMock.DeleteStaleFunc: method is nil but itemRepo.DeleteStale was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockDeleteStale.Lock()
	mock.calls.DeleteStale = append(mock.calls.DeleteStale, callInfo)
	mock.lockDeleteStale.Unlock()
	return mock.DeleteStaleFunc(ctx, weekPlanID)
}

func (mock *itemRepoMock) DeleteStaleCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockDeleteStale.RLock()
	calls := mock.calls.DeleteStale
	mock.lockDeleteStale.RUnlock()
	return calls
}

func (mock *itemRepoMock) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if mock.DeleteByIDsFunc == nil {
		panic("itemRepoMock.DeleteByIDsFunc: method is nil but itemRepo.DeleteByIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
		IDs []uuid.UUID
	}{
		Ctx: ctx,
		IDs: ids,
	}
	mock.lockDeleteByIDs.Lock()
	mock.calls.DeleteByIDs = append(mock.calls.DeleteByIDs, callInfo)
	mock.lockDeleteByIDs.Unlock()
	return mock.DeleteByIDsFunc(ctx, ids)
}

func (mock *itemRepoMock) DeleteByIDsCalls() []struct {
	Ctx context.Context
	IDs []uuid.UUID
} {
	mock.lockDeleteByIDs.RLock()
	calls := mock.calls.DeleteByIDs
	mock.lockDeleteByIDs.RUnlock()
	return calls
}
