package planner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

var _ weekPlanRepo = &weekPlanRepoMock{}

type weekPlanRepoMock struct {
	GetByIDFunc                     func(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error)
	GetByWeekStartFunc              func(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error)
	CreateIfNotExistsFunc           func(ctx context.Context, wp *domain.WeekPlan) (*domain.WeekPlan, error)
	DeleteOlderThanFunc             func(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error)
	GetDayByDateFunc                func(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error)
	GetDayByIDFunc                  func(ctx context.Context, id uuid.UUID) (*domain.Day, error)
	ListDaysFunc                    func(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error)
	CreateDayFunc                   func(ctx context.Context, d *domain.Day) (*domain.Day, error)
	DeleteDayFunc                   func(ctx context.Context, id uuid.UUID) error
	AddDayMealFunc                  func(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error
	RemoveDayMealFunc               func(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error
	ClearDayMealsFunc               func(ctx context.Context, dayID uuid.UUID) error
	SetAlreadyHaveFunc              func(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error
	CreateSlotIngredientsFunc       func(ctx context.Context, items []domain.ManualSlotIngredient) error
	ListSlotIngredientsFunc         func(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error)
	DeleteSlotIngredientFunc        func(ctx context.Context, id uuid.UUID) error
	DeleteSlotIngredientsBeforeFunc func(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error)
	CreateManualIngredientFunc      func(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error)
	ListManualIngredientsFunc       func(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error)
	DeleteManualIngredientFunc      func(ctx context.Context, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByWeekStart []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			WeekStart   time.Time
		}
		CreateIfNotExists []struct {
			Ctx context.Context
			Wp  *domain.WeekPlan
		}
		DeleteOlderThan []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			Cutoff      time.Time
		}
		GetDayByDate []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
			Date       time.Time
		}
		GetDayByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListDays []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		CreateDay []struct {
			Ctx context.Context
			D   *domain.Day
		}
		DeleteDay []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		AddDayMeal []struct {
			Ctx    context.Context
			DayID  uuid.UUID
			Slot   domain.Slot
			MealID uuid.UUID
		}
		RemoveDayMeal []struct {
			Ctx    context.Context
			DayID  uuid.UUID
			Slot   domain.Slot
			MealID uuid.UUID
		}
		ClearDayMeals []struct {
			Ctx   context.Context
			DayID uuid.UUID
		}
		SetAlreadyHave []struct {
			Ctx   context.Context
			DayID uuid.UUID
			Slot  domain.Slot
			Value bool
		}
		CreateSlotIngredients []struct {
			Ctx   context.Context
			Items []domain.ManualSlotIngredient
		}
		ListSlotIngredients []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		DeleteSlotIngredient []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteSlotIngredientsBefore []struct {
			Ctx         context.Context
			HouseholdID uuid.UUID
			Cutoff      time.Time
		}
		CreateManualIngredient []struct {
			Ctx context.Context
			Ing *domain.Ingredient
		}
		ListManualIngredients []struct {
			Ctx        context.Context
			WeekPlanID uuid.UUID
		}
		DeleteManualIngredient []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockGetByID                     sync.RWMutex
	lockGetByWeekStart              sync.RWMutex
	lockCreateIfNotExists           sync.RWMutex
	lockDeleteOlderThan             sync.RWMutex
	lockGetDayByDate                sync.RWMutex
	lockGetDayByID                  sync.RWMutex
	lockListDays                    sync.RWMutex
	lockCreateDay                   sync.RWMutex
	lockDeleteDay                   sync.RWMutex
	lockAddDayMeal                  sync.RWMutex
	lockRemoveDayMeal               sync.RWMutex
	lockClearDayMeals               sync.RWMutex
	lockSetAlreadyHave              sync.RWMutex
	lockCreateSlotIngredients       sync.RWMutex
	lockListSlotIngredients         sync.RWMutex
	lockDeleteSlotIngredient        sync.RWMutex
	lockDeleteSlotIngredientsBefore sync.RWMutex
	lockCreateManualIngredient      sync.RWMutex
	lockListManualIngredients       sync.RWMutex
	lockDeleteManualIngredient      sync.RWMutex
}

func (mock *weekPlanRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.WeekPlan, error) {
	if mock.GetByIDFunc == nil {
		panic("weekPlanRepoMock.GetByIDFunc: method is nil but weekPlanRepo.GetByID was just called")
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

func (mock *weekPlanRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) GetByWeekStart(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error) {
	if mock.GetByWeekStartFunc == nil {
		panic("weekPlanRepoMock.GetByWeekStartFunc: method is nil but weekPlanRepo.GetByWeekStart was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
		WeekStart   time.Time
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		WeekStart:   weekStart,
	}
	mock.lockGetByWeekStart.Lock()
	mock.calls.GetByWeekStart = append(mock.calls.GetByWeekStart, callInfo)
	mock.lockGetByWeekStart.Unlock()
	return mock.GetByWeekStartFunc(ctx, householdID, weekStart)
}

func (mock *weekPlanRepoMock) GetByWeekStartCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
	WeekStart   time.Time
} {
	mock.lockGetByWeekStart.RLock()
	calls := mock.calls.GetByWeekStart
	mock.lockGetByWeekStart.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) CreateIfNotExists(ctx context.Context, wp *domain.WeekPlan) (*domain.WeekPlan, error) {
	if mock.CreateIfNotExistsFunc == nil {
		panic("weekPlanRepoMock.CreateIfNotExistsFunc: method is nil but weekPlanRepo.CreateIfNotExists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Wp  *domain.WeekPlan
	}{
		Ctx: ctx,
		Wp:  wp,
	}
	mock.lockCreateIfNotExists.Lock()
	mock.calls.CreateIfNotExists = append(mock.calls.CreateIfNotExists, callInfo)
	mock.lockCreateIfNotExists.Unlock()
	return mock.CreateIfNotExistsFunc(ctx, wp)
}

func (mock *weekPlanRepoMock) CreateIfNotExistsCalls() []struct {
	Ctx context.Context
	Wp  *domain.WeekPlan
} {
	mock.lockCreateIfNotExists.RLock()
	calls := mock.calls.CreateIfNotExists
	mock.lockCreateIfNotExists.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) DeleteOlderThan(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	if mock.DeleteOlderThanFunc == nil {
		panic("weekPlanRepoMock.DeleteOlderThanFunc: method is nil but weekPlanRepo.DeleteOlderThan was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
		Cutoff      time.Time
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		Cutoff:      cutoff,
	}
	mock.lockDeleteOlderThan.Lock()
	mock.calls.DeleteOlderThan = append(mock.calls.DeleteOlderThan, callInfo)
	mock.lockDeleteOlderThan.Unlock()
	return mock.DeleteOlderThanFunc(ctx, householdID, cutoff)
}

func (mock *weekPlanRepoMock) DeleteOlderThanCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
	Cutoff      time.Time
} {
	mock.lockDeleteOlderThan.RLock()
	calls := mock.calls.DeleteOlderThan
	mock.lockDeleteOlderThan.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) GetDayByDate(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error) {
	if mock.GetDayByDateFunc == nil {
		panic("weekPlanRepoMock.GetDayByDateFunc: method is nil but weekPlanRepo.GetDayByDate was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
		Date       time.Time
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
		Date:       date,
	}
	mock.lockGetDayByDate.Lock()
	mock.calls.GetDayByDate = append(mock.calls.GetDayByDate, callInfo)
	mock.lockGetDayByDate.Unlock()
	return mock.GetDayByDateFunc(ctx, weekPlanID, date)
}

func (mock *weekPlanRepoMock) GetDayByDateCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
	Date       time.Time
} {
	mock.lockGetDayByDate.RLock()
	calls := mock.calls.GetDayByDate
	mock.lockGetDayByDate.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) GetDayByID(ctx context.Context, id uuid.UUID) (*domain.Day, error) {
	if mock.GetDayByIDFunc == nil {
		panic("weekPlanRepoMock.GetDayByIDFunc: method is nil but weekPlanRepo.GetDayByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetDayByID.Lock()
	mock.calls.GetDayByID = append(mock.calls.GetDayByID, callInfo)
	mock.lockGetDayByID.Unlock()
	return mock.GetDayByIDFunc(ctx, id)
}

func (mock *weekPlanRepoMock) GetDayByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetDayByID.RLock()
	calls := mock.calls.GetDayByID
	mock.lockGetDayByID.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error) {
	if mock.ListDaysFunc == nil {
		panic("weekPlanRepoMock.ListDaysFunc: method is nil but weekPlanRepo.ListDays was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockListDays.Lock()
	mock.calls.ListDays = append(mock.calls.ListDays, callInfo)
	mock.lockListDays.Unlock()
	return mock.ListDaysFunc(ctx, weekPlanID)
}

func (mock *weekPlanRepoMock) ListDaysCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockListDays.RLock()
	calls := mock.calls.ListDays
	mock.lockListDays.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) CreateDay(ctx context.Context, d *domain.Day) (*domain.Day, error) {
	if mock.CreateDayFunc == nil {
		panic("weekPlanRepoMock.CreateDayFunc: method is nil but weekPlanRepo.CreateDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		D   *domain.Day
	}{
		Ctx: ctx,
		D:   d,
	}
	mock.lockCreateDay.Lock()
	mock.calls.CreateDay = append(mock.calls.CreateDay, callInfo)
	mock.lockCreateDay.Unlock()
	return mock.CreateDayFunc(ctx, d)
}

func (mock *weekPlanRepoMock) CreateDayCalls() []struct {
	Ctx context.Context
	D   *domain.Day
} {
	mock.lockCreateDay.RLock()
	calls := mock.calls.CreateDay
	mock.lockCreateDay.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) DeleteDay(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteDayFunc == nil {
		panic("weekPlanRepoMock.DeleteDayFunc: method is nil but weekPlanRepo.DeleteDay was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteDay.Lock()
	mock.calls.DeleteDay = append(mock.calls.DeleteDay, callInfo)
	mock.lockDeleteDay.Unlock()
	return mock.DeleteDayFunc(ctx, id)
}

func (mock *weekPlanRepoMock) DeleteDayCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteDay.RLock()
	calls := mock.calls.DeleteDay
	mock.lockDeleteDay.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) AddDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	if mock.AddDayMealFunc == nil {
		panic("weekPlanRepoMock.AddDayMealFunc: method is nil but weekPlanRepo.AddDayMeal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DayID  uuid.UUID
		Slot   domain.Slot
		MealID uuid.UUID
	}{
		Ctx:    ctx,
		DayID:  dayID,
		Slot:   slot,
		MealID: mealID,
	}
	mock.lockAddDayMeal.Lock()
	mock.calls.AddDayMeal = append(mock.calls.AddDayMeal, callInfo)
	mock.lockAddDayMeal.Unlock()
	return mock.AddDayMealFunc(ctx, dayID, slot, mealID)
}

func (mock *weekPlanRepoMock) AddDayMealCalls() []struct {
	Ctx    context.Context
	DayID  uuid.UUID
	Slot   domain.Slot
	MealID uuid.UUID
} {
	mock.lockAddDayMeal.RLock()
	calls := mock.calls.AddDayMeal
	mock.lockAddDayMeal.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) RemoveDayMeal(ctx context.Context, dayID uuid.UUID, slot domain.Slot, mealID uuid.UUID) error {
	if mock.RemoveDayMealFunc == nil {
		panic("weekPlanRepoMock.RemoveDayMealFunc: method is nil but weekPlanRepo.RemoveDayMeal was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		DayID  uuid.UUID
		Slot   domain.Slot
		MealID uuid.UUID
	}{
		Ctx:    ctx,
		DayID:  dayID,
		Slot:   slot,
		MealID: mealID,
	}
	mock.lockRemoveDayMeal.Lock()
	mock.calls.RemoveDayMeal = append(mock.calls.RemoveDayMeal, callInfo)
	mock.lockRemoveDayMeal.Unlock()
	return mock.RemoveDayMealFunc(ctx, dayID, slot, mealID)
}

func (mock *weekPlanRepoMock) RemoveDayMealCalls() []struct {
	Ctx    context.Context
	DayID  uuid.UUID
	Slot   domain.Slot
	MealID uuid.UUID
} {
	mock.lockRemoveDayMeal.RLock()
	calls := mock.calls.RemoveDayMeal
	mock.lockRemoveDayMeal.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) ClearDayMeals(ctx context.Context, dayID uuid.UUID) error {
	if mock.ClearDayMealsFunc == nil {
		panic("weekPlanRepoMock.ClearDayMealsFunc: method is nil but weekPlanRepo.ClearDayMeals was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		DayID uuid.UUID
	}{
		Ctx:   ctx,
		DayID: dayID,
	}
	mock.lockClearDayMeals.Lock()
	mock.calls.ClearDayMeals = append(mock.calls.ClearDayMeals, callInfo)
	mock.lockClearDayMeals.Unlock()
	return mock.ClearDayMealsFunc(ctx, dayID)
}

func (mock *weekPlanRepoMock) ClearDayMealsCalls() []struct {
	Ctx   context.Context
	DayID uuid.UUID
} {
	mock.lockClearDayMeals.RLock()
	calls := mock.calls.ClearDayMeals
	mock.lockClearDayMeals.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) SetAlreadyHave(ctx context.Context, dayID uuid.UUID, slot domain.Slot, value bool) error {
	if mock.SetAlreadyHaveFunc == nil {
		panic("weekPlanRepoMock.SetAlreadyHaveFunc: method is nil but weekPlanRepo.SetAlreadyHave was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		DayID uuid.UUID
		Slot  domain.Slot
		Value bool
	}{
		Ctx:   ctx,
		DayID: dayID,
		Slot:  slot,
		Value: value,
	}
	mock.lockSetAlreadyHave.Lock()
	mock.calls.SetAlreadyHave = append(mock.calls.SetAlreadyHave, callInfo)
	mock.lockSetAlreadyHave.Unlock()
	return mock.SetAlreadyHaveFunc(ctx, dayID, slot, value)
}

func (mock *weekPlanRepoMock) SetAlreadyHaveCalls() []struct {
	Ctx   context.Context
	DayID uuid.UUID
	Slot  domain.Slot
	Value bool
} {
	mock.lockSetAlreadyHave.RLock()
	calls := mock.calls.SetAlreadyHave
	mock.lockSetAlreadyHave.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) CreateSlotIngredients(ctx context.Context, items []domain.ManualSlotIngredient) error {
	if mock.CreateSlotIngredientsFunc == nil {
		panic("weekPlanRepoMock.CreateSlotIngredientsFunc: method is nil but weekPlanRepo.CreateSlotIngredients was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.ManualSlotIngredient
	}{
		Ctx:   ctx,
		Items: items,
	}
	mock.lockCreateSlotIngredients.Lock()
	mock.calls.CreateSlotIngredients = append(mock.calls.CreateSlotIngredients, callInfo)
	mock.lockCreateSlotIngredients.Unlock()
	return mock.CreateSlotIngredientsFunc(ctx, items)
}

func (mock *weekPlanRepoMock) CreateSlotIngredientsCalls() []struct {
	Ctx   context.Context
	Items []domain.ManualSlotIngredient
} {
	mock.lockCreateSlotIngredients.RLock()
	calls := mock.calls.CreateSlotIngredients
	mock.lockCreateSlotIngredients.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) ListSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error) {
	if mock.ListSlotIngredientsFunc == nil {
		panic("weekPlanRepoMock.ListSlotIngredientsFunc: method is nil but weekPlanRepo.ListSlotIngredients was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockListSlotIngredients.Lock()
	mock.calls.ListSlotIngredients = append(mock.calls.ListSlotIngredients, callInfo)
	mock.lockListSlotIngredients.Unlock()
	return mock.ListSlotIngredientsFunc(ctx, weekPlanID)
}

func (mock *weekPlanRepoMock) ListSlotIngredientsCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockListSlotIngredients.RLock()
	calls := mock.calls.ListSlotIngredients
	mock.lockListSlotIngredients.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) DeleteSlotIngredient(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSlotIngredientFunc == nil {
		panic("weekPlanRepoMock.DeleteSlotIngredientFunc: method is nil but weekPlanRepo.DeleteSlotIngredient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteSlotIngredient.Lock()
	mock.calls.DeleteSlotIngredient = append(mock.calls.DeleteSlotIngredient, callInfo)
	mock.lockDeleteSlotIngredient.Unlock()
	return mock.DeleteSlotIngredientFunc(ctx, id)
}

func (mock *weekPlanRepoMock) DeleteSlotIngredientCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteSlotIngredient.RLock()
	calls := mock.calls.DeleteSlotIngredient
	mock.lockDeleteSlotIngredient.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) DeleteSlotIngredientsBefore(ctx context.Context, householdID uuid.UUID, cutoff time.Time) (int, error) {
	if mock.DeleteSlotIngredientsBeforeFunc == nil {
		panic("weekPlanRepoMock.DeleteSlotIngredientsBeforeFunc: method is nil but weekPlanRepo.DeleteSlotIngredientsBefore was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		HouseholdID uuid.UUID
		Cutoff      time.Time
	}{
		Ctx:         ctx,
		HouseholdID: householdID,
		Cutoff:      cutoff,
	}
	mock.lockDeleteSlotIngredientsBefore.Lock()
	mock.calls.DeleteSlotIngredientsBefore = append(mock.calls.DeleteSlotIngredientsBefore, callInfo)
	mock.lockDeleteSlotIngredientsBefore.Unlock()
	return mock.DeleteSlotIngredientsBeforeFunc(ctx, householdID, cutoff)
}

func (mock *weekPlanRepoMock) DeleteSlotIngredientsBeforeCalls() []struct {
	Ctx         context.Context
	HouseholdID uuid.UUID
	Cutoff      time.Time
} {
	mock.lockDeleteSlotIngredientsBefore.RLock()
	calls := mock.calls.DeleteSlotIngredientsBefore
	mock.lockDeleteSlotIngredientsBefore.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) CreateManualIngredient(ctx context.Context, ing *domain.Ingredient) (*domain.Ingredient, error) {
	if mock.CreateManualIngredientFunc == nil {
		panic("weekPlanRepoMock.CreateManualIngredientFunc: method is nil but weekPlanRepo.CreateManualIngredient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ing *domain.Ingredient
	}{
		Ctx: ctx,
		Ing: ing,
	}
	mock.lockCreateManualIngredient.Lock()
	mock.calls.CreateManualIngredient = append(mock.calls.CreateManualIngredient, callInfo)
	mock.lockCreateManualIngredient.Unlock()
	return mock.CreateManualIngredientFunc(ctx, ing)
}

func (mock *weekPlanRepoMock) CreateManualIngredientCalls() []struct {
	Ctx context.Context
	Ing *domain.Ingredient
} {
	mock.lockCreateManualIngredient.RLock()
	calls := mock.calls.CreateManualIngredient
	mock.lockCreateManualIngredient.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error) {
	if mock.ListManualIngredientsFunc == nil {
		panic("weekPlanRepoMock.ListManualIngredientsFunc: method is nil but weekPlanRepo.ListManualIngredients was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		WeekPlanID uuid.UUID
	}{
		Ctx:        ctx,
		WeekPlanID: weekPlanID,
	}
	mock.lockListManualIngredients.Lock()
	mock.calls.ListManualIngredients = append(mock.calls.ListManualIngredients, callInfo)
	mock.lockListManualIngredients.Unlock()
	return mock.ListManualIngredientsFunc(ctx, weekPlanID)
}

func (mock *weekPlanRepoMock) ListManualIngredientsCalls() []struct {
	Ctx        context.Context
	WeekPlanID uuid.UUID
} {
	mock.lockListManualIngredients.RLock()
	calls := mock.calls.ListManualIngredients
	mock.lockListManualIngredients.RUnlock()
	return calls
}

func (mock *weekPlanRepoMock) DeleteManualIngredient(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteManualIngredientFunc == nil {
		panic("weekPlanRepoMock.DeleteManualIngredientFunc: method is nil but weekPlanRepo.DeleteManualIngredient was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDeleteManualIngredient.Lock()
	mock.calls.DeleteManualIngredient = append(mock.calls.DeleteManualIngredient, callInfo)
	mock.lockDeleteManualIngredient.Unlock()
	return mock.DeleteManualIngredientFunc(ctx, id)
}

func (mock *weekPlanRepoMock) DeleteManualIngredientCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteManualIngredient.RLock()
	calls := mock.calls.DeleteManualIngredient
	mock.lockDeleteManualIngredient.RUnlock()
	return calls
}
