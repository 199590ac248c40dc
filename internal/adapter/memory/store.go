// Package memory is an in-process entity store with the same repository
// method sets as the PostgreSQL adapter. Transactions work on a private copy
// of the state that replaces the committed state only when they succeed, so
// readers outside a transaction never observe partial changes. One
// transaction runs at a time.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// Store holds all entities in maps keyed by id.
type Store struct {
	txMu sync.Mutex   // serializes transactions and non-transactional writes
	mu   sync.RWMutex // guards st
	st   *state       // committed state
}

type state struct {
	households      map[uuid.UUID]domain.Household
	usualItems      map[uuid.UUID]domain.UsualItem
	meals           map[uuid.UUID]domain.Meal // Ingredients kept in ingredients
	ingredients     map[uuid.UUID]domain.Ingredient
	weekPlans       map[uuid.UUID]domain.WeekPlan
	days            map[uuid.UUID]domain.Day
	slotIngredients map[uuid.UUID]domain.ManualSlotIngredient
	items           map[uuid.UUID]domain.ShoppingListItem
}

// New returns an empty store.
func New() *Store {
	return &Store{st: newState()}
}

func newState() *state {
	return &state{
		households:      map[uuid.UUID]domain.Household{},
		usualItems:      map[uuid.UUID]domain.UsualItem{},
		meals:           map[uuid.UUID]domain.Meal{},
		ingredients:     map[uuid.UUID]domain.Ingredient{},
		weekPlans:       map[uuid.UUID]domain.WeekPlan{},
		days:            map[uuid.UUID]domain.Day{},
		slotIngredients: map[uuid.UUID]domain.ManualSlotIngredient{},
		items:           map[uuid.UUID]domain.ShoppingListItem{},
	}
}

func (s *state) clone() *state {
	days := make(map[uuid.UUID]domain.Day, len(s.days))
	for id, d := range s.days {
		days[id] = cloneDay(d)
	}
	return &state{
		households:      maps.Clone(s.households),
		usualItems:      maps.Clone(s.usualItems),
		meals:           maps.Clone(s.meals),
		ingredients:     maps.Clone(s.ingredients),
		weekPlans:       maps.Clone(s.weekPlans),
		days:            days,
		slotIngredients: maps.Clone(s.slotIngredients),
		items:           maps.Clone(s.items),
	}
}

func cloneDay(d domain.Day) domain.Day {
	for _, slot := range domain.Slots {
		a := d.Slot(slot)
		a.MealIDs = slices.Clone(a.MealIDs)
	}
	return d
}

// Households returns the household and usual item repository.
func (s *Store) Households() *HouseholdRepo { return &HouseholdRepo{s: s} }

// Meals returns the meal repository.
func (s *Store) Meals() *MealRepo { return &MealRepo{s: s} }

// WeekPlans returns the week plan repository.
func (s *Store) WeekPlans() *WeekPlanRepo { return &WeekPlanRepo{s: s} }

// ShoppingList returns the shopping list repository.
func (s *Store) ShoppingList() *ShoppingListRepo { return &ShoppingListRepo{s: s} }

// Ping reports the store as reachable unless ctx is done.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// TxManager returns the transaction manager for this store.
func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

type txCtxKey struct{}

// tx is a running transaction: its owner and its working copy of the state.
type tx struct {
	s  *Store
	st *state
}

func txFromCtx(ctx context.Context, s *Store) (*tx, bool) {
	t, ok := ctx.Value(txCtxKey{}).(*tx)
	if !ok || t.s != s {
		return nil, false
	}
	return t, true
}

// TxManager runs callbacks atomically against a Store.
type TxManager struct {
	s *Store
}

// RunInTx executes fn against a working copy of the store. The copy is
// committed when fn returns nil; an error or panic discards it.
// Nested calls join the outer transaction.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s := m.s
	if _, ok := txFromCtx(ctx, s); ok {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	work := &tx{s: s, st: s.st.clone()}
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txCtxKey{}, work)); err != nil {
		return err
	}

	s.mu.Lock()
	s.st = work.st
	s.mu.Unlock()
	return nil
}

// read runs fn against the transaction's working copy, or against the
// committed state under the read lock.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t, ok := txFromCtx(ctx, s); ok {
		return fn(t.st)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

// write runs fn against the transaction's working copy. Outside a
// transaction fn runs in one of its own, so a failing fn leaves no trace.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if t, ok := txFromCtx(ctx, s); ok {
		return fn(t.st)
	}
	return s.TxManager().RunInTx(ctx, func(ctx context.Context) error {
		t, _ := txFromCtx(ctx, s)
		return fn(t.st)
	})
}
