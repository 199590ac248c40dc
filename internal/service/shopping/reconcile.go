package shopping

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// Reconcile merges candidates into the persisted list of a week plan in one
// transaction: unticked items that were not typed in by the user are
// replaced by one unticked item per candidate. Ticked items and manual items
// are left untouched.
func (s *Service) Reconcile(ctx context.Context, weekPlanID uuid.UUID, candidates []domain.Candidate) (*ReconcileResult, error) {
	var res *ReconcileResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		res, err = s.reconcile(txCtx, weekPlanID, candidates)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shopping list reconciled",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.Int("removed", res.Removed),
		slog.Int("added", res.Added),
	)
	return res, nil
}

// reconcile must run inside a transaction.
func (s *Service) reconcile(ctx context.Context, weekPlanID uuid.UUID, candidates []domain.Candidate) (*ReconcileResult, error) {
	if _, err := s.weekPlans.LockForUpdate(ctx, weekPlanID); err != nil {
		return nil, fmt.Errorf("lock week plan: %w", err)
	}

	removed, err := s.items.DeleteStale(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("delete stale items: %w", err)
	}

	now := s.clock().UTC()
	items := make([]domain.ShoppingListItem, len(candidates))
	for i, c := range candidates {
		items[i] = domain.NewShoppingListItem(weekPlanID, c, now)
	}
	if err := s.items.CreateBatch(ctx, items); err != nil {
		return nil, fmt.Errorf("create items: %w", err)
	}

	return &ReconcileResult{Removed: removed, Added: len(items)}, nil
}

// Generate computes the candidates of a week plan and reconciles them
// against its persisted list as one unit.
func (s *Service) Generate(ctx context.Context, weekPlanID uuid.UUID) (*ReconcileResult, error) {
	var res *ReconcileResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		wp, err := s.weekPlans.LockForUpdate(txCtx, weekPlanID)
		if err != nil {
			return fmt.Errorf("lock week plan: %w", err)
		}
		snap, err := s.loadSnapshot(txCtx, wp)
		if err != nil {
			return err
		}
		candidates := BuildCandidates(*snap, s.clock().UTC(), s.loc)

		res, err = s.reconcile(txCtx, weekPlanID, candidates)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shopping list generated",
		slog.String("week_plan_id", weekPlanID.String()),
		slog.Int("removed", res.Removed),
		slog.Int("added", res.Added),
	)
	return res, nil
}

// AddManualItem puts a user-typed item straight onto the list, bypassing
// candidate computation. Manual items survive every regeneration.
func (s *Service) AddManualItem(ctx context.Context, input AddManualItemInput) (*domain.ShoppingListItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	var item *domain.ShoppingListItem
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.weekPlans.LockForUpdate(txCtx, input.WeekPlanID); err != nil {
			return fmt.Errorf("lock week plan: %w", err)
		}
		c := domain.Candidate{
			Name:       domain.CleanName(input.Name),
			OriginType: domain.OriginManual,
			OriginDate: now,
		}
		created := domain.NewShoppingListItem(input.WeekPlanID, c, now)

		var err error
		item, err = s.items.Create(txCtx, &created)
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "manual item added",
		slog.String("week_plan_id", input.WeekPlanID.String()),
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
	)
	return item, nil
}
