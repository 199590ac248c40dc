package shopping

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

// GetList returns the read model of a week plan's list: items ordered by
// origin date then name, split into to-buy and ticked, plus same-name
// groups for display. Grouping never merges items.
func (s *Service) GetList(ctx context.Context, weekPlanID uuid.UUID) (*domain.ShoppingList, error) {
	if _, err := s.weekPlans.GetByID(ctx, weekPlanID); err != nil {
		return nil, fmt.Errorf("get week plan: %w", err)
	}

	items, err := s.items.ListByWeekPlan(ctx, weekPlanID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return BuildList(weekPlanID, items), nil
}

// BuildList assembles the list read model from persisted items.
func BuildList(weekPlanID uuid.UUID, items []domain.ShoppingListItem) *domain.ShoppingList {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, compareItems)

	list := &domain.ShoppingList{
		WeekPlanID: weekPlanID,
		ToBuy:      []domain.ShoppingListItem{},
		Ticked:     []domain.ShoppingListItem{},
		Groups:     []domain.ItemGroup{},
	}

	index := make(map[string]int)
	for _, it := range sorted {
		if it.Ticked {
			list.Ticked = append(list.Ticked, it)
		} else {
			list.ToBuy = append(list.ToBuy, it)
		}

		key := domain.NormalizeName(it.Name)
		i, ok := index[key]
		if !ok {
			i = len(list.Groups)
			index[key] = i
			list.Groups = append(list.Groups, domain.ItemGroup{Key: key, Name: domain.CleanName(it.Name)})
		}
		list.Groups[i].Items = append(list.Groups[i].Items, it)
	}

	slices.SortFunc(list.Groups, func(a, b domain.ItemGroup) int {
		return strings.Compare(a.Key, b.Key)
	})
	return list
}

func compareItems(a, b domain.ShoppingListItem) int {
	return cmp.Or(
		a.OriginDate.Compare(b.OriginDate),
		strings.Compare(domain.NormalizeName(a.Name), domain.NormalizeName(b.Name)),
		a.CreatedAt.Compare(b.CreatedAt),
	)
}
