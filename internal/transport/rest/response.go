package rest

import (
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type householdResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toHouseholdResponse(h *domain.Household) householdResponse {
	return householdResponse{ID: h.ID, Name: h.Name, CreatedAt: h.CreatedAt}
}

type usualItemResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUsualItemResponse(u domain.UsualItem) usualItemResponse {
	return usualItemResponse{ID: u.ID, Name: u.Name, CreatedAt: u.CreatedAt}
}

type mealResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tags        []string  `json:"tags"`
	Recipe      *string   `json:"recipe,omitempty"`
	Ingredients []string  `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toMealResponse(m domain.Meal) mealResponse {
	resp := mealResponse{
		ID:          m.ID,
		Name:        m.Name,
		Tags:        m.TagList(),
		Recipe:      m.Recipe,
		Ingredients: make([]string, 0, len(m.Ingredients)),
		CreatedAt:   m.CreatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	for _, ing := range m.Ingredients {
		resp.Ingredients = append(resp.Ingredients, ing.Name)
	}
	return resp
}

type weekPlanResponse struct {
	ID        uuid.UUID `json:"id"`
	WeekStart string    `json:"weekStart"`
	CreatedAt time.Time `json:"createdAt"`
}

func toWeekPlanResponse(wp *domain.WeekPlan, loc *time.Location) weekPlanResponse {
	return weekPlanResponse{ID: wp.ID, WeekStart: formatDate(wp.WeekStart, loc), CreatedAt: wp.CreatedAt}
}

type slotResponse struct {
	MealIDs     []uuid.UUID `json:"mealIds"`
	AlreadyHave bool        `json:"alreadyHave"`
}

type dayResponse struct {
	ID        uuid.UUID    `json:"id"`
	Date      string       `json:"date"`
	Breakfast slotResponse `json:"breakfast"`
	Lunch     slotResponse `json:"lunch"`
	Dinner    slotResponse `json:"dinner"`
	Other     slotResponse `json:"other"`
}

func toSlotResponse(a domain.SlotAssignment) slotResponse {
	ids := a.MealIDs
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return slotResponse{MealIDs: ids, AlreadyHave: a.AlreadyHave}
}

func toDayResponse(d *domain.Day, loc *time.Location) dayResponse {
	return dayResponse{
		ID:        d.ID,
		Date:      formatDate(d.Date, loc),
		Breakfast: toSlotResponse(d.Breakfast),
		Lunch:     toSlotResponse(d.Lunch),
		Dinner:    toSlotResponse(d.Dinner),
		Other:     toSlotResponse(d.Other),
	}
}

type slotIngredientResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Slot      domain.Slot `json:"slot"`
	Date      string      `json:"date"`
	CreatedAt time.Time   `json:"createdAt"`
}

func toSlotIngredientResponse(i domain.ManualSlotIngredient, loc *time.Location) slotIngredientResponse {
	return slotIngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		Slot:      i.Slot,
		Date:      formatDate(i.Date, loc),
		CreatedAt: i.CreatedAt,
	}
}

type ingredientResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toIngredientResponse(i domain.Ingredient) ingredientResponse {
	return ingredientResponse{ID: i.ID, Name: i.Name, CreatedAt: i.CreatedAt}
}

type itemResponse struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	OriginType domain.OriginType `json:"originType"`
	OriginMeal *string           `json:"originMeal,omitempty"`
	OriginSlot *domain.Slot      `json:"originSlot,omitempty"`
	OriginDate string            `json:"originDate"`
	Ticked     bool              `json:"ticked"`
	CreatedAt  time.Time         `json:"createdAt"`
}

func toItemResponse(it domain.ShoppingListItem, loc *time.Location) itemResponse {
	return itemResponse{
		ID:         it.ID,
		Name:       it.Name,
		OriginType: it.OriginType,
		OriginMeal: it.OriginMeal,
		OriginSlot: it.OriginSlot,
		OriginDate: formatDate(it.OriginDate, loc),
		Ticked:     it.Ticked,
		CreatedAt:  it.CreatedAt,
	}
}

func toItemResponses(items []domain.ShoppingListItem, loc *time.Location) []itemResponse {
	out := make([]itemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toItemResponse(it, loc))
	}
	return out
}

type groupResponse struct {
	Key       string         `json:"key"`
	Name      string         `json:"name"`
	AllTicked bool           `json:"allTicked"`
	Items     []itemResponse `json:"items"`
}

type shoppingListResponse struct {
	WeekPlanID uuid.UUID       `json:"weekPlanId"`
	ToBuy      []itemResponse  `json:"toBuy"`
	Ticked     []itemResponse  `json:"ticked"`
	Groups     []groupResponse `json:"groups"`
}

func toShoppingListResponse(l *domain.ShoppingList, loc *time.Location) shoppingListResponse {
	resp := shoppingListResponse{
		WeekPlanID: l.WeekPlanID,
		ToBuy:      toItemResponses(l.ToBuy, loc),
		Ticked:     toItemResponses(l.Ticked, loc),
		Groups:     make([]groupResponse, 0, len(l.Groups)),
	}
	for _, g := range l.Groups {
		resp.Groups = append(resp.Groups, groupResponse{
			Key:       g.Key,
			Name:      g.Name,
			AllTicked: g.AllTicked(),
			Items:     toItemResponses(g.Items, loc),
		})
	}
	return resp
}
