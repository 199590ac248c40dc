package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
	"github.com/heartmarshall/mealplanner-backend/internal/service/shopping"
)

type shoppingService interface {
	GetList(ctx context.Context, weekPlanID uuid.UUID) (*domain.ShoppingList, error)
	Generate(ctx context.Context, weekPlanID uuid.UUID) (*shopping.ReconcileResult, error)
	AddManualItem(ctx context.Context, input shopping.AddManualItemInput) (*domain.ShoppingListItem, error)
	Toggle(ctx context.Context, itemID uuid.UUID) (*domain.ShoppingListItem, error)
	SetGroupTicked(ctx context.Context, input shopping.SetGroupTickedInput) (int, error)
	ClearTickedOff(ctx context.Context, weekPlanID uuid.UUID) (*shopping.ClearResult, error)
}

// ShoppingHandler serves a week plan's shopping list.
type ShoppingHandler struct {
	svc shoppingService
	loc *time.Location
	log *slog.Logger
}

// NewShoppingHandler creates a ShoppingHandler. loc formats origin dates.
func NewShoppingHandler(svc shoppingService, loc *time.Location, logger *slog.Logger) *ShoppingHandler {
	return &ShoppingHandler{svc: svc, loc: loc, log: logger.With("handler", "shopping")}
}

type groupTickedRequest struct {
	Ticked bool `json:"ticked"`
}

type generateResponse struct {
	Removed int                  `json:"removed"`
	Added   int                  `json:"added"`
	List    shoppingListResponse `json:"list"`
}

type clearResponse struct {
	Removed     int                  `json:"removed"`
	SlotsMarked int                  `json:"slotsMarked"`
	DaysMissing int                  `json:"daysMissing"`
	List        shoppingListResponse `json:"list"`
}

type groupTickedResponse struct {
	Updated int                  `json:"updated"`
	List    shoppingListResponse `json:"list"`
}

// GetList handles GET /api/week-plans/{id}/shopping-list.
func (h *ShoppingHandler) GetList(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	list, ok := h.list(w, r, weekPlanID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Generate handles POST /api/week-plans/{id}/shopping-list/generate.
func (h *ShoppingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.Generate(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	list, ok := h.list(w, r, weekPlanID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{Removed: res.Removed, Added: res.Added, List: list})
}

// AddItem handles POST /api/week-plans/{id}/shopping-list/items.
func (h *ShoppingHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item, err := h.svc.AddManualItem(r.Context(), shopping.AddManualItemInput{WeekPlanID: weekPlanID, Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(*item, h.loc))
}

// ClearTickedOff handles POST /api/week-plans/{id}/shopping-list/clear-ticked.
func (h *ShoppingHandler) ClearTickedOff(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.ClearTickedOff(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	list, ok := h.list(w, r, weekPlanID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{
		Removed:     res.Removed,
		SlotsMarked: res.SlotsMarked,
		DaysMissing: res.DaysMissing,
		List:        list,
	})
}

// SetGroupTicked handles PUT /api/week-plans/{id}/shopping-list/groups/{name}.
func (h *ShoppingHandler) SetGroupTicked(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req groupTickedRequest
	if !decodeBody(w, r, &req) {
		return
	}

	n, err := h.svc.SetGroupTicked(r.Context(), shopping.SetGroupTickedInput{
		WeekPlanID: weekPlanID,
		Name:       r.PathValue("name"),
		Ticked:     req.Ticked,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	list, ok := h.list(w, r, weekPlanID)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, groupTickedResponse{Updated: n, List: list})
}

// Toggle handles POST /api/shopping-list/items/{id}/toggle.
func (h *ShoppingHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Toggle(r.Context(), itemID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(*item, h.loc))
}

func (h *ShoppingHandler) list(w http.ResponseWriter, r *http.Request, weekPlanID uuid.UUID) (shoppingListResponse, bool) {
	list, err := h.svc.GetList(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return shoppingListResponse{}, false
	}
	return toShoppingListResponse(list, h.loc), true
}
