package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
	"github.com/heartmarshall/mealplanner-backend/internal/service/meal"
)

type mealService interface {
	CreateMeal(ctx context.Context, input meal.CreateMealInput) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, householdID, mealID uuid.UUID) error
	GetMeal(ctx context.Context, householdID, mealID uuid.UUID) (*domain.Meal, error)
	ListMealsByTag(ctx context.Context, householdID uuid.UUID, tag string) ([]domain.Meal, error)
}

// MealHandler serves the household's meal library.
type MealHandler struct {
	households householdResolver
	svc        mealService
	log        *slog.Logger
}

// NewMealHandler creates a MealHandler.
func NewMealHandler(households householdResolver, svc mealService, logger *slog.Logger) *MealHandler {
	return &MealHandler{households: households, svc: svc, log: logger.With("handler", "meal")}
}

type createMealRequest struct {
	Name        string   `json:"name"`
	Tags        []string `json:"tags"`
	Recipe      *string  `json:"recipe"`
	Ingredients []string `json:"ingredients"`
}

// List handles GET /api/meals. An optional ?tag= filters by slot tag.
func (h *MealHandler) List(w http.ResponseWriter, r *http.Request) {
	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	meals, err := h.svc.ListMealsByTag(r.Context(), hh.ID, r.URL.Query().Get("tag"))
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]mealResponse, 0, len(meals))
	for _, m := range meals {
		resp = append(resp, toMealResponse(m))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/meals.
func (h *MealHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMealRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	m, err := h.svc.CreateMeal(r.Context(), meal.CreateMealInput{
		HouseholdID: hh.ID,
		Name:        req.Name,
		Tags:        req.Tags,
		Recipe:      req.Recipe,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMealResponse(*m))
}

// Get handles GET /api/meals/{id}.
func (h *MealHandler) Get(w http.ResponseWriter, r *http.Request) {
	mealID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	m, err := h.svc.GetMeal(r.Context(), hh.ID, mealID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealResponse(*m))
}

// Delete handles DELETE /api/meals/{id}.
func (h *MealHandler) Delete(w http.ResponseWriter, r *http.Request) {
	mealID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteMeal(r.Context(), hh.ID, mealID); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
