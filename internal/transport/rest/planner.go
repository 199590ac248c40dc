package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
	"github.com/heartmarshall/mealplanner-backend/internal/service/planner"
)

type plannerService interface {
	Location() *time.Location
	FetchOrCreateWeekPlan(ctx context.Context, householdID uuid.UUID, weekStart time.Time) (*domain.WeekPlan, error)
	CurrentWeekPlan(ctx context.Context, householdID uuid.UUID) (*domain.WeekPlan, error)
	GetWeekPlan(ctx context.Context, weekPlanID uuid.UUID) (*domain.WeekPlan, error)
	ListDays(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Day, error)
	GetDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error)
	ClearDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) (*domain.Day, error)
	RemoveDay(ctx context.Context, weekPlanID uuid.UUID, date time.Time) error
	AssignMeal(ctx context.Context, input planner.MealAssignmentInput) (*domain.Day, error)
	UnassignMeal(ctx context.Context, input planner.MealAssignmentInput) (*domain.Day, error)
	SetAlreadyHave(ctx context.Context, input planner.SetAlreadyHaveInput) (*domain.Day, error)
	ToggleAlreadyHave(ctx context.Context, ref planner.SlotRef) (bool, error)
	GetAlreadyHave(ctx context.Context, ref planner.SlotRef) (bool, error)
	AddManualSlotIngredients(ctx context.Context, input planner.AddSlotIngredientsInput) ([]domain.ManualSlotIngredient, error)
	ListManualSlotIngredients(ctx context.Context, ref planner.SlotRef) ([]domain.ManualSlotIngredient, error)
	ListAllSlotIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.ManualSlotIngredient, error)
	DeleteManualSlotIngredient(ctx context.Context, id uuid.UUID) error
	AddManualIngredient(ctx context.Context, input planner.AddManualIngredientInput) (*domain.Ingredient, error)
	ListManualIngredients(ctx context.Context, weekPlanID uuid.UUID) ([]domain.Ingredient, error)
	DeleteManualIngredient(ctx context.Context, id uuid.UUID) error
}

// PlannerHandler serves week plans, days, slots and planner ingredients.
type PlannerHandler struct {
	households householdResolver
	svc        plannerService
	loc        *time.Location
	log        *slog.Logger
}

// NewPlannerHandler creates a PlannerHandler. Path and body dates are read
// in the planner's location.
func NewPlannerHandler(households householdResolver, svc plannerService, logger *slog.Logger) *PlannerHandler {
	return &PlannerHandler{
		households: households,
		svc:        svc,
		loc:        svc.Location(),
		log:        logger.With("handler", "planner"),
	}
}

type weekPlanRequest struct {
	WeekStart string `json:"weekStart"`
}

type mealIDRequest struct {
	MealID uuid.UUID `json:"mealId"`
}

type alreadyHaveRequest struct {
	Value bool `json:"value"`
}

type alreadyHaveResponse struct {
	Date        string      `json:"date"`
	Slot        domain.Slot `json:"slot"`
	AlreadyHave bool        `json:"alreadyHave"`
}

type slotIngredientsRequest struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
	Text string `json:"text"`
}

// FetchOrCreateWeekPlan handles POST /api/week-plans. Any date of the wanted
// week may be given; an empty body selects the current week.
func (h *PlannerHandler) FetchOrCreateWeekPlan(w http.ResponseWriter, r *http.Request) {
	var req weekPlanRequest
	if r.ContentLength != 0 && !decodeBody(w, r, &req) {
		return
	}

	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	var wp *domain.WeekPlan
	if req.WeekStart == "" {
		wp, err = h.svc.CurrentWeekPlan(r.Context(), hh.ID)
	} else {
		var weekStart time.Time
		if weekStart, err = parseDate(req.WeekStart, h.loc); err == nil {
			wp, err = h.svc.FetchOrCreateWeekPlan(r.Context(), hh.ID, weekStart)
		}
	}
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeekPlanResponse(wp, h.loc))
}

// GetWeekPlan handles GET /api/week-plans/{id}.
func (h *PlannerHandler) GetWeekPlan(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	wp, err := h.svc.GetWeekPlan(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeekPlanResponse(wp, h.loc))
}

// ListDays handles GET /api/week-plans/{id}/days.
func (h *PlannerHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	days, err := h.svc.ListDays(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]dayResponse, 0, len(days))
	for i := range days {
		resp = append(resp, toDayResponse(&days[i], h.loc))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetDay handles GET /api/week-plans/{id}/days/{date}. Days not created
// yet by a slot write are 404.
func (h *PlannerHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	weekPlanID, date, ok := h.dayPath(w, r)
	if !ok {
		return
	}

	day, err := h.svc.GetDay(r.Context(), weekPlanID, date)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day, h.loc))
}

// ClearDay handles DELETE /api/week-plans/{id}/days/{date}/meals.
func (h *PlannerHandler) ClearDay(w http.ResponseWriter, r *http.Request) {
	weekPlanID, date, ok := h.dayPath(w, r)
	if !ok {
		return
	}

	day, err := h.svc.ClearDay(r.Context(), weekPlanID, date)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day, h.loc))
}

// RemoveDay handles DELETE /api/week-plans/{id}/days/{date}.
func (h *PlannerHandler) RemoveDay(w http.ResponseWriter, r *http.Request) {
	weekPlanID, date, ok := h.dayPath(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveDay(r.Context(), weekPlanID, date); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignMeal handles POST /api/week-plans/{id}/days/{date}/slots/{slot}/meals.
func (h *PlannerHandler) AssignMeal(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.slotPath(w, r)
	if !ok {
		return
	}
	var req mealIDRequest
	if !decodeBody(w, r, &req) {
		return
	}

	day, err := h.svc.AssignMeal(r.Context(), planner.MealAssignmentInput{SlotRef: ref, MealID: req.MealID})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day, h.loc))
}

// UnassignMeal handles DELETE /api/week-plans/{id}/days/{date}/slots/{slot}/meals/{mealId}.
func (h *PlannerHandler) UnassignMeal(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.slotPath(w, r)
	if !ok {
		return
	}
	mealID, ok := pathID(w, r, "mealId")
	if !ok {
		return
	}

	day, err := h.svc.UnassignMeal(r.Context(), planner.MealAssignmentInput{SlotRef: ref, MealID: mealID})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day, h.loc))
}

// GetAlreadyHave handles GET .../slots/{slot}/already-have.
func (h *PlannerHandler) GetAlreadyHave(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.slotPath(w, r)
	if !ok {
		return
	}

	value, err := h.svc.GetAlreadyHave(r.Context(), ref)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.alreadyHave(ref, value))
}

// SetAlreadyHave handles PUT .../slots/{slot}/already-have.
func (h *PlannerHandler) SetAlreadyHave(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.slotPath(w, r)
	if !ok {
		return
	}
	var req alreadyHaveRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.svc.SetAlreadyHave(r.Context(), planner.SetAlreadyHaveInput{SlotRef: ref, Value: req.Value}); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.alreadyHave(ref, req.Value))
}

// ToggleAlreadyHave handles POST .../slots/{slot}/already-have/toggle.
func (h *PlannerHandler) ToggleAlreadyHave(w http.ResponseWriter, r *http.Request) {
	ref, ok := h.slotPath(w, r)
	if !ok {
		return
	}

	value, err := h.svc.ToggleAlreadyHave(r.Context(), ref)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, h.alreadyHave(ref, value))
}

// ListSlotIngredients handles GET /api/week-plans/{id}/slot-ingredients.
// With both ?date= and ?slot= it lists a single slot.
func (h *PlannerHandler) ListSlotIngredients(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var (
		items []domain.ManualSlotIngredient
		err   error
	)
	q := r.URL.Query()
	if q.Get("date") == "" && q.Get("slot") == "" {
		items, err = h.svc.ListAllSlotIngredients(r.Context(), weekPlanID)
	} else {
		var ref planner.SlotRef
		if ref, err = h.slotRef(weekPlanID, q.Get("date"), q.Get("slot")); err == nil {
			items, err = h.svc.ListManualSlotIngredients(r.Context(), ref)
		}
	}
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]slotIngredientResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toSlotIngredientResponse(it, h.loc))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddSlotIngredients handles POST /api/week-plans/{id}/slot-ingredients.
// The text may hold several ingredients, one per line.
func (h *PlannerHandler) AddSlotIngredients(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req slotIngredientsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ref, err := h.slotRef(weekPlanID, req.Date, req.Slot)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	created, err := h.svc.AddManualSlotIngredients(r.Context(), planner.AddSlotIngredientsInput{SlotRef: ref, Text: req.Text})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]slotIngredientResponse, 0, len(created))
	for _, it := range created {
		resp = append(resp, toSlotIngredientResponse(it, h.loc))
	}
	writeJSON(w, http.StatusCreated, resp)
}

// DeleteSlotIngredient handles DELETE /api/slot-ingredients/{id}.
func (h *PlannerHandler) DeleteSlotIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteManualSlotIngredient(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListManualIngredients handles GET /api/week-plans/{id}/manual-ingredients.
func (h *PlannerHandler) ListManualIngredients(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	items, err := h.svc.ListManualIngredients(r.Context(), weekPlanID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]ingredientResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toIngredientResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddManualIngredient handles POST /api/week-plans/{id}/manual-ingredients.
func (h *PlannerHandler) AddManualIngredient(w http.ResponseWriter, r *http.Request) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	ing, err := h.svc.AddManualIngredient(r.Context(), planner.AddManualIngredientInput{WeekPlanID: weekPlanID, Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIngredientResponse(*ing))
}

// DeleteManualIngredient handles DELETE /api/manual-ingredients/{id}.
func (h *PlannerHandler) DeleteManualIngredient(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteManualIngredient(r.Context(), id); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlannerHandler) dayPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, time.Time, bool) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return uuid.Nil, time.Time{}, false
	}
	date, err := parseDate(r.PathValue("date"), h.loc)
	if err != nil {
		respondError(h.log, w, r, err)
		return uuid.Nil, time.Time{}, false
	}
	return weekPlanID, date, true
}

func (h *PlannerHandler) slotPath(w http.ResponseWriter, r *http.Request) (planner.SlotRef, bool) {
	weekPlanID, ok := pathID(w, r, "id")
	if !ok {
		return planner.SlotRef{}, false
	}
	ref, err := h.slotRef(weekPlanID, r.PathValue("date"), r.PathValue("slot"))
	if err != nil {
		respondError(h.log, w, r, err)
		return planner.SlotRef{}, false
	}
	return ref, true
}

func (h *PlannerHandler) slotRef(weekPlanID uuid.UUID, rawDate, rawSlot string) (planner.SlotRef, error) {
	date, err := parseDate(rawDate, h.loc)
	if err != nil {
		return planner.SlotRef{}, err
	}
	slot, err := domain.ParseSlot(rawSlot)
	if err != nil {
		return planner.SlotRef{}, err
	}
	return planner.SlotRef{WeekPlanID: weekPlanID, Date: date, Slot: slot}, nil
}

func (h *PlannerHandler) alreadyHave(ref planner.SlotRef, value bool) alreadyHaveResponse {
	return alreadyHaveResponse{Date: formatDate(ref.Date, h.loc), Slot: ref.Slot, AlreadyHave: value}
}
