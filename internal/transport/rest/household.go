package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
	"github.com/heartmarshall/mealplanner-backend/internal/service/household"
)

// householdResolver yields the deployment's single household.
type householdResolver interface {
	FetchOrCreate(ctx context.Context) (*domain.Household, error)
}

type householdService interface {
	householdResolver
	Rename(ctx context.Context, input household.RenameInput) (*domain.Household, error)
	AddUsualItem(ctx context.Context, input household.AddUsualItemInput) (*domain.UsualItem, error)
	RemoveUsualItem(ctx context.Context, householdID, itemID uuid.UUID) error
	ListUsualItems(ctx context.Context, householdID uuid.UUID) ([]domain.UsualItem, error)
}

// HouseholdHandler serves the household and its usual items.
type HouseholdHandler struct {
	svc householdService
	log *slog.Logger
}

// NewHouseholdHandler creates a HouseholdHandler.
func NewHouseholdHandler(svc householdService, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{svc: svc, log: logger.With("handler", "household")}
}

type nameRequest struct {
	Name string `json:"name"`
}

// Get handles GET /api/household.
func (h *HouseholdHandler) Get(w http.ResponseWriter, r *http.Request) {
	hh, err := h.svc.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(hh))
}

// Rename handles PUT /api/household.
func (h *HouseholdHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hh, err := h.svc.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	hh, err = h.svc.Rename(r.Context(), household.RenameInput{HouseholdID: hh.ID, Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toHouseholdResponse(hh))
}

// ListUsualItems handles GET /api/usual-items.
func (h *HouseholdHandler) ListUsualItems(w http.ResponseWriter, r *http.Request) {
	hh, err := h.svc.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	items, err := h.svc.ListUsualItems(r.Context(), hh.ID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	resp := make([]usualItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, toUsualItemResponse(it))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddUsualItem handles POST /api/usual-items.
func (h *HouseholdHandler) AddUsualItem(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	hh, err := h.svc.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	item, err := h.svc.AddUsualItem(r.Context(), household.AddUsualItemInput{HouseholdID: hh.ID, Name: req.Name})
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUsualItemResponse(*item))
}

// RemoveUsualItem handles DELETE /api/usual-items/{id}.
func (h *HouseholdHandler) RemoveUsualItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	hh, err := h.svc.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	if err := h.svc.RemoveUsualItem(r.Context(), hh.ID, itemID); err != nil {
		respondError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
