package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/mealplanner-backend/internal/domain"
)

type plannerCleaner interface {
	CleanupOldPlannerData(ctx context.Context, householdID uuid.UUID) (*domain.CleanupResult, error)
}

// MaintenanceHandler runs housekeeping jobs on demand.
type MaintenanceHandler struct {
	households householdResolver
	cleaner    plannerCleaner
	loc        *time.Location
	log        *slog.Logger
}

// NewMaintenanceHandler creates a MaintenanceHandler.
func NewMaintenanceHandler(households householdResolver, cleaner plannerCleaner, loc *time.Location, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{households: households, cleaner: cleaner, loc: loc, log: logger.With("handler", "maintenance")}
}

type cleanupResponse struct {
	Cutoff                 string `json:"cutoff"`
	WeekPlansDeleted       int    `json:"weekPlansDeleted"`
	SlotIngredientsDeleted int    `json:"slotIngredientsDeleted"`
}

// Cleanup handles POST /api/maintenance/cleanup.
func (h *MaintenanceHandler) Cleanup(w http.ResponseWriter, r *http.Request) {
	hh, err := h.households.FetchOrCreate(r.Context())
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	res, err := h.cleaner.CleanupOldPlannerData(r.Context(), hh.ID)
	if err != nil {
		respondError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cleanupResponse{
		Cutoff:                 formatDate(res.Cutoff, h.loc),
		WeekPlansDeleted:       res.WeekPlansDeleted,
		SlotIngredientsDeleted: res.SlotIngredientsDeleted,
	})
}
