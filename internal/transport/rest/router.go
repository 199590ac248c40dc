package rest

import "net/http"

// Handlers groups every REST handler served by the API.
type Handlers struct {
	Health      *HealthHandler
	Household   *HouseholdHandler
	Meal        *MealHandler
	Planner     *PlannerHandler
	Shopping    *ShoppingHandler
	Maintenance *MaintenanceHandler
}

// NewRouter registers all routes on a new ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/household", h.Household.Get)
	mux.HandleFunc("PUT /api/household", h.Household.Rename)
	mux.HandleFunc("GET /api/usual-items", h.Household.ListUsualItems)
	mux.HandleFunc("POST /api/usual-items", h.Household.AddUsualItem)
	mux.HandleFunc("DELETE /api/usual-items/{id}", h.Household.RemoveUsualItem)

	mux.HandleFunc("GET /api/meals", h.Meal.List)
	mux.HandleFunc("POST /api/meals", h.Meal.Create)
	mux.HandleFunc("GET /api/meals/{id}", h.Meal.Get)
	mux.HandleFunc("DELETE /api/meals/{id}", h.Meal.Delete)

	const day = "/api/week-plans/{id}/days/{date}"
	const slot = day + "/slots/{slot}"
	mux.HandleFunc("POST /api/week-plans", h.Planner.FetchOrCreateWeekPlan)
	mux.HandleFunc("GET /api/week-plans/{id}", h.Planner.GetWeekPlan)
	mux.HandleFunc("GET /api/week-plans/{id}/days", h.Planner.ListDays)
	mux.HandleFunc("GET "+day, h.Planner.GetDay)
	mux.HandleFunc("DELETE "+day, h.Planner.RemoveDay)
	mux.HandleFunc("DELETE "+day+"/meals", h.Planner.ClearDay)
	mux.HandleFunc("POST "+slot+"/meals", h.Planner.AssignMeal)
	mux.HandleFunc("DELETE "+slot+"/meals/{mealId}", h.Planner.UnassignMeal)
	mux.HandleFunc("GET "+slot+"/already-have", h.Planner.GetAlreadyHave)
	mux.HandleFunc("PUT "+slot+"/already-have", h.Planner.SetAlreadyHave)
	mux.HandleFunc("POST "+slot+"/already-have/toggle", h.Planner.ToggleAlreadyHave)
	mux.HandleFunc("GET /api/week-plans/{id}/slot-ingredients", h.Planner.ListSlotIngredients)
	mux.HandleFunc("POST /api/week-plans/{id}/slot-ingredients", h.Planner.AddSlotIngredients)
	mux.HandleFunc("DELETE /api/slot-ingredients/{id}", h.Planner.DeleteSlotIngredient)
	mux.HandleFunc("GET /api/week-plans/{id}/manual-ingredients", h.Planner.ListManualIngredients)
	mux.HandleFunc("POST /api/week-plans/{id}/manual-ingredients", h.Planner.AddManualIngredient)
	mux.HandleFunc("DELETE /api/manual-ingredients/{id}", h.Planner.DeleteManualIngredient)

	const list = "/api/week-plans/{id}/shopping-list"
	mux.HandleFunc("GET "+list, h.Shopping.GetList)
	mux.HandleFunc("POST "+list+"/generate", h.Shopping.Generate)
	mux.HandleFunc("POST "+list+"/items", h.Shopping.AddItem)
	mux.HandleFunc("POST "+list+"/clear-ticked", h.Shopping.ClearTickedOff)
	mux.HandleFunc("PUT "+list+"/groups/{name}", h.Shopping.SetGroupTicked)
	mux.HandleFunc("POST /api/shopping-list/items/{id}/toggle", h.Shopping.Toggle)

	mux.HandleFunc("POST /api/maintenance/cleanup", h.Maintenance.Cleanup)

	return mux
}
