package handlers

import (
	"campus-route-service/internal/services"
	"log"
	"net/http"
)

type AdminHandler struct {
	Store *services.PlannerStore
}

// Reload swaps in a freshly loaded matrix. On failure the previous one
// keeps serving.
func (h *AdminHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	if err := h.Store.Reload(r.Context()); err != nil {
		log.Printf("reload failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "reload failed")
		return
	}

	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]any{
		"status":    "reloaded",
		"locations": planner.Graph().Len(),
		"loaded_at": planner.LoadedAt(),
	})
}
