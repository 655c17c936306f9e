package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/services"
	"net/http"
	"strings"
)

type LandmarkHandler struct {
	Store *services.PlannerStore
}

// List returns the landmark categories of the active taxonomy.
func (h *LandmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ListLandmarksResponse{Categories: planner.Taxonomy().Names()})
}

func (h *LandmarkHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	source := strings.TrimSpace(q.Get("source"))
	landmark := strings.TrimSpace(q.Get("landmark"))
	if source == "" || landmark == "" {
		writeError(w, r, http.StatusBadRequest, "source and landmark are required")
		return
	}
	radius, ok := floatParam(w, r, "radius")
	if !ok {
		return
	}

	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	names, err := planner.NearbyLandmarks(source, radius, landmark)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "location not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearbyResponse{
		Source:    source,
		Radius:    radius,
		Landmark:  landmark,
		Locations: names,
	})
}
