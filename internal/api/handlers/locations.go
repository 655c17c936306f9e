package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/services"
	"net/http"
	"strings"
)

// LocationHandler exposes read-only lookups over the loaded campus graph.
type LocationHandler struct {
	Store *services.PlannerStore
}

func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}
	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	g := planner.Graph()
	res := dto.ListLocationsResponse{
		Locations: make([]dto.LocationResponse, 0, g.Len()),
	}
	for i := 0; i < g.Len(); i++ {
		res.Locations = append(res.Locations, dto.LocationResponse{
			Name:        g.Name(i),
			DisplayName: g.DisplayName(i),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Distance answers from the precomputed all-pairs table.
func (h *LocationHandler) Distance(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to are required")
		return
	}

	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	d, found := planner.AllPairs().ShortestDistance(from, to)
	if !found {
		writeError(w, r, http.StatusNotFound, "no path found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DistanceResponse{
		From:     from,
		To:       to,
		Distance: d,
		Minutes:  planner.Tuning().TravelTime(d),
	})
}

// Nearby lists every location reachable from source within radius.
func (h *LocationHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	source := strings.TrimSpace(r.URL.Query().Get("source"))
	if source == "" {
		writeError(w, r, http.StatusBadRequest, "source is required")
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

	names, err := planner.AllPairs().WithinDistance(source, radius)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "location not found")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NearbyResponse{Source: source, Radius: radius, Locations: names})
}
