package handlers

import (
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/domain"
	"campus-route-service/internal/services"
	"errors"
	"log"
	"net/http"
	"strings"
)

type RouteHandler struct {
	Store *services.PlannerStore
}

// Find runs the planner for one start/end pair. Omitted preferences take
// their defaults; an unknown location is a 404, an empty result is not.
func (h *RouteHandler) Find(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.RouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	planner, ok := currentPlanner(w, r, h.Store)
	if !ok {
		return
	}

	prefs := domain.DefaultPreferences()
	if req.SortBy != "" {
		prefs.SortBy = domain.SortCriterion(req.SortBy)
	}
	if req.MaxRoutes != nil {
		prefs.MaxRoutes = *req.MaxRoutes
	}
	if req.MaxDetour != nil {
		prefs.MaxDetour = *req.MaxDetour
	}
	if req.UseOptimizations != nil {
		prefs.UseOptimizations = *req.UseOptimizations
	}
	prefs.Landmark = strings.TrimSpace(req.Landmark)

	results, err := planner.FindBestRoutes(r.Context(), req.Start, req.End, prefs)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownLocation) {
			writeError(w, r, http.StatusNotFound, "location not found")
			return
		}
		log.Printf("find best routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResults(results))
}

func toRouteResults(res domain.RouteResults) dto.RouteResultsResponse {
	out := dto.RouteResultsResponse{
		Routes:     make([]dto.RouteResponse, 0, len(res.Routes)),
		TotalFound: res.TotalFound,
		Summary:    make(map[string]int, len(res.Summary)),
	}

	for alg, n := range res.Summary {
		out.Summary[string(alg)] = n
	}

	for _, rt := range res.Routes {
		segments := make([]dto.SegmentResponse, 0, len(rt.Segments))
		for _, s := range rt.Segments {
			segments = append(segments, dto.SegmentResponse{To: s.To, Distance: s.Distance})
		}

		out.Routes = append(out.Routes, dto.RouteResponse{
			Path:      rt.Path(),
			Stops:     rt.Stops,
			Segments:  segments,
			Distance:  rt.Distance,
			Minutes:   rt.Minutes,
			Algorithm: string(rt.Algorithm),
		})
	}

	return out
}
