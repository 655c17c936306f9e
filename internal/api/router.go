package api

import (
	"campus-route-service/internal/api/handlers"
	"campus-route-service/internal/services"
	"net/http"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers read the current planner from the store on every request.
func NewRouter(store *services.PlannerStore) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Store: store}
	locationHandler := &handlers.LocationHandler{Store: store}
	landmarkHandler := &handlers.LandmarkHandler{Store: store}
	adminHandler := &handlers.AdminHandler{Store: store}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routeHandler.Find)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/distance", locationHandler.Distance)
	mux.HandleFunc("/nearby", locationHandler.Nearby)
	mux.HandleFunc("/landmarks", landmarkHandler.List)
	mux.HandleFunc("/landmarks/nearby", landmarkHandler.Nearby)
	mux.HandleFunc("/admin/reload", adminHandler.Reload)

	return loggingMiddleware(mux)
}
