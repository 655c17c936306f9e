package handlers

import (
	"campus-route-service/internal/adapters/matrix"
	"campus-route-service/internal/api/dto"
	"campus-route-service/internal/services"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campusSource() *matrix.StaticMatrixSource {
	return matrix.NewStaticMatrixSource(
		[]string{"Main Gate", "Night Market", "Balme Library", "Great Hall"},
		matrix.Symmetric([]matrix.StaticPair{
			{From: "Main Gate", To: "Night Market", Distance: 1},
			{From: "Night Market", To: "Great Hall", Distance: 1},
			{From: "Main Gate", To: "Balme Library", Distance: 1.5},
			{From: "Balme Library", To: "Great Hall", Distance: 1},
			{From: "Main Gate", To: "Great Hall", Distance: 3},
		}),
	)
}

func loadedStore(t *testing.T) *services.PlannerStore {
	t.Helper()
	store := services.NewPlannerStore(campusSource(), nil, services.DefaultPlannerOptions())
	require.NoError(t, store.Reload(context.Background()))
	return store
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

func TestFindRoutes(t *testing.T) {
	h := &RouteHandler{Store: loadedStore(t)}

	body := `{"start":"Main Gate","end":"Great Hall","landmark":"library","max_routes":5}`
	rr := httptest.NewRecorder()
	h.Find(rr, httptest.NewRequest(http.MethodPost, "/routes", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	res := decode[dto.RouteResultsResponse](t, rr)
	require.Len(t, res.Routes, 2)
	assert.Equal(t, "Main Gate => Night Market => Great Hall", res.Routes[0].Path)
	assert.Equal(t, 2.0, res.Routes[0].Distance)
	assert.Equal(t, 24.0, res.Routes[0].Minutes)
	assert.Equal(t, []dto.SegmentResponse{{To: "Night Market", Distance: 1}, {To: "Great Hall", Distance: 1}}, res.Routes[0].Segments)
	assert.Equal(t, 2, res.TotalFound)
	assert.Equal(t, map[string]int{"Dijkstra's Algorithm": 1, "Landmark-based Search": 1}, res.Summary)
}

func TestFindRoutesExplicitZeroMaxRoutes(t *testing.T) {
	h := &RouteHandler{Store: loadedStore(t)}

	rr := httptest.NewRecorder()
	h.Find(rr, httptest.NewRequest(http.MethodPost, "/routes",
		strings.NewReader(`{"start":"Main Gate","end":"Great Hall","max_routes":0}`)))

	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[dto.RouteResultsResponse](t, rr)
	assert.Empty(t, res.Routes)
	assert.Equal(t, 1, res.TotalFound)
}

func TestFindRoutesErrors(t *testing.T) {
	h := &RouteHandler{Store: loadedStore(t)}

	tests := []struct {
		name   string
		method string
		body   string
		want   int
	}{
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed},
		{"bad json", http.MethodPost, `{"start":`, http.StatusBadRequest},
		{"unknown field", http.MethodPost, `{"start":"A","end":"B","speed":3}`, http.StatusBadRequest},
		{"two objects", http.MethodPost, `{"start":"A","end":"B"}{}`, http.StatusBadRequest},
		{"missing end", http.MethodPost, `{"start":"Main Gate"}`, http.StatusBadRequest},
		{"bad sort", http.MethodPost, `{"start":"Main Gate","end":"Great Hall","sort_by":"scenic"}`, http.StatusBadRequest},
		{"negative detour", http.MethodPost, `{"start":"Main Gate","end":"Great Hall","max_detour":-1}`, http.StatusBadRequest},
		{"unknown location", http.MethodPost, `{"start":"Main Gate","end":"Chemistry"}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.Find(rr, httptest.NewRequest(tt.method, "/routes", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rr.Code)
		})
	}
}

func TestHandlersBeforeLoad(t *testing.T) {
	store := services.NewPlannerStore(campusSource(), nil, services.DefaultPlannerOptions())

	rr := httptest.NewRecorder()
	(&LocationHandler{Store: store}).List(rr, httptest.NewRequest(http.MethodGet, "/locations", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	(&RouteHandler{Store: store}).Find(rr, httptest.NewRequest(http.MethodPost, "/routes",
		strings.NewReader(`{"start":"Main Gate","end":"Great Hall"}`)))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestListLocations(t *testing.T) {
	h := &LocationHandler{Store: loadedStore(t)}

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/locations", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	res := decode[dto.ListLocationsResponse](t, rr)
	require.Len(t, res.Locations, 4)
	assert.Equal(t, dto.LocationResponse{Name: "Main Gate", DisplayName: "Main Gate"}, res.Locations[0])
}

func TestDistance(t *testing.T) {
	h := &LocationHandler{Store: loadedStore(t)}

	rr := httptest.NewRecorder()
	h.Distance(rr, httptest.NewRequest(http.MethodGet, "/distance?from=Main+Gate&to=Great+Hall", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, dto.DistanceResponse{From: "Main Gate", To: "Great Hall", Distance: 2, Minutes: 24}, decode[dto.DistanceResponse](t, rr))

	rr = httptest.NewRecorder()
	h.Distance(rr, httptest.NewRequest(http.MethodGet, "/distance?from=Main+Gate", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	h.Distance(rr, httptest.NewRequest(http.MethodGet, "/distance?from=Main+Gate&to=Chemistry", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNearby(t *testing.T) {
	h := &LocationHandler{Store: loadedStore(t)}

	rr := httptest.NewRecorder()
	h.Nearby(rr, httptest.NewRequest(http.MethodGet, "/nearby?source=Main+Gate&radius=1.5", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []string{"Night Market", "Balme Library"}, decode[dto.NearbyResponse](t, rr).Locations)

	for _, q := range []string{"source=Main+Gate", "source=Main+Gate&radius=-1", "source=Main+Gate&radius=far", "radius=1"} {
		rr = httptest.NewRecorder()
		h.Nearby(rr, httptest.NewRequest(http.MethodGet, "/nearby?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, q)
	}
}

func TestLandmarks(t *testing.T) {
	h := &LandmarkHandler{Store: loadedStore(t)}

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/landmarks", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, decode[dto.ListLandmarksResponse](t, rr).Categories, "library")

	rr = httptest.NewRecorder()
	h.Nearby(rr, httptest.NewRequest(http.MethodGet, "/landmarks/nearby?source=Gate&radius=2&landmark=library", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	res := decode[dto.NearbyResponse](t, rr)
	assert.Equal(t, "library", res.Landmark)
	assert.Equal(t, []string{"Balme Library"}, res.Locations)

	rr = httptest.NewRecorder()
	h.Nearby(rr, httptest.NewRequest(http.MethodGet, "/landmarks/nearby?source=Chemistry&radius=2&landmark=library", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestReload(t *testing.T) {
	src := campusSource()
	store := services.NewPlannerStore(src, nil, services.DefaultPlannerOptions())
	h := &AdminHandler{Store: store}

	rr := httptest.NewRecorder()
	h.Reload(rr, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.EqualValues(t, 4, decode[map[string]any](t, rr)["locations"])

	src.Err = errors.New("matrix unavailable")
	rr = httptest.NewRecorder()
	h.Reload(rr, httptest.NewRequest(http.MethodPost, "/admin/reload", nil))
	assert.Equal(t, http.StatusBadGateway, rr.Code)

	_, err := store.Current()
	require.NoError(t, err, "previous planner still serves")
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rr))

	rr = httptest.NewRecorder()
	Health(rr, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))
}
