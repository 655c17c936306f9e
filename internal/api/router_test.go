package api

import (
	"campus-route-service/internal/adapters/matrix"
	"campus-route-service/internal/services"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	src := matrix.NewStaticMatrixSource(
		[]string{"A", "B", "C"},
		matrix.Symmetric([]matrix.StaticPair{
			{From: "A", To: "B", Distance: 1},
			{From: "B", To: "C", Distance: 1},
			{From: "A", To: "C", Distance: 5},
		}),
	)
	store := services.NewPlannerStore(src, nil, services.DefaultPlannerOptions())
	require.NoError(t, store.Reload(context.Background()))

	return NewRouter(store)
}

func TestRouterRequestID(t *testing.T) {
	router := newTestRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	_, err := uuid.Parse(rr.Header().Get(requestIDHeader))
	require.NoError(t, err, "generated id is a uuid")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "trace-123")
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get(requestIDHeader))
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/locations", "", http.StatusOK},
		{http.MethodPost, "/routes", `{"start":"A","end":"C"}`, http.StatusOK},
		{http.MethodGet, "/distance?from=A&to=C", "", http.StatusOK},
		{http.MethodGet, "/nearby?source=A&radius=1", "", http.StatusOK},
		{http.MethodGet, "/landmarks", "", http.StatusOK},
		{http.MethodGet, "/landmarks/nearby?source=A&radius=1&landmark=B", "", http.StatusOK},
		{http.MethodPost, "/admin/reload", "", http.StatusOK},
		{http.MethodGet, "/admin/reload", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
		assert.Equal(t, tt.want, rr.Code, "%s %s", tt.method, tt.path)
	}
}

func TestStatusWriterImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rr}

	n, err := sw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, sw.status)
	assert.Equal(t, 5, sw.bytes)
}
