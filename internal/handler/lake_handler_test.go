package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecolake/ecolake-backend-go/internal/lakes"
	"github.com/ecolake/ecolake-backend-go/internal/service"
)

func newLakeRouter(t *testing.T, payload string) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)

	resolver := lakes.NewResolver(srv.URL, 10*time.Minute)
	h := NewLakeHandler(service.NewLakeService(resolver, 50))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/lakes/nearby", h.NearbyLakes)
	return r
}

func TestNearbyLakesEndpoint(t *testing.T) {
	payload := `{"elements": [
		{"type": "way", "id": 1, "center": {"lat": 12.35, "lon": 77.13},
			"tags": {"natural": "water", "water": "lake", "name": "Lake Example"}}
	]}`
	r := newLakeRouter(t, payload)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lakes/nearby?latitude=12.34&longitude=77.12", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Code int `json:"code"`
		Data struct {
			Count int `json:"count"`
			Lakes []struct {
				Name       string  `json:"name"`
				DistanceKm float64 `json:"distance_km"`
			} `json:"lakes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	assert.Equal(t, 0, body.Code)
	assert.Equal(t, 1, body.Data.Count)
	require.Len(t, body.Data.Lakes, 1)
	assert.Equal(t, "Lake Example", body.Data.Lakes[0].Name)
	assert.Greater(t, body.Data.Lakes[0].DistanceKm, 0.0)
}

func TestNearbyLakesInvalidCoordinate(t *testing.T) {
	r := newLakeRouter(t, `{"elements": []}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lakes/nearby?latitude=123&longitude=77.12", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNearbyLakesMissingCoordinates(t *testing.T) {
	r := newLakeRouter(t, `{"elements": []}`)

	for _, path := range []string{
		"/api/v1/lakes/nearby",
		"/api/v1/lakes/nearby?latitude=12.34",
		"/api/v1/lakes/nearby?longitude=77.12",
	} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "path %s", path)
	}
}

func TestNearbyLakesZeroCoordinateIsValid(t *testing.T) {
	r := newLakeRouter(t, `{"elements": []}`)

	// (0, 0) is a real location in the Gulf of Guinea, not a missing value
	req := httptest.NewRequest(http.MethodGet, "/api/v1/lakes/nearby?latitude=0&longitude=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyLakesEmptyIsOK(t *testing.T) {
	r := newLakeRouter(t, `{"elements": []}`)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/lakes/nearby?latitude=1&longitude=2&radiusKm=25", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Count int `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Data.Count)
}
