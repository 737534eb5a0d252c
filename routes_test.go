package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/config"
)

func serve(handler http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for name, values := range header {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestSetupServer(t *testing.T) {
	server := SetupServer(config.Config{Port: "9090", RateLimitPerMinute: 10})
	assert.Equal(t, ":9090", server.Addr)
	assert.NotNil(t, server.Handler)
}

func TestRoutesOpen(t *testing.T) {
	handler := setupRoutes(config.Config{RateLimitPerMinute: 100})

	rec := serve(handler, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, "GET", "/api", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, "GET", "/v1/factors/distance?origin=LHR&destination=CDG", http.Header{"Origin": {"https://example.com"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(handler, "GET", "/v1/reports/rpt_1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(handler, "GET", "/v1/unknown", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutesRequireAPIKey(t *testing.T) {
	handler := setupRoutes(config.Config{RateLimitPerMinute: 100, RequireAPIKey: true, APIKeys: []string{"secret"}})

	rec := serve(handler, "GET", "/v1/trains/stations", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(handler, "GET", "/v1/trains/stations", http.Header{"X-Api-Key": {"secret"}})
	assert.Equal(t, http.StatusOK, rec.Code)

	// health stays public
	rec = serve(handler, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutesRateLimited(t *testing.T) {
	handler := setupRoutes(config.Config{RateLimitPerMinute: 1})

	rec := serve(handler, "GET", "/v1/trains/booking-platforms", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(handler, "GET", "/v1/trains/booking-platforms", nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}
