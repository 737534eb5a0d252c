package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	rec := doRequest(HandleHealth, "GET", "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, HealthResponse{Status: "healthy", Version: "1.0.0"}, decodeResponse[HealthResponse](t, rec))

	rec = doRequest(HandleHealth, "POST", "/health", "")
	requireError(t, rec, http.StatusMethodNotAllowed, CodeMethod)
}

func TestHandleAPIInfo(t *testing.T) {
	InitHandlers("2025.1")
	t.Cleanup(func() { InitHandlers("") })

	rec := doRequest(HandleAPIInfo, "GET", "/api", "")
	require.Equal(t, http.StatusOK, rec.Code)

	info := decodeResponse[APIInfoResponse](t, rec)
	assert.Equal(t, "2025.1", info.EmissionFactorsVersion)
	assert.Equal(t, "POST /v1/assess", info.Endpoints["assess"])
	assert.Len(t, info.Endpoints, len(endpoints))
}
