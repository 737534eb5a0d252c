package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func doRequest(handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) ErrorResponse {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeResponse[ErrorResponse](t, rec)
	require.Equal(t, code, body.Code)
	return body
}

const (
	flightJSON = `{"type":"flight","origin":"LHR","destination":"CDG","departure_date":"2025-03-10","cabin_class":"economy"}`
	hotelJSON  = `{"type":"hotel","location":{"country_code":"GB","city":"London"},"check_in":"2025-03-10","check_out":"2025-03-12","star_rating":3}`
)
