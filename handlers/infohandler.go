package handlers

import "net/http"

const (
	apiName    = "Carbon Travel Intelligence API"
	apiVersion = "1.0.0"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" && r.Method != "HEAD" {
		methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Version: apiVersion})
}

type APIInfoResponse struct {
	Name                   string            `json:"name"`
	Version                string            `json:"version"`
	Description            string            `json:"description"`
	EmissionFactorsVersion string            `json:"emission_factors_version"`
	Endpoints              map[string]string `json:"endpoints"`
}

var endpoints = map[string]string{
	"assess":            "POST /v1/assess",
	"batch_assess":      "POST /v1/assess/batch",
	"alternatives":      "POST /v1/alternatives",
	"train_substitutes": "GET /v1/alternatives/train-routes",
	"check_train":       "GET /v1/alternatives/check-train",
	"flight_factors":    "GET /v1/factors/flights",
	"hotel_factors":     "GET /v1/factors/hotels",
	"train_factors":     "GET /v1/factors/trains",
	"grid_intensity":    "GET /v1/factors/grid-intensity",
	"airports":          "GET /v1/factors/airports",
	"distance":          "GET /v1/factors/distance",
	"esg_report":        "POST /v1/reports/esg",
	"train_search":      "GET /v1/trains/search",
	"train_compare":     "GET /v1/trains/compare",
	"train_routes":      "GET /v1/trains/routes",
	"train_stations":    "GET /v1/trains/stations",
	"booking_platforms": "GET /v1/trains/booking-platforms",
	"train_booking":     "GET /v1/trains/book",
}

func HandleAPIInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}
	writeJSON(w, http.StatusOK, APIInfoResponse{
		Name:                   apiName,
		Version:                apiVersion,
		Description:            "Carbon impact of travel itineraries with lower-impact alternatives",
		EmissionFactorsVersion: assessor.FactorsVersion(),
		Endpoints:              endpoints,
	})
}
