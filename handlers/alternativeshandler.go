package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"carbon-travel-server/internals"
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const defaultMaxAlternatives = 5

type AlternativesConstraints struct {
	MaxAlternatives *int `json:"max_alternatives"`
}

type AlternativesRequest struct {
	Segments          []model.Segment         `json:"segments"`
	TravelerCount     *int                    `json:"traveler_count"`
	Constraints       AlternativesConstraints `json:"constraints"`
	RankingPreference string                  `json:"ranking_preference"`
}

type AlternativesResponse struct {
	OriginalEmissions      model.TotalEmissions `json:"original_emissions"`
	Alternatives           []model.Alternative  `json:"alternatives"`
	BestAlternativeSummary string               `json:"best_alternative_summary"`
}

func HandleAlternatives(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		findAlternatives(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func findAlternatives(w http.ResponseWriter, r *http.Request) {
	var request AlternativesRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeFailure(w, r, err)
		return
	}

	response, err := computeAlternatives(request)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func computeAlternatives(request AlternativesRequest) (AlternativesResponse, error) {
	itinerary := model.Itinerary{Segments: request.Segments, TravelerCount: request.TravelerCount}
	if err := validateItinerary(itinerary); err != nil {
		return AlternativesResponse{}, err
	}
	maxAlternatives := defaultMaxAlternatives
	if request.Constraints.MaxAlternatives != nil {
		if *request.Constraints.MaxAlternatives < 1 {
			return AlternativesResponse{}, invalid("constraints.max_alternatives must be at least 1")
		}
		maxAlternatives = *request.Constraints.MaxAlternatives
	}

	travelers := itinerary.Travelers()
	evaluations, err := internals.EvaluateSegments(request.Segments, travelers)
	if err != nil {
		return AlternativesResponse{}, err
	}
	original, total := internals.SummarizeEmissions(evaluations, travelers)

	alternatives := internals.ComputeAlternatives(evaluations, travelers, maxAlternatives)
	internals.FinalizeSavings(alternatives, total)
	if err := internals.RankAlternatives(alternatives, request.RankingPreference); err != nil {
		if errors.Is(err, internals.ErrUnknownRanking) {
			return AlternativesResponse{}, invalid("ranking_preference must be 'emissions', 'cost', 'time', or 'balanced'")
		}
		return AlternativesResponse{}, err
	}
	if alternatives == nil {
		alternatives = []model.Alternative{}
	}

	response := AlternativesResponse{
		OriginalEmissions: original,
		Alternatives:      alternatives,
	}
	if len(alternatives) > 0 {
		best := alternatives[0].Savings
		response.BestAlternativeSummary = fmt.Sprintf("Best option saves %s kg CO₂e (%s%% reduction)",
			strconv.FormatFloat(best.AbsoluteKg, 'f', -1, 64),
			strconv.FormatFloat(best.Percentage, 'f', -1, 64))
	}
	return response, nil
}

type SubstitutionRouteList struct {
	AvailableRoutes []model.SubstitutionRoute `json:"available_routes"`
	Total           int                       `json:"total"`
}

func HandleTrainRoutes(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	routes := refdata.Get().SubstitutionRoutes()
	writeJSON(w, http.StatusOK, SubstitutionRouteList{AvailableRoutes: routes, Total: len(routes)})
}

type TrainRouteCheck struct {
	OriginAirport      string  `json:"origin_airport"`
	DestinationAirport string  `json:"destination_airport"`
	TrainRoute         string  `json:"train_route"`
	OriginStation      string  `json:"origin_station"`
	DestinationStation string  `json:"destination_station"`
	TrainType          string  `json:"train_type"`
	DurationMinutes    int     `json:"duration_minutes"`
	DistanceKm         float64 `json:"distance_km"`
	EmissionsKg        float64 `json:"emissions_kg"`
	EstimatedCostEur   float64 `json:"estimated_cost_eur"`
}

type TrainCheckComparison struct {
	FlightEmissionsKg float64 `json:"flight_emissions_kg"`
	TrainEmissionsKg  float64 `json:"train_emissions_kg"`
	SavingsKg         float64 `json:"savings_kg"`
	SavingsPercent    float64 `json:"savings_percent"`
}

type TrainCheckResponse struct {
	TrainAvailable bool                  `json:"train_available"`
	Route          *TrainRouteCheck      `json:"route,omitempty"`
	Comparison     *TrainCheckComparison `json:"comparison,omitempty"`
	Message        string                `json:"message,omitempty"`
}

func HandleCheckTrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "origin", "destination")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	origin, destination := params[0], params[1]

	check, ok := internals.CheckSubstitution(origin, destination)
	if !ok {
		writeJSON(w, http.StatusOK, TrainCheckResponse{
			Message: fmt.Sprintf("No direct train route available for %s → %s", origin, destination),
		})
		return
	}

	route := check.Route
	originStation, destinationStation := route.OriginStation, route.DestinationStation
	if route.Origin != origin {
		originStation, destinationStation = destinationStation, originStation
	}
	response := TrainCheckResponse{
		TrainAvailable: true,
		Route: &TrainRouteCheck{
			OriginAirport:      origin,
			DestinationAirport: destination,
			TrainRoute:         route.RouteName,
			OriginStation:      originStation,
			DestinationStation: destinationStation,
			TrainType:          route.TrainType,
			DurationMinutes:    route.DurationMinutes,
			DistanceKm:         route.DistanceKm,
			EmissionsKg:        internals.Round(check.TrainKg, 3),
			EstimatedCostEur:   route.TypicalPriceEur,
		},
	}
	if check.Flight != nil {
		response.Comparison = &TrainCheckComparison{
			FlightEmissionsKg: internals.Round(check.Flight.EmissionsKg, 2),
			TrainEmissionsKg:  internals.Round(check.TrainKg, 3),
			SavingsKg:         internals.Round(check.SavingsKg, 2),
			SavingsPercent:    internals.Round(check.SavingsPercent, 1),
		}
	}
	writeJSON(w, http.StatusOK, response)
}
