package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"carbon-travel-server/externals"
	"carbon-travel-server/internals"
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

type TrainSearchResponse struct {
	Found bool   `json:"found"`
	Date  string `json:"date,omitempty"`
	*model.TrainJourney
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// optionalDate reads the date query parameter, which must be YYYY-MM-DD when present.
func optionalDate(r *http.Request) (string, error) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		return "", nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", invalid("date must use the YYYY-MM-DD format")
	}
	return date, nil
}

func HandleTrainSearch(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "origin", "destination")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	date, err := optionalDate(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	journey, ok := internals.SearchTrainJourney(params[0], params[1])
	if !ok {
		writeJSON(w, http.StatusOK, TrainSearchResponse{
			Message:    fmt.Sprintf("No direct high-speed train route found between %s and %s", params[0], params[1]),
			Suggestion: "Consider connecting flights or multi-leg train journeys",
		})
		return
	}
	writeJSON(w, http.StatusOK, TrainSearchResponse{Found: true, Date: date, TrainJourney: &journey})
}

type CompareRoute struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	OriginCity      string `json:"origin_city,omitempty"`
	DestinationCity string `json:"destination_city,omitempty"`
}

type FlightSummary struct {
	EmissionsKg     float64 `json:"emissions_kg"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	CabinClass      string  `json:"cabin_class"`
}

type EmissionsComparison struct {
	FlightKg       float64 `json:"flight_kg"`
	TrainKg        float64 `json:"train_kg"`
	SavingsKg      float64 `json:"savings_kg"`
	SavingsPercent float64 `json:"savings_percent"`
	TrainIsGreener bool    `json:"train_is_greener"`
}

type DurationComparison struct {
	FlightMinutes     int `json:"flight_minutes"`
	TrainMinutes      int `json:"train_minutes"`
	DifferenceMinutes int `json:"difference_minutes"`
}

type DistanceComparison struct {
	FlightKm float64 `json:"flight_km"`
	TrainKm  float64 `json:"train_km"`
}

type Comparison struct {
	Emissions EmissionsComparison `json:"emissions"`
	Duration  DurationComparison  `json:"duration"`
	Distance  DistanceComparison  `json:"distance"`
}

type TrainSummary struct {
	Operator           string                `json:"operator"`
	Duration           string                `json:"duration"`
	HighSpeed          bool                  `json:"high_speed"`
	Stations           model.JourneyStops    `json:"stations"`
	Schedule           model.JourneySchedule `json:"schedule"`
	OriginStation      string                `json:"origin_station"`
	DestinationStation string                `json:"destination_station"`
}

type BookingOptions struct {
	Platforms   []externals.BookingLink `json:"platforms"`
	Recommended *externals.BookingLink  `json:"recommended"`
}

type TrainCompareResponse struct {
	Route          CompareRoute    `json:"route"`
	TrainAvailable bool            `json:"train_available"`
	Message        string          `json:"message,omitempty"`
	Flight         *FlightSummary  `json:"flight,omitempty"`
	Comparison     *Comparison     `json:"comparison,omitempty"`
	Train          *TrainSummary   `json:"train,omitempty"`
	Booking        *BookingOptions `json:"booking,omitempty"`
	Recommendation string          `json:"recommendation,omitempty"`
}

func HandleTrainCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "origin", "destination")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	date, err := optionalDate(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	origin, destination := params[0], params[1]
	cabin := strings.ToLower(r.URL.Query().Get("cabin_class"))
	if cabin == "" {
		cabin = refdata.CabinEconomy
	}

	cmp, err := internals.CompareTrainWithFlight(origin, destination, cabin)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	response := TrainCompareResponse{
		Route: CompareRoute{Origin: origin, Destination: destination},
	}
	if !cmp.TrainAvailable {
		response.Message = fmt.Sprintf("No direct high-speed train route found between %s and %s", origin, destination)
		response.Flight = &FlightSummary{
			EmissionsKg:     internals.Round(cmp.Flight.EmissionsKg, 1),
			DistanceKm:      internals.Round(cmp.Flight.DistanceKm, 0),
			DurationMinutes: cmp.FlightMinutes,
			CabinClass:      cmp.Flight.CabinClass,
		}
		writeJSON(w, http.StatusOK, response)
		return
	}

	train := cmp.Train
	response.TrainAvailable = true
	response.Route.OriginCity = train.Route.Origin.City
	response.Route.DestinationCity = train.Route.Destination.City
	response.Comparison = &Comparison{
		Emissions: EmissionsComparison{
			FlightKg:       internals.Round(cmp.Flight.EmissionsKg, 1),
			TrainKg:        internals.Round(train.Emissions.CO2Kg, 1),
			SavingsKg:      internals.Round(cmp.SavingsKg, 1),
			SavingsPercent: internals.Round(cmp.SavingsPercent, 0),
			TrainIsGreener: cmp.TrainIsGreener,
		},
		Duration: DurationComparison{
			FlightMinutes:     cmp.FlightMinutes,
			TrainMinutes:      train.Journey.DurationMinutes,
			DifferenceMinutes: cmp.DurationDifference,
		},
		Distance: DistanceComparison{
			FlightKm: internals.Round(cmp.Flight.DistanceKm, 0),
			TrainKm:  train.Journey.DistanceKm,
		},
	}
	response.Train = &TrainSummary{
		Operator:           train.Journey.Operator,
		Duration:           train.Journey.Duration,
		HighSpeed:          train.Journey.HighSpeed,
		Stations:           train.Stations,
		Schedule:           train.Schedule,
		OriginStation:      train.Route.Origin.Station,
		DestinationStation: train.Route.Destination.Station,
	}

	links := externals.GetBookingLinks(origin, destination, date)
	response.Booking = &BookingOptions{Platforms: links}
	if len(links) > 0 {
		response.Booking.Recommended = &links[0]
	}

	if cmp.TrainIsGreener {
		response.Recommendation = fmt.Sprintf("Taking the train saves %.0f kg CO₂ (%.0f%% reduction)", cmp.SavingsKg, cmp.SavingsPercent)
	} else {
		response.Recommendation = "Flight may be preferred for this route"
	}
	writeJSON(w, http.StatusOK, response)
}

type TrainRouteSummary struct {
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	Operator        string  `json:"operator"`
	Duration        string  `json:"duration"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	HighSpeed       bool    `json:"high_speed"`
	CO2Kg           float64 `json:"co2_kg"`
}

type TrainRouteListResponse struct {
	Count  int                 `json:"count"`
	Routes []TrainRouteSummary `json:"routes"`
}

func HandleTrainRouteList(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	originFilter := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("origin")))
	tables := refdata.Get()

	routes := []TrainRouteSummary{}
	seen := map[[2]string]bool{}
	for _, route := range tables.TrainRoutes() {
		if originFilter != "" {
			// with a filter each direction is its own entry
			if route.Origin != originFilter {
				continue
			}
		} else {
			pair := [2]string{route.Origin, route.Destination}
			if pair[0] > pair[1] {
				pair[0], pair[1] = pair[1], pair[0]
			}
			if seen[pair] {
				continue
			}
			seen[pair] = true
		}

		routes = append(routes, TrainRouteSummary{
			Origin:          route.Origin,
			Destination:     route.Destination,
			OriginCity:      stationCity(tables, route.Origin),
			DestinationCity: stationCity(tables, route.Destination),
			Operator:        route.Operator,
			Duration:        internals.FormatDuration(route.DurationMinutes),
			DurationMinutes: route.DurationMinutes,
			DistanceKm:      route.DistanceKm,
			HighSpeed:       route.HighSpeed,
			CO2Kg:           route.CO2PerPassengerKg,
		})
	}

	sort.SliceStable(routes, func(i, j int) bool {
		if routes[i].OriginCity != routes[j].OriginCity {
			return routes[i].OriginCity < routes[j].OriginCity
		}
		return routes[i].DestinationCity < routes[j].DestinationCity
	})

	writeJSON(w, http.StatusOK, TrainRouteListResponse{Count: len(routes), Routes: routes})
}

func stationCity(tables *refdata.Tables, airport string) string {
	if station, ok := tables.Station(airport); ok {
		return station.City
	}
	return airport
}

type StationListResponse struct {
	Count    int                  `json:"count"`
	Stations []model.TrainStation `json:"stations"`
}

func HandleStations(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	stations := refdata.Get().Stations()
	sort.SliceStable(stations, func(i, j int) bool {
		return stations[i].City < stations[j].City
	})
	if stations == nil {
		stations = []model.TrainStation{}
	}
	writeJSON(w, http.StatusOK, StationListResponse{Count: len(stations), Stations: stations})
}

type BookingPlatformListResponse struct {
	Count     int                         `json:"count"`
	Platforms []externals.BookingPlatform `json:"platforms"`
}

func HandleBookingPlatforms(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	platforms := externals.BookingPlatforms()
	writeJSON(w, http.StatusOK, BookingPlatformListResponse{Count: len(platforms), Platforms: platforms})
}

type BookingResponse struct {
	Route     CompareRoute            `json:"route"`
	Date      *string                 `json:"date"`
	Platforms []externals.BookingLink `json:"platforms"`
}

func HandleBookTrain(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "origin", "destination")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	date, err := optionalDate(r)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	response := BookingResponse{
		Route:     CompareRoute{Origin: params[0], Destination: params[1]},
		Platforms: externals.GetBookingLinks(params[0], params[1], date),
	}
	if date != "" {
		response.Date = &date
	}
	writeJSON(w, http.StatusOK, response)
}
