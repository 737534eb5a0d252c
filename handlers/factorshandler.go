package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"carbon-travel-server/internals"
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const factorsUpdatedAt = "2024-12-01"

type FlightFactor struct {
	HaulType                   string  `json:"haul_type"`
	CabinClass                 string  `json:"cabin_class"`
	KgCO2ePerKm                float64 `json:"kg_co2e_per_km"`
	KgCO2ePerKmWithRF          float64 `json:"kg_co2e_per_km_with_rf"`
	RadiativeForcingMultiplier float64 `json:"radiative_forcing_multiplier"`
}

type FlightFactorsResponse struct {
	Factors                    []FlightFactor     `json:"factors"`
	RadiativeForcingMultiplier float64            `json:"radiative_forcing_multiplier"`
	RadiativeForcingNote       string             `json:"radiative_forcing_note"`
	HaulTypeDefinitions        map[string]string  `json:"haul_type_definitions"`
	CabinClassMultipliers      map[string]float64 `json:"cabin_class_multipliers"`
	Source                     string             `json:"source"`
	UpdatedAt                  string             `json:"updated_at"`
}

func HandleFlightFactors(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	cabin := strings.ToLower(r.URL.Query().Get("cabin_class"))
	haul := strings.ToLower(r.URL.Query().Get("haul_type"))

	factors := []FlightFactor{}
	for _, row := range refdata.FlightFactors() {
		if haul != "" && row.HaulType != haul {
			continue
		}
		if cabin != "" && row.CabinClass != cabin {
			continue
		}
		factors = append(factors, FlightFactor{
			HaulType:                   row.HaulType,
			CabinClass:                 row.CabinClass,
			KgCO2ePerKm:                internals.Round(row.Factor, 4),
			KgCO2ePerKmWithRF:          internals.Round(row.Factor*refdata.RadiativeForcingMultiplier, 4),
			RadiativeForcingMultiplier: refdata.RadiativeForcingMultiplier,
		})
	}

	writeJSON(w, http.StatusOK, FlightFactorsResponse{
		Factors:                    factors,
		RadiativeForcingMultiplier: refdata.RadiativeForcingMultiplier,
		RadiativeForcingNote:       "Non-CO₂ effects at altitude (contrails, NOx) are already reflected in the base factors",
		HaulTypeDefinitions: map[string]string{
			refdata.HaulShort:  "< 1,500 km",
			refdata.HaulMedium: "1,500 - 4,000 km",
			refdata.HaulLong:   "> 4,000 km",
		},
		CabinClassMultipliers: refdata.CabinMultipliers(),
		Source:                "DEFRA 2024 + ICAO Carbon Calculator",
		UpdatedAt:             factorsUpdatedAt,
	})
}

type GridIntensityInfo struct {
	ValueGCO2PerKwh float64 `json:"value_g_co2_per_kwh"`
	Source          string  `json:"source"`
	Quality         string  `json:"quality"`
	Notes           *string `json:"notes"`
}

type HotelFactor struct {
	StarRating     int     `json:"star_rating"`
	KwhPerNight    float64 `json:"kwh_per_night"`
	KgCO2ePerNight float64 `json:"kg_co2e_per_night"`
}

type HotelFactorsResponse struct {
	CountryCode              string            `json:"country_code"`
	GridCarbonIntensity      GridIntensityInfo `json:"grid_carbon_intensity"`
	HotelEmissionFactors     []HotelFactor     `json:"hotel_emission_factors"`
	EcoCertificationDiscount float64           `json:"eco_certification_discount"`
	EcoCertificationNote     string            `json:"eco_certification_note"`
	Source                   string            `json:"source"`
}

func HandleHotelFactors(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "country_code")
	if err != nil {
		writeFailure(w, r, invalid("country_code query parameter is required"))
		return
	}
	country := params[0]
	grid := refdata.Get().GridIntensity(country)

	factors := make([]HotelFactor, 0, 5)
	for _, row := range refdata.HotelEnergyTable() {
		factors = append(factors, HotelFactor{
			StarRating:     row.StarRating,
			KwhPerNight:    row.KwhPerNight,
			KgCO2ePerNight: internals.Round(row.KwhPerNight*grid.Intensity/1000, 2),
		})
	}

	writeJSON(w, http.StatusOK, HotelFactorsResponse{
		CountryCode: country,
		GridCarbonIntensity: GridIntensityInfo{
			ValueGCO2PerKwh: grid.Intensity,
			Source:          grid.Source,
			Quality:         grid.Quality,
			Notes:           grid.Notes,
		},
		HotelEmissionFactors:     factors,
		EcoCertificationDiscount: refdata.EcoCertifiedDiscount,
		EcoCertificationNote:     fmt.Sprintf("Eco-certified hotels typically use %.0f%% less energy", refdata.EcoCertifiedDiscount*100),
		Source:                   "Cornell Hotel Sustainability Benchmarking Index + Grid data",
	})
}

type TrainFactor struct {
	TrainType   string  `json:"train_type"`
	KgCO2ePerKm float64 `json:"kg_co2e_per_km"`
	GCO2ePerKm  float64 `json:"g_co2e_per_km"`
}

type TrainFactorsResponse struct {
	Factors   []TrainFactor `json:"factors"`
	Note      string        `json:"note"`
	Source    string        `json:"source"`
	UpdatedAt string        `json:"updated_at"`
}

func HandleTrainFactors(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	rows := refdata.TrainFactors()
	factors := make([]TrainFactor, 0, len(rows))
	for _, row := range rows {
		factors = append(factors, TrainFactor{
			TrainType:   row.TrainType,
			KgCO2ePerKm: row.Factor,
			GCO2ePerKm:  internals.Round(row.Factor*1000, 3),
		})
	}

	writeJSON(w, http.StatusOK, TrainFactorsResponse{
		Factors:   factors,
		Note:      "Train emissions vary significantly based on energy source and occupancy",
		Source:    "UIC Railway Handbook + Operator reports",
		UpdatedAt: factorsUpdatedAt,
	})
}

type GridIntensityResponse struct {
	Region        string                `json:"region"`
	Countries     []model.GridIntensity `json:"countries"`
	Total         int                   `json:"total"`
	LowestCarbon  *string               `json:"lowest_carbon"`
	HighestCarbon *string               `json:"highest_carbon"`
}

func HandleGridIntensity(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	region := strings.ToLower(r.URL.Query().Get("region"))
	if region == "" {
		region = "all"
	}
	if region != "all" && region != "eu" {
		writeFailure(w, r, invalid("region must be 'eu' or 'all'"))
		return
	}

	countries := refdata.Get().GridIntensities(region == "eu")
	response := GridIntensityResponse{Region: region, Countries: countries, Total: len(countries)}
	if len(countries) > 0 {
		lowest := countries[0].CountryCode
		highest := countries[len(countries)-1].CountryCode
		response.LowestCarbon = &lowest
		response.HighestCarbon = &highest
	} else {
		response.Countries = []model.GridIntensity{}
	}
	writeJSON(w, http.StatusOK, response)
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AirportInfo struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

type AirportListResponse struct {
	Airports []AirportInfo `json:"airports"`
	Total    int           `json:"total"`
}

func airportInfo(a model.Airport, withCoordinates bool) AirportInfo {
	info := AirportInfo{Code: a.AirportIata, Name: a.AirportName, City: a.CityName, Country: a.CountryCode}
	if withCoordinates {
		info.Coordinates = &Coordinates{Latitude: a.Latitude, Longitude: a.Longitude}
	}
	return info
}

func HandleAirports(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	airports := refdata.Get().Airports(r.URL.Query().Get("country"), strings.TrimSpace(r.URL.Query().Get("search")))
	response := AirportListResponse{Airports: make([]AirportInfo, 0, len(airports)), Total: len(airports)}
	for _, a := range airports {
		response.Airports = append(response.Airports, airportInfo(a, true))
	}
	writeJSON(w, http.StatusOK, response)
}

type DistanceResponse struct {
	Origin      AirportInfo `json:"origin"`
	Destination AirportInfo `json:"destination"`
	DistanceKm  float64     `json:"distance_km"`
	HaulType    string      `json:"haul_type"`
}

func HandleDistance(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	params, err := requiredQuery(r, "origin", "destination")
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	tables := refdata.Get()

	var airports [2]model.Airport
	for i, code := range params {
		airports[i], err = tables.Airport(code)
		if err != nil {
			writeError(w, http.StatusNotFound, CodeNotFound, fmt.Sprintf("Airport code '%s' not found", code))
			return
		}
	}

	distance, err := internals.ComputeDistance(params[0], params[1])
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, DistanceResponse{
		Origin:      airportInfo(airports[0], false),
		Destination: airportInfo(airports[1], false),
		DistanceKm:  distance,
		HaulType:    internals.HaulType(distance),
	})
}
