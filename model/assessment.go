package model

import "time"

const UnitKgCO2e = "kg_co2e"

type Equivalent struct {
	TreesToOffset  float64 `json:"trees_to_offset"`
	DrivingKm      float64 `json:"driving_km"`
	StreamingHours float64 `json:"streaming_hours"`
}

type EmissionBreakdown struct {
	FlightsKg   float64 `json:"flights_kg"`
	HotelsKg    float64 `json:"hotels_kg"`
	TransportKg float64 `json:"transport_kg"`
}

type TotalEmissions struct {
	CO2eKg        float64           `json:"co2e_kg"`
	Unit          string            `json:"unit"`
	Breakdown     EmissionBreakdown `json:"breakdown"`
	PerTravelerKg float64           `json:"per_traveler_kg"`
	Equivalent    Equivalent        `json:"equivalent"`
}

type SegmentResult struct {
	SegmentIndex int     `json:"segment_index"`
	Type         string  `json:"type"`
	EmissionsKg  float64 `json:"emissions_kg"`
	Details      any     `json:"details"`
}

type FlightDetails struct {
	Origin                     string  `json:"origin"`
	Destination                string  `json:"destination"`
	DistanceKm                 float64 `json:"distance_km"`
	HaulType                   string  `json:"haul_type"`
	CabinClass                 string  `json:"cabin_class"`
	EmissionFactorKgPerKm      float64 `json:"emission_factor_kg_per_km"`
	CabinMultiplier            float64 `json:"cabin_multiplier"`
	RadiativeForcingMultiplier float64 `json:"radiative_forcing_multiplier"`
	FuelBurnKg                 float64 `json:"fuel_burn_kg"`
	AircraftType               *string `json:"aircraft_type"`
	LoadFactor                 float64 `json:"load_factor"`
	EmissionFactorSource       string  `json:"emission_factor_source"`
}

type GridIntensityDetails struct {
	Value   float64 `json:"value"`
	Source  string  `json:"source"`
	Quality string  `json:"quality"`
	Country string  `json:"country"`
}

type BreakfastDetails struct {
	Type        string  `json:"type"`
	EmissionsKg float64 `json:"emissions_kg"`
}

type HotelDetails struct {
	Nights                  int                  `json:"nights"`
	Rooms                   int                  `json:"rooms"`
	Persons                 int                  `json:"persons"`
	StarRating              int                  `json:"star_rating"`
	SustainabilityCertified bool                 `json:"sustainability_certified"`
	EmissionsPerNightKg     float64              `json:"emissions_per_night_kg"`
	GridCarbonIntensity     GridIntensityDetails `json:"grid_carbon_intensity"`
	EnergyConsumptionKwh    float64              `json:"energy_consumption_kwh"`
	EmissionFactorSource    string               `json:"emission_factor_source"`
	Breakfast               *BreakfastDetails    `json:"breakfast,omitempty"`
}

type TransportDetails struct {
	Airport              string  `json:"airport,omitempty"`
	City                 string  `json:"city,omitempty"`
	DistanceKm           float64 `json:"distance_km"`
	VehicleType          string  `json:"vehicle_type"`
	RoundTrip            *bool   `json:"round_trip,omitempty"`
	Shared               bool    `json:"shared,omitempty"`
	FactorPerKm          float64 `json:"factor_per_km"`
	EmissionFactorSource string  `json:"emission_factor_source"`
}

type Methodology struct {
	Standards                  []string `json:"standards"`
	CalculationDate            string   `json:"calculation_date"`
	EmissionFactorsVersion     string   `json:"emission_factors_version"`
	RadiativeForcingMultiplier float64  `json:"radiative_forcing_multiplier"`
	Notes                      []string `json:"notes"`
}

type Assessment struct {
	AssessmentID    string          `json:"assessment_id"`
	TripID          *string         `json:"trip_id"`
	TravelerCount   int             `json:"traveler_count"`
	TotalEmissions  TotalEmissions  `json:"total_emissions"`
	ConfidenceScore ConfidenceScore `json:"confidence_score"`
	Segments        []SegmentResult `json:"segments"`
	Alternatives    []Alternative   `json:"lower_impact_alternatives,omitempty"`
	Methodology     *Methodology    `json:"methodology,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
}
