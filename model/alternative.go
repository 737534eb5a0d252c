package model

type Savings struct {
	AbsoluteKg float64 `json:"absolute_kg"`
	Percentage float64 `json:"percentage"`
	Label      string  `json:"label"`
}

type Tradeoffs struct {
	TimeDifferenceMinutes      int     `json:"time_difference_minutes"`
	EstimatedCostDifferenceEur float64 `json:"estimated_cost_difference_eur"`
	ComfortScore               float64 `json:"comfort_score"`
}

// AlternativeSegment describes what happens to one original segment in an alternative.
type AlternativeSegment struct {
	Type                 string  `json:"type"`
	OriginalSegmentIndex int     `json:"original_segment_index"`
	Description          string  `json:"description"`
	EmissionsKg          float64 `json:"emissions_kg"`
	Details              any     `json:"details,omitempty"`
}

type TrainSubstitutionDetails struct {
	OriginStation         string  `json:"origin_station"`
	DestinationStation    string  `json:"destination_station"`
	DurationMinutes       int     `json:"duration_minutes"`
	DistanceKm            float64 `json:"distance_km"`
	TrainType             string  `json:"train_type"`
	EmissionFactorKgPerKm float64 `json:"emission_factor_kg_per_km"`
	EstimatedCostEur      float64 `json:"estimated_cost_eur"`
}

type EcoHotelDetails struct {
	SustainabilityCertified bool    `json:"sustainability_certified"`
	EnergyReductionPercent  float64 `json:"energy_reduction_percent"`
	Certification           string  `json:"certification"`
}

type Alternative struct {
	AlternativeID        string               `json:"alternative_id"`
	Strategy             string               `json:"strategy"`
	TotalEmissions       EmissionTotal        `json:"total_emissions"`
	Savings              Savings              `json:"savings"`
	Segments             []AlternativeSegment `json:"segments"`
	Tradeoffs            Tradeoffs            `json:"tradeoffs"`
	RecommendationReason string               `json:"recommendation_reason"`
}

type EmissionTotal struct {
	CO2eKg float64 `json:"co2e_kg"`
	Unit   string  `json:"unit"`
}
