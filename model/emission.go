package model

const (
	ImpactPositive = "positive"
	ImpactNeutral  = "neutral"
	ImpactNegative = "negative"
)

const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

type ConfidenceFactor struct {
	Factor      string `json:"factor"`
	Impact      string `json:"impact"`
	Description string `json:"description"`
}

type ConfidenceScore struct {
	Score   float64            `json:"score"`
	Level   string             `json:"level"`
	Factors []ConfidenceFactor `json:"factors"`
}

type FlightEmission struct {
	EmissionsKg                float64
	Origin                     string
	Destination                string
	DistanceKm                 float64
	HaulType                   string
	CabinClass                 string
	EmissionFactor             float64
	CabinMultiplier            float64
	RadiativeForcingMultiplier float64
	FuelBurnKg                 float64
	LoadFactor                 float64
	CarrierCode                string
	AircraftType               string
	EmissionFactorSource       string
	ConfidenceFactors          []ConfidenceFactor
}

type HotelEmission struct {
	EmissionsKg             float64
	Nights                  int
	Rooms                   int
	Persons                 int
	EmissionsPerNightKg     float64
	EnergyConsumptionKwh    float64
	GridIntensity           GridIntensity
	StarRating              int
	SustainabilityCertified bool
	BreakfastEmissionsKg    float64
	BreakfastType           string
	EmissionFactorSource    string
	ConfidenceFactors       []ConfidenceFactor
}

type TransportEmission struct {
	EmissionsKg       float64
	DistanceKm        float64
	VehicleType       string
	FactorPerKm       float64
	Airport           string
	City              string
	RoundTrip         bool
	IsTransfer        bool
	ConfidenceFactors []ConfidenceFactor
}
