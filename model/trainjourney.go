package model

type JourneyEndpoint struct {
	Airport string `json:"airport"`
	Station string `json:"station"`
	City    string `json:"city"`
}

type JourneyRoute struct {
	Origin      JourneyEndpoint `json:"origin"`
	Destination JourneyEndpoint `json:"destination"`
}

type JourneySummary struct {
	Operator        string  `json:"operator"`
	Duration        string  `json:"duration"`
	DurationMinutes int     `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
	HighSpeed       bool    `json:"high_speed"`
}

type JourneyStops struct {
	Count int      `json:"count"`
	List  []string `json:"list"`
}

type JourneySchedule struct {
	Frequency        string   `json:"frequency"`
	SampleDepartures []string `json:"sample_departures"`
}

type JourneyEmissions struct {
	CO2Kg  float64 `json:"co2_kg"`
	GPerKm float64 `json:"g_per_km"`
	Source string  `json:"source"`
}

// TrainJourney is a scheduled train between the stations serving two airports.
type TrainJourney struct {
	Route     JourneyRoute     `json:"route"`
	Journey   JourneySummary   `json:"journey"`
	Stations  JourneyStops     `json:"stations"`
	Schedule  JourneySchedule  `json:"schedule"`
	Emissions JourneyEmissions `json:"emissions"`
}
