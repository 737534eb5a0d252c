package internals

import (
	"fmt"
	"strings"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const trainEmissionSource = "UIC Railway Handbook / Operator data"

var sampleDepartures = []string{"06:00", "07:30", "09:00", "10:30", "12:00", "14:00"}

// SearchTrainJourney looks up the scheduled train between two airports' cities.
func SearchTrainJourney(origin, destination string) (model.TrainJourney, bool) {
	origin = strings.ToUpper(origin)
	destination = strings.ToUpper(destination)

	tables := refdata.Get()
	route, ok := tables.TrainRoute(origin, destination)
	if !ok {
		return model.TrainJourney{}, false
	}

	// stops may be missing on database rows; the station table or the code stands in
	originStop, destinationStop := origin, destination
	stops := route.Stops
	if len(stops) > 0 {
		originStop, destinationStop = stops[0], stops[len(stops)-1]
	} else {
		stops = []string{}
	}
	from := endpoint(tables, origin, originStop)
	to := endpoint(tables, destination, destinationStop)

	gPerKm := 0.0
	if route.DistanceKm > 0 {
		gPerKm = Round(route.CO2PerPassengerKg/route.DistanceKm*1000, 2)
	}

	return model.TrainJourney{
		Route: model.JourneyRoute{Origin: from, Destination: to},
		Journey: model.JourneySummary{
			Operator:        route.Operator,
			Duration:        FormatDuration(route.DurationMinutes),
			DurationMinutes: route.DurationMinutes,
			DistanceKm:      route.DistanceKm,
			HighSpeed:       route.HighSpeed,
		},
		Stations: model.JourneyStops{Count: len(stops), List: stops},
		Schedule: model.JourneySchedule{
			Frequency:        route.Frequency,
			SampleDepartures: sampleDepartures,
		},
		Emissions: model.JourneyEmissions{
			CO2Kg:  route.CO2PerPassengerKg,
			GPerKm: gPerKm,
			Source: trainEmissionSource,
		},
	}, true
}

func endpoint(tables *refdata.Tables, airport, fallbackStation string) model.JourneyEndpoint {
	ep := model.JourneyEndpoint{Airport: airport, Station: fallbackStation, City: airport}
	if station, ok := tables.Station(airport); ok {
		ep.Station = station.Name
		ep.City = station.City
	}
	return ep
}

func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// EstimateFlightMinutes assumes 800 km/h cruise plus 30 minutes for takeoff and landing.
func EstimateFlightMinutes(distanceKm float64) int {
	return int(distanceKm/800*60) + 30
}

type TrainFlightComparison struct {
	Flight             model.FlightEmission
	FlightMinutes      int
	Train              model.TrainJourney
	TrainAvailable     bool
	SavingsKg          float64
	SavingsPercent     float64
	TrainIsGreener     bool
	DurationDifference int
}

// CompareTrainWithFlight prices the flight and, when a scheduled train runs
// on the same pair, the emissions and time saved by taking it.
func CompareTrainWithFlight(origin, destination, cabin string) (TrainFlightComparison, error) {
	flight, err := ComputeFlightEmission(FlightRequest{Origin: origin, Destination: destination, CabinClass: cabin})
	if err != nil {
		return TrainFlightComparison{}, err
	}
	cmp := TrainFlightComparison{
		Flight:        flight,
		FlightMinutes: EstimateFlightMinutes(flight.DistanceKm),
	}

	train, ok := SearchTrainJourney(origin, destination)
	if !ok {
		return cmp, nil
	}
	cmp.Train = train
	cmp.TrainAvailable = true
	cmp.SavingsKg = flight.EmissionsKg - train.Emissions.CO2Kg
	if flight.EmissionsKg > 0 {
		cmp.SavingsPercent = cmp.SavingsKg / flight.EmissionsKg * 100
	}
	cmp.TrainIsGreener = cmp.SavingsKg > 0
	cmp.DurationDifference = train.Journey.DurationMinutes - cmp.FlightMinutes
	return cmp, nil
}

type SubstitutionCheck struct {
	Route          model.SubstitutionRoute
	TrainKg        float64
	Flight         *model.FlightEmission
	SavingsKg      float64
	SavingsPercent float64
}

// CheckSubstitution reports whether a flight pair has a rail replacement and
// what a single passenger saves by taking it.
func CheckSubstitution(origin, destination string) (SubstitutionCheck, bool) {
	route, ok := refdata.Get().SubstitutionRoute(origin, destination)
	if !ok {
		return SubstitutionCheck{}, false
	}
	check := SubstitutionCheck{
		Route:   route,
		TrainKg: route.DistanceKm * refdata.TrainFactor(route.TrainType),
	}
	flight, err := ComputeFlightEmission(FlightRequest{Origin: origin, Destination: destination})
	if err == nil {
		check.Flight = &flight
		check.SavingsKg = flight.EmissionsKg - check.TrainKg
		if flight.EmissionsKg > 0 {
			check.SavingsPercent = (1 - check.TrainKg/flight.EmissionsKg) * 100
		}
	}
	return check, true
}
