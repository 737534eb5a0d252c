package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

func TestSearchTrainJourney(t *testing.T) {
	j, ok := SearchTrainJourney("lhr", "cdg")
	require.True(t, ok)
	assert.Equal(t, "Eurostar", j.Journey.Operator)
	assert.Equal(t, "2h 17m", j.Journey.Duration)
	assert.Equal(t, "London St Pancras", j.Route.Origin.Station)
	assert.Equal(t, "Paris", j.Route.Destination.City)
	assert.Equal(t, 4, j.Stations.Count)
	assert.Len(t, j.Schedule.SampleDepartures, 6)
	assert.Equal(t, Round(6.0/460*1000, 2), j.Emissions.GPerKm)
}

func TestSearchTrainJourneyReverse(t *testing.T) {
	j, ok := SearchTrainJourney("CGN", "FRA")
	require.True(t, ok)
	assert.Equal(t, "Köln Hbf", j.Stations.List[0])
	assert.Equal(t, "Cologne", j.Route.Origin.City)

	_, ok = SearchTrainJourney("LHR", "JFK")
	assert.False(t, ok)
}

func useTables(t *testing.T, tables *refdata.Tables) {
	t.Helper()
	previous := refdata.Get()
	refdata.Init(tables)
	t.Cleanup(func() { refdata.Init(previous) })
}

func TestSearchTrainJourneyWithoutStops(t *testing.T) {
	src := refdata.Builtin()
	src.TrainRoutes = []model.TrainRoute{
		{Origin: "LHR", Destination: "CDG", Operator: "Eurostar", DurationMinutes: 137, DistanceKm: 460, CO2PerPassengerKg: 6.0},
		{Origin: "JFK", Destination: "BOS", Operator: "Amtrak", DurationMinutes: 220, DistanceKm: 370, CO2PerPassengerKg: 9.0},
	}
	useTables(t, refdata.New(src))

	j, ok := SearchTrainJourney("LHR", "CDG")
	require.True(t, ok)
	assert.Equal(t, "London St Pancras", j.Route.Origin.Station)
	assert.Equal(t, "Paris Gare du Nord", j.Route.Destination.Station)
	assert.Equal(t, 0, j.Stations.Count)
	assert.NotNil(t, j.Stations.List)

	// no station rows either: the airport codes are used
	j, ok = SearchTrainJourney("bos", "jfk")
	require.True(t, ok)
	assert.Equal(t, "BOS", j.Route.Origin.Station)
	assert.Equal(t, "JFK", j.Route.Destination.Station)

	cmp, err := CompareTrainWithFlight("CDG", "LHR", "economy")
	require.NoError(t, err)
	assert.True(t, cmp.TrainAvailable)
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45m", FormatDuration(45))
	assert.Equal(t, "1h 2m", FormatDuration(62))
	assert.Equal(t, "6h 30m", FormatDuration(390))
}

func TestCompareTrainWithFlight(t *testing.T) {
	cmp, err := CompareTrainWithFlight("LHR", "CDG", "business")
	require.NoError(t, err)
	require.True(t, cmp.TrainAvailable)
	assert.True(t, cmp.TrainIsGreener)
	assert.InDelta(t, cmp.Flight.EmissionsKg-6.0, cmp.SavingsKg, 1e-9)
	assert.Equal(t, EstimateFlightMinutes(cmp.Flight.DistanceKm), cmp.FlightMinutes)
	assert.Equal(t, 137-cmp.FlightMinutes, cmp.DurationDifference)

	cmp, err = CompareTrainWithFlight("LHR", "JFK", "economy")
	require.NoError(t, err)
	assert.False(t, cmp.TrainAvailable)

	_, err = CompareTrainWithFlight("LHR", "QQQ", "economy")
	assert.Error(t, err)
}

func TestCheckSubstitution(t *testing.T) {
	check, ok := CheckSubstitution("CDG", "LHR")
	require.True(t, ok)
	assert.InDelta(t, 1.836, check.TrainKg, 1e-9)
	require.NotNil(t, check.Flight)
	assert.Greater(t, check.SavingsPercent, 90.0)

	_, ok = CheckSubstitution("LHR", "JFK")
	assert.False(t, ok)
}
