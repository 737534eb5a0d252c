package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
)

func TestBuiltinTableSizes(t *testing.T) {
	src := Builtin()
	assert.Len(t, src.Airports, 78)
	assert.Len(t, src.SubstitutionRoutes, 13)
	assert.Len(t, src.TrainRoutes, 19)
	assert.Len(t, src.Stations, 25)

	tables := New(src)
	assert.Len(t, tables.TrainRoutes(), 38)
}

func TestAirportLookupIsCaseInsensitive(t *testing.T) {
	a, err := Get().Airport("lhr")
	require.NoError(t, err)
	assert.Equal(t, "London Heathrow", a.AirportName)
	assert.Equal(t, "GB", a.CountryCode)

	_, err = Get().Airport("XXX")
	assert.ErrorIs(t, err, ErrAirportNotFound)
}

func TestAirportsFilter(t *testing.T) {
	gb := Get().Airports("gb", "")
	require.Len(t, gb, 7)
	assert.Equal(t, "BHX", gb[0].AirportIata)

	london := Get().Airports("", "LONDON")
	assert.Len(t, london, 4)
}

func TestGridIntensityFallsBackToDefault(t *testing.T) {
	gb := Get().GridIntensity("gb")
	assert.Equal(t, 198.0, gb.Intensity)
	assert.Equal(t, model.QualityMeasured, gb.Quality)

	tr := Get().GridIntensity("TR")
	assert.Equal(t, model.QualityEstimated, tr.Quality)

	unknown := Get().GridIntensity("ZZ")
	assert.Equal(t, "ZZ", unknown.CountryCode)
	assert.Equal(t, 475.0, unknown.Intensity)
	assert.Equal(t, model.QualityDefault, unknown.Quality)
	assert.Equal(t, "IPCC 2024 global average", unknown.Source)
}

func TestGridIntensitiesSorted(t *testing.T) {
	all := Get().GridIntensities(false)
	require.NotEmpty(t, all)
	assert.Equal(t, "IS", all[0].CountryCode)
	assert.Equal(t, "PL", all[len(all)-1].CountryCode)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Intensity, all[i].Intensity)
	}

	eu := Get().GridIntensities(true)
	assert.Len(t, eu, 23)
}

func TestTrainRouteReverseDerived(t *testing.T) {
	fwd, ok := Get().TrainRoute("LHR", "CDG")
	require.True(t, ok)
	rev, ok := Get().TrainRoute("cdg", "lhr")
	require.True(t, ok)

	assert.Equal(t, "CDG", rev.Origin)
	assert.Equal(t, "LHR", rev.Destination)
	assert.Equal(t, fwd.DistanceKm, rev.DistanceKm)
	assert.Equal(t, fwd.Stops[0], rev.Stops[len(rev.Stops)-1])
	assert.Equal(t, "London St Pancras", fwd.Stops[0])

	_, ok = Get().TrainRoute("LHR", "JFK")
	assert.False(t, ok)
}

func TestNewKeepsExplicitReverse(t *testing.T) {
	tables := New(Source{TrainRoutes: []model.TrainRoute{
		{Origin: "AAA", Destination: "BBB", Operator: "one", Stops: []string{"a", "b"}},
		{Origin: "BBB", Destination: "AAA", Operator: "two", Stops: []string{"b", "a"}},
	}})
	r, ok := tables.TrainRoute("BBB", "AAA")
	require.True(t, ok)
	assert.Equal(t, "two", r.Operator)
}

func TestNewNormalizesCodes(t *testing.T) {
	tables := New(Source{
		Airports:           []model.Airport{{AirportIata: "lhr", CountryCode: "gb", AirportName: "Heathrow", CityName: "London"}},
		TrainRoutes:        []model.TrainRoute{{Origin: "lhr", Destination: "cdg", Operator: "Eurostar"}},
		SubstitutionRoutes: []model.SubstitutionRoute{{Origin: "lhr", Destination: "Cdg", TrainType: TrainEurostar}},
	})

	r, ok := tables.TrainRoute("LHR", "CDG")
	require.True(t, ok)
	assert.Equal(t, "LHR", r.Origin)
	rev, ok := tables.TrainRoute("cdg", "lhr")
	require.True(t, ok)
	assert.Equal(t, "CDG", rev.Origin)
	assert.Empty(t, rev.Stops)

	s, ok := tables.SubstitutionRoute("CDG", "LHR")
	require.True(t, ok)
	assert.Equal(t, "LHR", s.Origin)
	assert.Equal(t, "CDG", tables.SubstitutionRoutes()[0].Destination)

	assert.Len(t, tables.Airports("GB", ""), 1)
	assert.Len(t, tables.Airports("gb", ""), 1)
}

func TestSubstitutionRouteBidirectional(t *testing.T) {
	fwd, ok := Get().SubstitutionRoute("LHR", "CDG")
	require.True(t, ok)
	assert.Equal(t, TrainEurostar, fwd.TrainType)
	assert.Equal(t, 459.0, fwd.DistanceKm)

	rev, ok := Get().SubstitutionRoute("CDG", "LHR")
	require.True(t, ok)
	assert.Equal(t, fwd, rev)

	_, ok = Get().SubstitutionRoute("LHR", "JFK")
	assert.False(t, ok)
}

func TestStation(t *testing.T) {
	s, ok := Get().Station("cdg")
	require.True(t, ok)
	assert.Equal(t, "Paris Gare du Nord", s.Name)
	_, ok = Get().Station("JFK")
	assert.False(t, ok)
}

func TestInitIgnoresNil(t *testing.T) {
	before := Get()
	Init(nil)
	assert.Same(t, before, Get())
}
