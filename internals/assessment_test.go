package internals

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

func fixedAssessor() *Assessor {
	a := NewAssessor("2024.2")
	a.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }
	return a
}

func TestAssessFlightAndHotel(t *testing.T) {
	it := model.Itinerary{
		TravelerCount: ptr(2),
		Segments: []model.Segment{
			flightSegment("LHR", "CDG"),
			hotelSegment("GB", 3, false),
		},
	}
	a, err := fixedAssessor().Assess(it)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.AssessmentID, "assess_"))
	assert.Equal(t, 2, a.TravelerCount)

	flights := 347.0 * 0.156 * 2
	hotels := 15.84
	assert.Equal(t, Round(flights, 2), a.TotalEmissions.Breakdown.FlightsKg)
	assert.Equal(t, Round(hotels, 2), a.TotalEmissions.Breakdown.HotelsKg)
	assert.Equal(t, 0.0, a.TotalEmissions.Breakdown.TransportKg)
	assert.Equal(t, Round(flights+hotels, 2), a.TotalEmissions.CO2eKg)
	assert.Equal(t, Round((flights+hotels)/2, 2), a.TotalEmissions.PerTravelerKg)
	assert.Equal(t, model.UnitKgCO2e, a.TotalEmissions.Unit)
	assert.Equal(t, Round((flights+hotels)/22, 1), a.TotalEmissions.Equivalent.TreesToOffset)

	assert.Equal(t, 0.80, a.ConfidenceScore.Score)
	assert.Equal(t, model.LevelHigh, a.ConfidenceScore.Level)

	require.Len(t, a.Segments, 2)
	flight, ok := a.Segments[0].Details.(model.FlightDetails)
	require.True(t, ok)
	assert.Equal(t, refdata.HaulShort, flight.HaulType)
	assert.Nil(t, flight.AircraftType)
	hotel, ok := a.Segments[1].Details.(model.HotelDetails)
	require.True(t, ok)
	assert.Equal(t, 2, hotel.Persons)
	assert.Equal(t, "measured", hotel.GridCarbonIntensity.Quality)

	assert.Nil(t, a.Alternatives)
	assert.Nil(t, a.Methodology)
	assert.Equal(t, a.CreatedAt.Add(90*24*time.Hour), a.ExpiresAt)
}

func TestAssessAlternativeCount(t *testing.T) {
	segments := []model.Segment{flightSegment("LHR", "CDG"), hotelSegment("GB", 3, false)}

	it := model.Itinerary{Segments: segments, Options: model.AssessmentOptions{IncludeAlternatives: true}}
	a, err := fixedAssessor().Assess(it)
	require.NoError(t, err)
	assert.Len(t, a.Alternatives, DefaultAlternativeCount)

	it.Options.AlternativeCount = ptr(0)
	a, err = fixedAssessor().Assess(it)
	require.NoError(t, err)
	assert.Empty(t, a.Alternatives)
}

func TestAssessWithAlternativesAndMethodology(t *testing.T) {
	it := model.Itinerary{
		Segments: []model.Segment{flightSegment("LHR", "CDG"), hotelSegment("GB", 3, false)},
		Options: model.AssessmentOptions{
			IncludeAlternatives: true,
			AlternativeCount:    ptr(2),
			IncludeMethodology:  true,
		},
	}
	a, err := fixedAssessor().Assess(it)
	require.NoError(t, err)

	require.Len(t, a.Alternatives, 2)
	assert.Equal(t, "alt_combined", a.Alternatives[0].AlternativeID)
	for _, alt := range a.Alternatives {
		want := Round(alt.Savings.AbsoluteKg/a.TotalEmissions.CO2eKg*100, 1)
		assert.InDelta(t, want, alt.Savings.Percentage, 0.11)
	}

	require.NotNil(t, a.Methodology)
	assert.Equal(t, "2024.2", a.Methodology.EmissionFactorsVersion)
	assert.Equal(t, "2025-03-01", a.Methodology.CalculationDate)
	assert.Equal(t, 1.0, a.Methodology.RadiativeForcingMultiplier)
}

func TestAssessFlightOnlyUsesDefaultGrid(t *testing.T) {
	a, err := fixedAssessor().Assess(model.Itinerary{
		Segments: []model.Segment{{Type: model.SegmentFlight, Origin: "LHR", Destination: "JFK", CarrierCode: "BA", AircraftType: "A350"}},
	})
	require.NoError(t, err)
	// base + carrier + aircraft - default grid + long haul
	assert.Equal(t, 0.67, a.ConfidenceScore.Score)
	assert.Contains(t, factorNames(a.ConfidenceScore.Factors), "default_grid_intensity")

	flight := a.Segments[0].Details.(model.FlightDetails)
	require.NotNil(t, flight.AircraftType)
	assert.Equal(t, "A350", *flight.AircraftType)
}

func TestAssessGroundTransport(t *testing.T) {
	it := model.Itinerary{
		TravelerCount: ptr(3),
		Segments: []model.Segment{
			{Type: model.SegmentTransfer, Airport: "LHR"},
			{Type: model.SegmentTransfer, Airport: "LHR", Shared: true, RoundTrip: ptr(false), VehicleType: "taxi"},
			{Type: model.SegmentTaxi},
			{Type: model.SegmentTransport, DistanceKm: ptr(4.0), VehicleType: "metro"},
		},
	}
	a, err := fixedAssessor().Assess(it)
	require.NoError(t, err)

	assert.InDelta(t, 50*0.121*3, a.Segments[0].EmissionsKg, 0.005)
	assert.InDelta(t, 25*0.149, a.Segments[1].EmissionsKg, 0.005)
	assert.InDelta(t, 10*0.121, a.Segments[2].EmissionsKg, 0.005)
	assert.InDelta(t, 4*0.029, a.Segments[3].EmissionsKg, 0.005)
	assert.Equal(t, model.SegmentTaxi, a.Segments[2].Type)

	details := a.Segments[0].Details.(model.TransportDetails)
	require.NotNil(t, details.RoundTrip)
	assert.True(t, *details.RoundTrip)
	assert.Equal(t, "uber_x", details.VehicleType)
}

func TestAssessUnknownAirportFails(t *testing.T) {
	_, err := fixedAssessor().Assess(model.Itinerary{Segments: []model.Segment{flightSegment("LHR", "QQQ")}})
	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
}

func TestAssessBadHotelDateFails(t *testing.T) {
	seg := hotelSegment("GB", 3, false)
	seg.CheckIn = "tomorrow"
	_, err := fixedAssessor().Assess(model.Itinerary{Segments: []model.Segment{seg}})

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Equal(t, "invalid date format for hotel segment 0", perr.Error())
}

func TestBetterQuality(t *testing.T) {
	assert.Equal(t, model.QualityEstimated, betterQuality(model.QualityDefault, model.QualityEstimated))
	assert.Equal(t, model.QualityMeasured, betterQuality(model.QualityEstimated, model.QualityMeasured))
	assert.Equal(t, model.QualityMeasured, betterQuality(model.QualityMeasured, model.QualityDefault))
	assert.Equal(t, model.QualityDefault, betterQuality(model.QualityDefault, "IEA 2024"))
}

func TestSummarizeEmissions(t *testing.T) {
	evals := evaluate(t, 2,
		flightSegment("LHR", "CDG"),
		hotelSegment("GB", 3, false),
		model.Segment{Type: model.SegmentTaxi, DistanceKm: ptr(10.0), VehicleType: "taxi"},
	)

	totals, total := SummarizeEmissions(evals, 2)

	assert.InDelta(t, TotalEmissions(evals), total, 1e-9)
	assert.Equal(t, Round(54.132*2, 2), totals.Breakdown.FlightsKg)
	assert.Equal(t, Round(evals[1].EmissionsKg, 2), totals.Breakdown.HotelsKg)
	assert.Equal(t, Round(10*0.149, 2), totals.Breakdown.TransportKg)
	assert.Equal(t, Round(total/2, 2), totals.PerTravelerKg)
	assert.Equal(t, model.UnitKgCO2e, totals.Unit)

	empty, zero := SummarizeEmissions(nil, 0)
	assert.Zero(t, zero)
	assert.Zero(t, empty.PerTravelerKg)
}
