package internals

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestHotelGreatBritainThreeStar(t *testing.T) {
	h := ComputeHotelEmission(HotelStay{
		CountryCode: "GB",
		CheckIn:     date(t, "2025-03-01"),
		CheckOut:    date(t, "2025-03-03"),
		StarRating:  3,
		RoomCount:   1,
		Persons:     1,
	})

	assert.Equal(t, 2, h.Nights)
	assert.InDelta(t, 80.0, h.EnergyConsumptionKwh, 1e-9)
	assert.InDelta(t, 15.84, h.EmissionsKg, 1e-9)
	assert.InDelta(t, 7.92, h.EmissionsPerNightKg, 1e-9)
	assert.Equal(t, 198.0, h.GridIntensity.Intensity)
	assert.Equal(t, []string{"measured_grid_data", "hotel_benchmark"}, factorNames(h.ConfidenceFactors))
}

func TestHotelCertifiedNeverExceedsUncertified(t *testing.T) {
	for _, country := range []string{"GB", "FR", "PL", "TR", "ZZ"} {
		for stars := 0; stars <= 6; stars++ {
			stay := HotelStay{
				CountryCode: country,
				CheckIn:     date(t, "2025-01-01"),
				CheckOut:    date(t, "2025-01-04"),
				StarRating:  stars,
				RoomCount:   2,
				Persons:     2,
				Breakfast:   "buffet",
			}
			plain := ComputeHotelEmission(stay)
			stay.SustainabilityCertified = true
			eco := ComputeHotelEmission(stay)
			assert.LessOrEqual(t, eco.EmissionsKg, plain.EmissionsKg, "%s %d", country, stars)
		}
	}
}

func TestHotelCertifiedDiscount(t *testing.T) {
	stay := HotelStay{CountryCode: "FR", CheckIn: date(t, "2025-01-01"), CheckOut: date(t, "2025-01-02"), StarRating: 5, RoomCount: 1}
	plain := ComputeHotelEmission(stay)
	stay.SustainabilityCertified = true
	eco := ComputeHotelEmission(stay)

	assert.InDelta(t, plain.EmissionsKg*0.65, eco.EmissionsKg, 1e-9)
	assert.Contains(t, factorNames(eco.ConfidenceFactors), "eco_certification")
}

func TestHotelNightsClampedToOne(t *testing.T) {
	same := ComputeHotelEmission(HotelStay{CountryCode: "GB", CheckIn: date(t, "2025-03-01"), CheckOut: date(t, "2025-03-01"), StarRating: 3})
	assert.Equal(t, 1, same.Nights)

	backwards := ComputeHotelEmission(HotelStay{CountryCode: "GB", CheckIn: date(t, "2025-03-05"), CheckOut: date(t, "2025-03-01"), StarRating: 3})
	assert.Equal(t, 1, backwards.Nights)
	assert.InDelta(t, 7.92, backwards.EmissionsKg, 1e-9)
}

func TestHotelStarRatingClamped(t *testing.T) {
	low := ComputeHotelEmission(HotelStay{CountryCode: "GB", CheckIn: date(t, "2025-03-01"), CheckOut: date(t, "2025-03-02"), StarRating: -2})
	high := ComputeHotelEmission(HotelStay{CountryCode: "GB", CheckIn: date(t, "2025-03-01"), CheckOut: date(t, "2025-03-02"), StarRating: 7})
	assert.Equal(t, 1, low.StarRating)
	assert.Equal(t, 5, high.StarRating)
	assert.InDelta(t, 25*198.0/1000, low.EmissionsKg, 1e-9)
	assert.InDelta(t, 80*198.0/1000, high.EmissionsKg, 1e-9)
}

func TestHotelBreakfast(t *testing.T) {
	h := ComputeHotelEmission(HotelStay{
		CountryCode: "GB",
		CheckIn:     date(t, "2025-03-01"),
		CheckOut:    date(t, "2025-03-03"),
		StarRating:  3,
		RoomCount:   1,
		Persons:     2,
		Breakfast:   "buffet",
	})
	assert.InDelta(t, 8.8, h.BreakfastEmissionsKg, 1e-9)
	assert.InDelta(t, 15.84+8.8, h.EmissionsKg, 1e-9)
	assert.Contains(t, factorNames(h.ConfidenceFactors), "breakfast_included")
}

func TestHotelUnknownCountryUsesDefaultGrid(t *testing.T) {
	h := ComputeHotelEmission(HotelStay{CountryCode: "ZZ", CheckIn: date(t, "2025-03-01"), CheckOut: date(t, "2025-03-02"), StarRating: 3})
	assert.Equal(t, model.QualityDefault, h.GridIntensity.Quality)
	assert.InDelta(t, 40*475.0/1000, h.EmissionsKg, 1e-9)
	assert.Equal(t, "default_grid_data", h.ConfidenceFactors[0].Factor)
	assert.Equal(t, model.ImpactNegative, h.ConfidenceFactors[0].Impact)
}

func TestParseStayDates(t *testing.T) {
	in, out, err := ParseStayDates("2025-03-01", "2025-03-04")
	require.NoError(t, err)
	assert.Equal(t, 3, Nights(in, out))

	_, _, err = ParseStayDates("01/03/2025", "2025-03-04")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}
