package internals

import (
	"fmt"
	"strings"
	"time"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const (
	hotelFactorSource = "Cornell HSBI + Grid intensity data"
	dateLayout        = "2006-01-02"
)

type HotelStay struct {
	CountryCode             string
	CheckIn                 time.Time
	CheckOut                time.Time
	StarRating              int
	RoomCount               int
	Persons                 int
	SustainabilityCertified bool
	Breakfast               string
	HotelChain              string
}

// ParseStayDates parses YYYY-MM-DD check-in and check-out dates.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, strings.TrimSpace(checkIn))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check_in %q: %w", checkIn, ErrInvalidDate)
	}
	out, err := time.Parse(dateLayout, strings.TrimSpace(checkOut))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("check_out %q: %w", checkOut, ErrInvalidDate)
	}
	return in, out, nil
}

// Nights is the number of nights between the dates, at least one.
func Nights(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

func ComputeHotelEmission(stay HotelStay) model.HotelEmission {
	nights := Nights(stay.CheckIn, stay.CheckOut)
	stars := refdata.ClampStars(stay.StarRating)
	rooms := stay.RoomCount
	if rooms < 1 {
		rooms = 1
	}
	persons := stay.Persons
	if persons < 0 {
		persons = 0
	}
	breakfast := strings.ToLower(strings.TrimSpace(stay.Breakfast))
	if breakfast == "" {
		breakfast = refdata.BreakfastNone
	}

	energyPerNight := refdata.HotelEnergy(stars)
	if stay.SustainabilityCertified {
		energyPerNight *= 1 - refdata.EcoCertifiedDiscount
	}

	grid := refdata.Get().GridIntensity(stay.CountryCode)

	totalEnergy := energyPerNight * float64(nights) * float64(rooms)
	roomEmissions := totalEnergy * grid.Intensity / 1000
	breakfastEmissions := refdata.BreakfastFactor(breakfast) * float64(nights) * float64(persons)

	return model.HotelEmission{
		EmissionsKg:             roomEmissions + breakfastEmissions,
		Nights:                  nights,
		Rooms:                   rooms,
		Persons:                 persons,
		EmissionsPerNightKg:     energyPerNight * grid.Intensity / 1000,
		EnergyConsumptionKwh:    totalEnergy,
		GridIntensity:           grid,
		StarRating:              stars,
		SustainabilityCertified: stay.SustainabilityCertified,
		BreakfastEmissionsKg:    breakfastEmissions,
		BreakfastType:           breakfast,
		EmissionFactorSource:    hotelFactorSource,
		ConfidenceFactors:       hotelConfidenceFactors(grid, stay.SustainabilityCertified, breakfast),
	}
}

func hotelConfidenceFactors(grid model.GridIntensity, certified bool, breakfast string) []model.ConfidenceFactor {
	var factors []model.ConfidenceFactor

	switch grid.Quality {
	case model.QualityMeasured:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "measured_grid_data",
			Impact:      model.ImpactPositive,
			Description: "Using measured grid carbon intensity for " + grid.CountryCode,
		})
	case model.QualityEstimated:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "estimated_grid_data",
			Impact:      model.ImpactNeutral,
			Description: "Using estimated grid carbon intensity for " + grid.CountryCode,
		})
	default:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "default_grid_data",
			Impact:      model.ImpactNegative,
			Description: "Using IPCC global default for grid carbon intensity",
		})
	}

	if certified {
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "eco_certification",
			Impact:      model.ImpactPositive,
			Description: "Sustainability certification reduces estimated energy use by 35%",
		})
	}

	factors = append(factors, model.ConfidenceFactor{
		Factor:      "hotel_benchmark",
		Impact:      model.ImpactPositive,
		Description: "Using Cornell HSBI energy benchmarks by star rating",
	})

	if breakfast != refdata.BreakfastNone {
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "breakfast_included",
			Impact:      model.ImpactNeutral,
			Description: fmt.Sprintf("Breakfast (%s) emissions included", breakfast),
		})
	}
	return factors
}
