package internals

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

func factorNames(factors []model.ConfidenceFactor) []string {
	names := make([]string, 0, len(factors))
	for _, f := range factors {
		names = append(names, f.Factor)
	}
	return names
}

func TestFlightLondonParisEconomy(t *testing.T) {
	f, err := ComputeFlightEmission(FlightRequest{Origin: "lhr", Destination: "cdg"})
	require.NoError(t, err)

	assert.Equal(t, "LHR", f.Origin)
	assert.Equal(t, refdata.HaulShort, f.HaulType)
	assert.Equal(t, refdata.CabinEconomy, f.CabinClass)
	assert.InDelta(t, f.DistanceKm*0.156, f.EmissionsKg, 1e-9)
	assert.InDelta(t, 347.0*0.156, f.EmissionsKg, 1e-9)
	assert.Equal(t, 1.0, f.RadiativeForcingMultiplier)
	assert.InDelta(t, f.DistanceKm*3.5, f.FuelBurnKg, 1e-9)
	assert.Equal(t, 0.82, f.LoadFactor)
	assert.Equal(t, []string{"icao_methodology", "short_haul_route", "generic_load_factor"}, factorNames(f.ConfidenceFactors))
}

func TestFlightEmissionsIncreaseWithCabin(t *testing.T) {
	for _, route := range [][2]string{{"LHR", "CDG"}, {"LHR", "DXB"}, {"LHR", "SYD"}} {
		prev := 0.0
		for _, cabin := range refdata.CabinOrder {
			f, err := ComputeFlightEmission(FlightRequest{Origin: route[0], Destination: route[1], CabinClass: cabin})
			require.NoError(t, err)
			assert.Greater(t, f.EmissionsKg, prev, "%s %s", route, cabin)
			prev = f.EmissionsKg
		}
	}
}

func TestFlightUnknownCabinFallsBackToEconomy(t *testing.T) {
	economy, err := ComputeFlightEmission(FlightRequest{Origin: "LHR", Destination: "JFK"})
	require.NoError(t, err)
	unknown, err := ComputeFlightEmission(FlightRequest{Origin: "LHR", Destination: "JFK", CabinClass: "bunk"})
	require.NoError(t, err)

	assert.Equal(t, economy.EmissionsKg, unknown.EmissionsKg)
	assert.Equal(t, refdata.CabinEconomy, unknown.CabinClass)
	assert.Equal(t, refdata.HaulLong, unknown.HaulType)
	assert.Contains(t, factorNames(unknown.ConfidenceFactors), "long_haul_averaged")
}

func TestFlightCarrierDropsGenericLoadFactor(t *testing.T) {
	f, err := ComputeFlightEmission(FlightRequest{Origin: "LHR", Destination: "ATH", CarrierCode: "ba"})
	require.NoError(t, err)
	assert.Equal(t, refdata.HaulMedium, f.HaulType)
	assert.Equal(t, "BA", f.CarrierCode)
	assert.Equal(t, []string{"icao_methodology", "medium_haul_route"}, factorNames(f.ConfidenceFactors))
}

func TestFlightUnknownAirportIsProcessingError(t *testing.T) {
	_, err := ComputeFlightEmission(FlightRequest{Origin: "LHR", Destination: "ZZZ"})
	require.Error(t, err)

	var perr *ProcessingError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "LHR → ZZZ")
	assert.ErrorIs(t, err, refdata.ErrAirportNotFound)
}
