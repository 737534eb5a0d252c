package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransferRoundTrip(t *testing.T) {
	tr := ComputeTransferEmission("lhr", "taxi", true)
	assert.Equal(t, "LHR", tr.Airport)
	assert.Equal(t, "London", tr.City)
	assert.Equal(t, 50.0, tr.DistanceKm)
	assert.InDelta(t, 50*0.149, tr.EmissionsKg, 1e-9)
	assert.True(t, tr.IsTransfer)
}

func TestTransferOneWayUnknownAirport(t *testing.T) {
	tr := ComputeTransferEmission("XYZ", "uber_x", false)
	assert.Equal(t, 25.0, tr.DistanceKm)
	assert.Equal(t, "Unknown", tr.City)
	assert.InDelta(t, 25*0.121, tr.EmissionsKg, 1e-9)
}

func TestTransportUnknownVehicleUsesTaxi(t *testing.T) {
	tr := ComputeTransportEmission(12, "rickshaw")
	assert.Equal(t, 0.149, tr.FactorPerKm)
	assert.InDelta(t, 12*0.149, tr.EmissionsKg, 1e-9)
	assert.Equal(t, "rickshaw", tr.VehicleType)
	assert.False(t, tr.IsTransfer)
	assert.Equal(t, "ground_transport", tr.ConfidenceFactors[0].Factor)
}
