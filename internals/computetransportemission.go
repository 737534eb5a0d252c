package internals

import (
	"strings"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const groundFactorSource = "DEFRA 2024"

var groundTransportFactor = model.ConfidenceFactor{
	Factor:      "ground_transport",
	Impact:      model.ImpactPositive,
	Description: "Using DEFRA 2024 vehicle emission factors",
}

// ComputeTransferEmission covers an airport to city-centre ride, doubled for
// a round trip. Unknown airports use the default distance.
func ComputeTransferEmission(airport, vehicle string, roundTrip bool) model.TransportEmission {
	airport = strings.ToUpper(strings.TrimSpace(airport))
	transfer := refdata.TransferDistanceFor(airport)

	distance := transfer.DistanceKm
	if roundTrip {
		distance *= 2
	}
	factor := refdata.VehicleFactor(vehicle)

	return model.TransportEmission{
		EmissionsKg:       distance * factor,
		DistanceKm:        distance,
		VehicleType:       vehicle,
		FactorPerKm:       factor,
		Airport:           airport,
		City:              transfer.City,
		RoundTrip:         roundTrip,
		IsTransfer:        true,
		ConfidenceFactors: []model.ConfidenceFactor{groundTransportFactor},
	}
}

// ComputeTransportEmission covers a point-to-point ride of known length.
func ComputeTransportEmission(distanceKm float64, vehicle string) model.TransportEmission {
	factor := refdata.VehicleFactor(vehicle)
	return model.TransportEmission{
		EmissionsKg:       distanceKm * factor,
		DistanceKm:        distanceKm,
		VehicleType:       vehicle,
		FactorPerKm:       factor,
		ConfidenceFactors: []model.ConfidenceFactor{groundTransportFactor},
	}
}
