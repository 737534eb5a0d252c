package internals

import (
	"errors"
	"strings"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const flightFactorSource = "ICAO Carbon Calculator + DEFRA 2024"

type FlightRequest struct {
	Origin       string
	Destination  string
	CabinClass   string
	CarrierCode  string
	AircraftType string
}

// ComputeFlightEmission returns per-passenger emissions for one flight leg.
func ComputeFlightEmission(req FlightRequest) (model.FlightEmission, error) {
	origin := strings.ToUpper(strings.TrimSpace(req.Origin))
	destination := strings.ToUpper(strings.TrimSpace(req.Destination))

	distance, err := ComputeDistance(origin, destination)
	if err != nil {
		if errors.Is(err, refdata.ErrAirportNotFound) {
			return model.FlightEmission{}, newProcessingError(err,
				"could not calculate emissions for route %s → %s: unknown airport code", origin, destination)
		}
		return model.FlightEmission{}, err
	}

	haul := HaulType(distance)
	cabin := refdata.NormalizeCabin(req.CabinClass)
	baseFactor := refdata.FlightBaseFactor(haul)
	cabinMultiplier := refdata.CabinMultiplier(cabin)

	emissions := distance * baseFactor * cabinMultiplier * refdata.RadiativeForcingMultiplier

	// descriptive only
	fuelBurn := distance * refdata.FuelBurnPerKm(haul)

	return model.FlightEmission{
		EmissionsKg:                emissions,
		Origin:                     origin,
		Destination:                destination,
		DistanceKm:                 distance,
		HaulType:                   haul,
		CabinClass:                 cabin,
		EmissionFactor:             baseFactor,
		CabinMultiplier:            cabinMultiplier,
		RadiativeForcingMultiplier: refdata.RadiativeForcingMultiplier,
		FuelBurnKg:                 fuelBurn,
		LoadFactor:                 refdata.DefaultLoadFactor,
		CarrierCode:                strings.ToUpper(strings.TrimSpace(req.CarrierCode)),
		AircraftType:               strings.TrimSpace(req.AircraftType),
		EmissionFactorSource:       flightFactorSource,
		ConfidenceFactors:          flightConfidenceFactors(haul, req.CarrierCode != ""),
	}, nil
}

func flightConfidenceFactors(haul string, hasCarrier bool) []model.ConfidenceFactor {
	factors := []model.ConfidenceFactor{{
		Factor:      "icao_methodology",
		Impact:      model.ImpactPositive,
		Description: "Distance-based ICAO methodology with haul-specific factors",
	}}

	switch haul {
	case refdata.HaulShort:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "short_haul_route",
			Impact:      model.ImpactPositive,
			Description: "Short-haul factors include takeoff and landing overhead",
		})
	case refdata.HaulMedium:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "medium_haul_route",
			Impact:      model.ImpactNeutral,
			Description: "Medium-haul routes use averaged fleet factors",
		})
	default:
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "long_haul_averaged",
			Impact:      model.ImpactNeutral,
			Description: "Long-haul factors are averaged across aircraft types",
		})
	}

	if !hasCarrier {
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "generic_load_factor",
			Impact:      model.ImpactNeutral,
			Description: "Industry average load factor of 82% assumed",
		})
	}
	return factors
}
