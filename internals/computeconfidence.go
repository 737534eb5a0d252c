package internals

import (
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const baseConfidence = 0.65

// ConfidenceInputs are the signals the score is built from. Factors are the
// ones already collected from the individual calculations.
type ConfidenceInputs struct {
	Factors           []model.ConfidenceFactor
	HasCarrierData    bool
	HasAircraftData   bool
	HasHotelChainData bool
	GridQuality       string
	HaulType          string
}

// ComputeConfidence scores how much of an assessment rests on specific data
// rather than defaults. Same inputs always give the same result.
func ComputeConfidence(in ConfidenceInputs) model.ConfidenceScore {
	factors := append([]model.ConfidenceFactor(nil), in.Factors...)
	adjustment := 0.0

	if in.HasCarrierData {
		adjustment += 0.05
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "airline_specific_data",
			Impact:      model.ImpactPositive,
			Description: "Carrier-specific fuel efficiency data used",
		})
	}

	if in.HasAircraftData {
		adjustment += 0.05
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "aircraft_type_known",
			Impact:      model.ImpactPositive,
			Description: "Specific aircraft type improves accuracy",
		})
	}

	switch in.GridQuality {
	case model.QualityMeasured:
		adjustment += 0.10
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "measured_grid_intensity",
			Impact:      model.ImpactPositive,
			Description: "Country has measured grid carbon intensity data",
		})
	case model.QualityEstimated:
		adjustment += 0.03
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "estimated_grid_intensity",
			Impact:      model.ImpactNeutral,
			Description: "Grid intensity based on regional estimates",
		})
	default:
		adjustment -= 0.10
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "default_grid_intensity",
			Impact:      model.ImpactNegative,
			Description: "Using global default for grid intensity",
		})
	}

	switch in.HaulType {
	case refdata.HaulShort:
		adjustment += 0.05
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "short_haul_accuracy",
			Impact:      model.ImpactPositive,
			Description: "Short-haul routes have highest data accuracy",
		})
	case refdata.HaulLong:
		adjustment += 0.02
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "long_haul_route",
			Impact:      model.ImpactNeutral,
			Description: "Long-haul routes use averaged factors",
		})
	}

	if in.HasHotelChainData {
		adjustment += 0.08
		factors = append(factors, model.ConfidenceFactor{
			Factor:      "hotel_chain_data",
			Impact:      model.ImpactPositive,
			Description: "Hotel chain-specific sustainability data available",
		})
	}

	// rounded before leveling so 0.65+0.15 lands on "high"
	score := Round(min(1.0, max(0.0, baseConfidence+adjustment)), 2)

	return model.ConfidenceScore{
		Score:   score,
		Level:   confidenceLevel(score),
		Factors: DedupFactors(factors),
	}
}

func confidenceLevel(score float64) string {
	if score >= 0.80 {
		return model.LevelHigh
	} else if score >= 0.60 {
		return model.LevelMedium
	}
	return model.LevelLow
}

// DedupFactors keeps the first factor seen for each name, in order.
func DedupFactors(factors []model.ConfidenceFactor) []model.ConfidenceFactor {
	seen := make(map[string]bool, len(factors))
	unique := make([]model.ConfidenceFactor, 0, len(factors))
	for _, f := range factors {
		if seen[f.Factor] {
			continue
		}
		seen[f.Factor] = true
		unique = append(unique, f)
	}
	return unique
}
