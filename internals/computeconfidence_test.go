package internals

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"carbon-travel-server/model"
)

func TestConfidenceBaseWithDefaultGrid(t *testing.T) {
	c := ComputeConfidence(ConfidenceInputs{GridQuality: model.QualityDefault})
	assert.Equal(t, 0.55, c.Score)
	assert.Equal(t, model.LevelLow, c.Level)
	assert.Equal(t, []string{"default_grid_intensity"}, factorNames(c.Factors))
}

func TestConfidenceMeasuredShortHaulIsHigh(t *testing.T) {
	c := ComputeConfidence(ConfidenceInputs{GridQuality: model.QualityMeasured, HaulType: "short"})
	assert.Equal(t, 0.80, c.Score)
	assert.Equal(t, model.LevelHigh, c.Level)
}

func TestConfidenceEstimatedIsMedium(t *testing.T) {
	c := ComputeConfidence(ConfidenceInputs{GridQuality: model.QualityEstimated, HaulType: "medium"})
	assert.Equal(t, 0.68, c.Score)
	assert.Equal(t, model.LevelMedium, c.Level)
}

func TestConfidenceAllSignals(t *testing.T) {
	c := ComputeConfidence(ConfidenceInputs{
		HasCarrierData:    true,
		HasAircraftData:   true,
		HasHotelChainData: true,
		GridQuality:       model.QualityMeasured,
		HaulType:          "long",
	})
	assert.Equal(t, 0.95, c.Score)
	assert.Equal(t, []string{
		"airline_specific_data",
		"aircraft_type_known",
		"measured_grid_intensity",
		"long_haul_route",
		"hotel_chain_data",
	}, factorNames(c.Factors))
}

func TestConfidenceAlwaysWithinBounds(t *testing.T) {
	bools := []bool{false, true}
	for _, carrier := range bools {
		for _, aircraft := range bools {
			for _, chain := range bools {
				for _, grid := range []string{model.QualityMeasured, model.QualityEstimated, model.QualityDefault, "bogus"} {
					for _, haul := range []string{"", "short", "medium", "long"} {
						c := ComputeConfidence(ConfidenceInputs{
							HasCarrierData:    carrier,
							HasAircraftData:   aircraft,
							HasHotelChainData: chain,
							GridQuality:       grid,
							HaulType:          haul,
						})
						assert.GreaterOrEqual(t, c.Score, 0.0)
						assert.LessOrEqual(t, c.Score, 1.0)
					}
				}
			}
		}
	}
}

func TestConfidenceDeduplicatesKeepingFirst(t *testing.T) {
	in := ConfidenceInputs{
		GridQuality: model.QualityMeasured,
		Factors: []model.ConfidenceFactor{
			{Factor: "ground_transport", Impact: model.ImpactPositive, Description: "first"},
			{Factor: "hotel_benchmark", Impact: model.ImpactPositive},
			{Factor: "ground_transport", Impact: model.ImpactNegative, Description: "second"},
			{Factor: "measured_grid_intensity", Impact: model.ImpactNeutral, Description: "from input"},
		},
	}
	c := ComputeConfidence(in)
	assert.Equal(t, []string{"ground_transport", "hotel_benchmark", "measured_grid_intensity"}, factorNames(c.Factors))
	assert.Equal(t, "first", c.Factors[0].Description)
	assert.Equal(t, "from input", c.Factors[2].Description)
}

func TestConfidenceIsPure(t *testing.T) {
	in := ConfidenceInputs{
		GridQuality: model.QualityEstimated,
		HaulType:    "short",
		Factors:     []model.ConfidenceFactor{{Factor: "x"}},
	}
	first := ComputeConfidence(in)
	second := ComputeConfidence(in)
	assert.Equal(t, first, second)
	assert.Len(t, in.Factors, 1)
}
