package internals

import (
	"time"

	"github.com/google/uuid"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const assessmentTTL = 90 * 24 * time.Hour

var methodologyStandards = []string{
	"ICAO Carbon Emissions Calculator Methodology (v12)",
	"GHG Protocol Scope 3 Category 6",
	"DEFRA Greenhouse Gas Reporting Conversion Factors 2024",
}

var methodologyNotes = []string{
	"Flight factors already include a moderate radiative forcing uplift; no further multiplier is applied",
	"Hotel emissions calculated using regional grid carbon intensity data",
	"Cabin class allocation based on floor space methodology",
}

// Assessor turns an itinerary into an assessment. It holds no per-request
// state and is safe for concurrent use.
type Assessor struct {
	factorsVersion string
	now            func() time.Time
	newID          func() string
}

func NewAssessor(factorsVersion string) *Assessor {
	return &Assessor{
		factorsVersion: factorsVersion,
		now:            func() time.Time { return time.Now().UTC() },
		newID:          func() string { return "assess_" + uuid.NewString() },
	}
}

func (a *Assessor) FactorsVersion() string {
	return a.factorsVersion
}

func (a *Assessor) Assess(it model.Itinerary) (model.Assessment, error) {
	travelers := it.Travelers()
	evaluations, err := EvaluateSegments(it.Segments, travelers)
	if err != nil {
		return model.Assessment{}, err
	}

	var factors []model.ConfidenceFactor
	signals := ConfidenceInputs{GridQuality: model.QualityDefault}
	results := make([]model.SegmentResult, 0, len(evaluations))

	for _, eval := range evaluations {
		switch {
		case eval.Flight != nil:
			factors = append(factors, eval.Flight.ConfidenceFactors...)
			if signals.HaulType == "" {
				signals.HaulType = eval.Flight.HaulType
			}
			signals.HasCarrierData = signals.HasCarrierData || eval.Flight.CarrierCode != ""
			signals.HasAircraftData = signals.HasAircraftData || eval.Flight.AircraftType != ""
		case eval.Hotel != nil:
			factors = append(factors, eval.Hotel.ConfidenceFactors...)
			signals.GridQuality = betterQuality(signals.GridQuality, eval.Hotel.GridIntensity.Quality)
			signals.HasHotelChainData = signals.HasHotelChainData || eval.Stay.HotelChain != ""
		case eval.Transport != nil:
			factors = append(factors, eval.Transport.ConfidenceFactors...)
		}
		results = append(results, segmentResult(eval))
	}
	signals.Factors = factors

	totals, total := SummarizeEmissions(evaluations, travelers)
	now := a.now()

	assessment := model.Assessment{
		AssessmentID:    a.newID(),
		TripID:          it.TripID,
		TravelerCount:   travelers,
		TotalEmissions:  totals,
		ConfidenceScore: ComputeConfidence(signals),
		Segments:        results,
		CreatedAt:       now,
		ExpiresAt:       now.Add(assessmentTTL),
	}

	if it.Options.IncludeAlternatives {
		count := DefaultAlternativeCount
		if it.Options.AlternativeCount != nil {
			count = *it.Options.AlternativeCount
		}
		alternatives := ComputeAlternatives(evaluations, travelers, count)
		FinalizeSavings(alternatives, total)
		assessment.Alternatives = alternatives
	}

	if it.Options.IncludeMethodology {
		assessment.Methodology = a.methodology(now)
	}
	return assessment, nil
}

// SummarizeEmissions totals the evaluations per category. It returns the
// rounded summary and the unrounded grand total.
func SummarizeEmissions(evaluations []SegmentEvaluation, travelers int) (model.TotalEmissions, float64) {
	if travelers < 1 {
		travelers = 1
	}
	var breakdown model.EmissionBreakdown
	for _, eval := range evaluations {
		switch {
		case eval.Flight != nil:
			breakdown.FlightsKg += eval.EmissionsKg
		case eval.Hotel != nil:
			breakdown.HotelsKg += eval.EmissionsKg
		case eval.Transport != nil:
			breakdown.TransportKg += eval.EmissionsKg
		}
	}
	total := breakdown.FlightsKg + breakdown.HotelsKg + breakdown.TransportKg

	return model.TotalEmissions{
		CO2eKg: Round(total, 2),
		Unit:   model.UnitKgCO2e,
		Breakdown: model.EmissionBreakdown{
			FlightsKg:   Round(breakdown.FlightsKg, 2),
			HotelsKg:    Round(breakdown.HotelsKg, 2),
			TransportKg: Round(breakdown.TransportKg, 2),
		},
		PerTravelerKg: Round(total/float64(travelers), 2),
		Equivalent:    ComputeEquivalents(total),
	}, total
}

func (a *Assessor) methodology(now time.Time) *model.Methodology {
	return &model.Methodology{
		Standards:                  methodologyStandards,
		CalculationDate:            now.Format(dateLayout),
		EmissionFactorsVersion:     a.factorsVersion,
		RadiativeForcingMultiplier: refdata.RadiativeForcingMultiplier,
		Notes:                      methodologyNotes,
	}
}

var qualityRank = map[string]int{
	model.QualityMeasured:  0,
	model.QualityEstimated: 1,
	model.QualityDefault:   2,
}

func betterQuality(current, candidate string) string {
	rank, ok := qualityRank[candidate]
	if !ok {
		return current
	}
	if rank < qualityRank[current] {
		return candidate
	}
	return current
}

func ComputeEquivalents(kg float64) model.Equivalent {
	return model.Equivalent{
		TreesToOffset:  Round(kg/refdata.TreeAbsorptionKgPerYear, 1),
		DrivingKm:      Round(kg*refdata.DrivingKmPerKg, 0),
		StreamingHours: Round(kg*refdata.StreamingHoursPerKg, 0),
	}
}

func segmentResult(eval SegmentEvaluation) model.SegmentResult {
	result := model.SegmentResult{
		SegmentIndex: eval.Index,
		Type:         eval.Segment.Type,
		EmissionsKg:  Round(eval.EmissionsKg, 2),
	}

	switch {
	case eval.Flight != nil:
		f := eval.Flight
		details := model.FlightDetails{
			Origin:                     f.Origin,
			Destination:                f.Destination,
			DistanceKm:                 f.DistanceKm,
			HaulType:                   f.HaulType,
			CabinClass:                 f.CabinClass,
			EmissionFactorKgPerKm:      f.EmissionFactor,
			CabinMultiplier:            f.CabinMultiplier,
			RadiativeForcingMultiplier: f.RadiativeForcingMultiplier,
			FuelBurnKg:                 Round(f.FuelBurnKg, 1),
			LoadFactor:                 f.LoadFactor,
			EmissionFactorSource:       f.EmissionFactorSource,
		}
		if f.AircraftType != "" {
			aircraft := f.AircraftType
			details.AircraftType = &aircraft
		}
		result.Details = details

	case eval.Hotel != nil:
		h := eval.Hotel
		details := model.HotelDetails{
			Nights:                  h.Nights,
			Rooms:                   h.Rooms,
			Persons:                 h.Persons,
			StarRating:              h.StarRating,
			SustainabilityCertified: h.SustainabilityCertified,
			EmissionsPerNightKg:     Round(h.EmissionsPerNightKg, 2),
			GridCarbonIntensity: model.GridIntensityDetails{
				Value:   h.GridIntensity.Intensity,
				Source:  h.GridIntensity.Source,
				Quality: h.GridIntensity.Quality,
				Country: h.GridIntensity.CountryCode,
			},
			EnergyConsumptionKwh: Round(h.EnergyConsumptionKwh, 2),
			EmissionFactorSource: h.EmissionFactorSource,
		}
		if h.BreakfastType != refdata.BreakfastNone {
			details.Breakfast = &model.BreakfastDetails{
				Type:        h.BreakfastType,
				EmissionsKg: Round(h.BreakfastEmissionsKg, 2),
			}
		}
		result.Details = details

	case eval.Transport != nil:
		t := eval.Transport
		details := model.TransportDetails{
			Airport:              t.Airport,
			City:                 t.City,
			DistanceKm:           t.DistanceKm,
			VehicleType:          t.VehicleType,
			Shared:               eval.Segment.Shared,
			FactorPerKm:          t.FactorPerKm,
			EmissionFactorSource: groundFactorSource,
		}
		if t.IsTransfer {
			roundTrip := t.RoundTrip
			details.RoundTrip = &roundTrip
		}
		result.Details = details
	}
	return result
}
