package internals

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const (
	StrategyTrain    = "train_for_flight"
	StrategyEcoHotel = "eco_hotel"
	StrategyCombined = "combined"

	DefaultAlternativeCount = 3
)

var (
	trainTradeoffs    = model.Tradeoffs{TimeDifferenceMinutes: 60, EstimatedCostDifferenceEur: -30, ComfortScore: 4.5}
	ecoHotelTradeoffs = model.Tradeoffs{TimeDifferenceMinutes: 0, EstimatedCostDifferenceEur: -20, ComfortScore: 4.0}
	combinedTradeoffs = model.Tradeoffs{TimeDifferenceMinutes: 60, EstimatedCostDifferenceEur: -50, ComfortScore: 4.3}
)

// replacements maps an original segment index to what replaces it.
type replacements map[int]model.AlternativeSegment

// ComputeAlternatives evaluates the train-for-flight, eco-hotel and combined
// strategies against the baseline evaluations and returns at most
// maxAlternatives of them, best percentage saving first. Every alternative
// covers the whole itinerary: untouched segments keep their baseline emissions.
// Callers apply DefaultAlternativeCount themselves; zero asks for none.
func ComputeAlternatives(evaluations []SegmentEvaluation, travelers, maxAlternatives int) []model.Alternative {
	if maxAlternatives < 1 {
		return nil
	}
	if travelers < 1 {
		travelers = 1
	}
	baseline := TotalEmissions(evaluations)

	trains := trainReplacements(evaluations, travelers)
	hotels, hotelSavings := ecoHotelReplacements(evaluations)

	var alternatives []model.Alternative
	if len(trains) > 0 {
		alternatives = append(alternatives, buildAlternative(evaluations, baseline, model.Alternative{
			AlternativeID:        "alt_train",
			Strategy:             StrategyTrain,
			Tradeoffs:            trainTradeoffs,
			RecommendationReason: "Taking the train instead of flying significantly reduces emissions with minimal journey time difference.",
		}, trains))
	}
	if len(hotels) > 0 && hotelSavings > 0 {
		alternatives = append(alternatives, buildAlternative(evaluations, baseline, model.Alternative{
			AlternativeID:        "alt_eco_hotel",
			Strategy:             StrategyEcoHotel,
			Tradeoffs:            ecoHotelTradeoffs,
			RecommendationReason: "Switching to an eco-certified hotel reduces accommodation emissions without compromising comfort.",
		}, hotels))
	}
	if len(trains) > 0 && len(hotels) > 0 && hotelSavings > 0 {
		alternatives = append(alternatives, buildAlternative(evaluations, baseline, model.Alternative{
			AlternativeID:        "alt_combined",
			Strategy:             StrategyCombined,
			Tradeoffs:            combinedTradeoffs,
			RecommendationReason: "Best overall: Combining train travel with eco-hotels achieves maximum emission reduction.",
		}, trains, hotels))
	}

	sort.SliceStable(alternatives, func(i, j int) bool {
		return alternatives[i].Savings.Percentage > alternatives[j].Savings.Percentage
	})
	if len(alternatives) > maxAlternatives {
		alternatives = alternatives[:maxAlternatives]
	}
	return alternatives
}

func buildAlternative(evaluations []SegmentEvaluation, baseline float64, alt model.Alternative, sets ...replacements) model.Alternative {
	total := 0.0
	alt.Segments = make([]model.AlternativeSegment, 0, len(evaluations))
	for _, eval := range evaluations {
		seg, replaced := lookupReplacement(eval.Index, sets)
		if !replaced {
			seg = unchangedSegment(eval)
		}
		total += seg.EmissionsKg
		alt.Segments = append(alt.Segments, seg)
	}

	alt.TotalEmissions = model.EmissionTotal{CO2eKg: total, Unit: model.UnitKgCO2e}
	alt.Savings = savings(baseline-total, baseline)
	return alt
}

func lookupReplacement(index int, sets []replacements) (model.AlternativeSegment, bool) {
	for _, set := range sets {
		if seg, ok := set[index]; ok {
			return seg, true
		}
	}
	return model.AlternativeSegment{}, false
}

func unchangedSegment(eval SegmentEvaluation) model.AlternativeSegment {
	description := "Same as original"
	if eval.Flight != nil {
		description = fmt.Sprintf("Same flight %s → %s", eval.Flight.Origin, eval.Flight.Destination)
	}
	return model.AlternativeSegment{
		Type:                 eval.Segment.Type,
		OriginalSegmentIndex: eval.Index,
		Description:          description,
		EmissionsKg:          eval.EmissionsKg,
	}
}

func trainReplacements(evaluations []SegmentEvaluation, travelers int) replacements {
	out := replacements{}
	for _, eval := range evaluations {
		if eval.Flight == nil {
			continue
		}
		route, ok := refdata.Get().SubstitutionRoute(eval.Flight.Origin, eval.Flight.Destination)
		if !ok {
			continue
		}

		originStation, destinationStation := route.OriginStation, route.DestinationStation
		if !strings.EqualFold(route.Origin, eval.Flight.Origin) {
			originStation, destinationStation = destinationStation, originStation
		}
		factor := refdata.TrainFactor(route.TrainType)

		out[eval.Index] = model.AlternativeSegment{
			Type:                 model.SegmentTrain,
			OriginalSegmentIndex: eval.Index,
			Description:          route.RouteName,
			EmissionsKg:          route.DistanceKm * factor * float64(travelers),
			Details: model.TrainSubstitutionDetails{
				OriginStation:         originStation,
				DestinationStation:    destinationStation,
				DurationMinutes:       route.DurationMinutes,
				DistanceKm:            route.DistanceKm,
				TrainType:             route.TrainType,
				EmissionFactorKgPerKm: factor,
				EstimatedCostEur:      route.TypicalPriceEur,
			},
		}
	}
	return out
}

// ecoHotelReplacements recomputes every uncertified stay as certified and
// returns the replacements with their combined saving.
func ecoHotelReplacements(evaluations []SegmentEvaluation) (replacements, float64) {
	out := replacements{}
	saved := 0.0
	for _, eval := range evaluations {
		if eval.Stay == nil || eval.Stay.SustainabilityCertified {
			continue
		}
		stay := *eval.Stay
		stay.SustainabilityCertified = true
		eco := ComputeHotelEmission(stay)
		saved += eval.EmissionsKg - eco.EmissionsKg

		where := "Same location"
		if eval.Segment.Location != nil && eval.Segment.Location.City != "" {
			where = eval.Segment.Location.City
		}
		out[eval.Index] = model.AlternativeSegment{
			Type:                 model.SegmentHotel,
			OriginalSegmentIndex: eval.Index,
			Description:          fmt.Sprintf("Eco-certified %d-star hotel, %s", eco.StarRating, where),
			EmissionsKg:          eco.EmissionsKg,
			Details: model.EcoHotelDetails{
				SustainabilityCertified: true,
				EnergyReductionPercent:  refdata.EcoCertifiedDiscount * 100,
				Certification:           "EU Ecolabel / Green Key",
			},
		}
	}
	return out, saved
}

func savings(absolute, baseline float64) model.Savings {
	percentage := 0.0
	if baseline > 0 {
		percentage = Round(absolute/baseline*100, 1)
	}
	return model.Savings{
		AbsoluteKg: absolute,
		Percentage: percentage,
		Label:      savingsLabel(absolute, percentage),
	}
}

func savingsLabel(absolute, percentage float64) string {
	return fmt.Sprintf("Saves %.1f kg CO₂e (%d%% reduction)", Round(absolute, 1), int(math.Round(percentage)))
}

// FinalizeSavings recomputes each alternative's percentage and label against
// the itinerary's original total and rounds its figures for output.
func FinalizeSavings(alternatives []model.Alternative, originalTotal float64) {
	for i := range alternatives {
		alt := &alternatives[i]
		alt.Savings = savings(alt.Savings.AbsoluteKg, originalTotal)
		alt.Savings.AbsoluteKg = Round(alt.Savings.AbsoluteKg, 2)
		alt.TotalEmissions.CO2eKg = Round(alt.TotalEmissions.CO2eKg, 2)
		for j := range alt.Segments {
			alt.Segments[j].EmissionsKg = Round(alt.Segments[j].EmissionsKg, 3)
		}
	}
}

// ranking preferences for RankAlternatives
const (
	RankEmissions = "emissions"
	RankCost      = "cost"
	RankTime      = "time"
	RankBalanced  = "balanced"
)

var ErrUnknownRanking = errors.New("unknown ranking preference")

// RankAlternatives reorders alternatives for the given preference. Balanced
// keeps the engine order, best percentage saving first. Ties keep their
// relative order.
func RankAlternatives(alternatives []model.Alternative, preference string) error {
	var less func(a, b model.Alternative) bool
	switch preference {
	case "", RankEmissions:
		less = func(a, b model.Alternative) bool { return a.TotalEmissions.CO2eKg < b.TotalEmissions.CO2eKg }
	case RankCost:
		less = func(a, b model.Alternative) bool {
			return a.Tradeoffs.EstimatedCostDifferenceEur < b.Tradeoffs.EstimatedCostDifferenceEur
		}
	case RankTime:
		less = func(a, b model.Alternative) bool {
			return a.Tradeoffs.TimeDifferenceMinutes < b.Tradeoffs.TimeDifferenceMinutes
		}
	case RankBalanced:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRanking, preference)
	}
	sort.SliceStable(alternatives, func(i, j int) bool {
		return less(alternatives[i], alternatives[j])
	})
	return nil
}
