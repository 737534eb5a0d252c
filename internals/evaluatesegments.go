package internals

import (
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

const (
	defaultStarRating        = 4
	defaultVehicle           = "uber_x"
	defaultTransportDistance = 10.0
)

// SegmentEvaluation is one itinerary segment with its baseline emissions for
// the whole travelling party. Exactly one of Flight, Hotel and Transport is set.
type SegmentEvaluation struct {
	Index       int
	Segment     model.Segment
	EmissionsKg float64
	Flight      *model.FlightEmission
	Hotel       *model.HotelEmission
	Stay        *HotelStay
	Transport   *model.TransportEmission
}

func EvaluateSegments(segments []model.Segment, travelers int) ([]SegmentEvaluation, error) {
	evaluations := make([]SegmentEvaluation, 0, len(segments))
	for i, seg := range segments {
		eval, err := EvaluateSegment(i, seg, travelers)
		if err != nil {
			return nil, err
		}
		evaluations = append(evaluations, eval)
	}
	return evaluations, nil
}

func EvaluateSegment(index int, seg model.Segment, travelers int) (SegmentEvaluation, error) {
	if travelers < 1 {
		travelers = 1
	}
	eval := SegmentEvaluation{Index: index, Segment: seg}

	switch seg.Type {
	case model.SegmentFlight:
		flight, err := ComputeFlightEmission(FlightRequest{
			Origin:       seg.Origin,
			Destination:  seg.Destination,
			CabinClass:   seg.CabinClass,
			CarrierCode:  seg.CarrierCode,
			AircraftType: seg.AircraftType,
		})
		if err != nil {
			return eval, err
		}
		eval.Flight = &flight
		eval.EmissionsKg = flight.EmissionsKg * float64(travelers)

	case model.SegmentHotel:
		stay, err := hotelStay(index, seg, travelers)
		if err != nil {
			return eval, err
		}
		hotel := ComputeHotelEmission(stay)
		eval.Stay = &stay
		eval.Hotel = &hotel
		eval.EmissionsKg = hotel.EmissionsKg

	case model.SegmentTransfer:
		vehicle := orDefault(seg.VehicleType, defaultVehicle)
		roundTrip := true
		if seg.RoundTrip != nil {
			roundTrip = *seg.RoundTrip
		}
		transport := ComputeTransferEmission(seg.Airport, vehicle, roundTrip)
		eval.Transport = &transport
		eval.EmissionsKg = transport.EmissionsKg
		if !seg.Shared {
			eval.EmissionsKg *= float64(travelers)
		}

	case model.SegmentTaxi, model.SegmentTransport:
		distance := defaultTransportDistance
		if seg.DistanceKm != nil {
			distance = *seg.DistanceKm
		}
		transport := ComputeTransportEmission(distance, orDefault(seg.VehicleType, defaultVehicle))
		eval.Transport = &transport
		eval.EmissionsKg = transport.EmissionsKg

	default:
		return eval, newProcessingError(nil, "unsupported segment type %q at index %d", seg.Type, index)
	}
	return eval, nil
}

func hotelStay(index int, seg model.Segment, travelers int) (HotelStay, error) {
	checkIn, checkOut, err := ParseStayDates(seg.CheckIn, seg.CheckOut)
	if err != nil {
		return HotelStay{}, newProcessingError(err, "invalid date format for hotel segment %d", index)
	}

	stay := HotelStay{
		CheckIn:                 checkIn,
		CheckOut:                checkOut,
		StarRating:              defaultStarRating,
		RoomCount:               1,
		Persons:                 travelers,
		SustainabilityCertified: seg.SustainabilityCertified,
		Breakfast:               orDefault(seg.Breakfast, refdata.BreakfastNone),
		HotelChain:              seg.HotelChain,
	}
	if seg.Location != nil {
		stay.CountryCode = seg.Location.CountryCode
	}
	if seg.StarRating != nil {
		stay.StarRating = *seg.StarRating
	}
	if seg.RoomCount != nil {
		stay.RoomCount = *seg.RoomCount
	}
	if seg.Persons != nil {
		stay.Persons = *seg.Persons
	}
	return stay, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// TotalEmissions sums the baseline emissions of all evaluated segments.
func TotalEmissions(evaluations []SegmentEvaluation) float64 {
	total := 0.0
	for _, e := range evaluations {
		total += e.EmissionsKg
	}
	return total
}
