package model

const (
	SegmentFlight    = "flight"
	SegmentHotel     = "hotel"
	SegmentTransfer  = "transfer"
	SegmentTaxi      = "taxi"
	SegmentTransport = "transport"
	SegmentTrain     = "train"
)

// Segment is one leg of an itinerary as submitted by the client.
// Which fields are meaningful depends on Type.
type Segment struct {
	Type string `json:"type"`

	// flight
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	CabinClass    string `json:"cabin_class,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	CarrierCode   string `json:"carrier_code,omitempty"`
	AircraftType  string `json:"aircraft_type,omitempty"`

	// hotel
	Location                *Location `json:"location,omitempty"`
	CheckIn                 string    `json:"check_in,omitempty"`
	CheckOut                string    `json:"check_out,omitempty"`
	StarRating              *int      `json:"star_rating,omitempty"`
	RoomCount               *int      `json:"room_count,omitempty"`
	Persons                 *int      `json:"persons,omitempty"`
	SustainabilityCertified bool      `json:"sustainability_certified,omitempty"`
	Breakfast               string    `json:"breakfast,omitempty"`
	HotelChain              string    `json:"hotel_chain,omitempty"`

	// transfer, taxi, transport
	Airport     string   `json:"airport,omitempty"`
	VehicleType string   `json:"vehicle_type,omitempty"`
	RoundTrip   *bool    `json:"round_trip,omitempty"`
	Shared      bool     `json:"shared,omitempty"`
	DistanceKm  *float64 `json:"distance_km,omitempty"`
}

type Location struct {
	CountryCode string `json:"country_code"`
	City        string `json:"city,omitempty"`
}

func (s Segment) IsGroundTransport() bool {
	return s.Type == SegmentTransfer || s.Type == SegmentTaxi || s.Type == SegmentTransport
}

type AssessmentOptions struct {
	IncludeAlternatives bool `json:"include_alternatives"`
	AlternativeCount    *int `json:"alternative_count,omitempty"`
	IncludeMethodology  bool `json:"include_methodology"`
}

// Itinerary is the body of an assessment request.
type Itinerary struct {
	TripID        *string           `json:"trip_id,omitempty"`
	TravelerCount *int              `json:"traveler_count,omitempty"`
	Segments      []Segment         `json:"segments"`
	Options       AssessmentOptions `json:"options"`
}

// Travelers returns the traveler count, defaulting to one.
func (it Itinerary) Travelers() int {
	if it.TravelerCount == nil || *it.TravelerCount < 1 {
		return 1
	}
	return *it.TravelerCount
}
