package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"carbon-travel-server/model"
)

const (
	MaxSegments    = 50
	MaxItineraries = 100

	maxBodyBytes = 4 << 20
)

// ValidationError is a malformed or incomplete request, rejected before any
// emission is computed.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// decodeBody reads a JSON body into dst, turning every decoding failure into
// a validation error.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	err := decoder.Decode(dst)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, io.EOF):
		return invalid("Request body is required")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return invalid("Request body must be valid JSON")
	case errors.As(err, &typeErr):
		return invalid("%s has an invalid type", typeErr.Field)
	case errors.As(err, &maxBytesErr):
		return invalid("Request body too large")
	default:
		return invalid("Request body could not be read: %v", err)
	}
}

var assessableTypes = map[string]bool{
	model.SegmentFlight:    true,
	model.SegmentHotel:     true,
	model.SegmentTransfer:  true,
	model.SegmentTaxi:      true,
	model.SegmentTransport: true,
}

func validateItinerary(it model.Itinerary) error {
	if it.TravelerCount != nil && *it.TravelerCount < 1 {
		return invalid("traveler_count must be at least 1")
	}
	if it.Options.AlternativeCount != nil && *it.Options.AlternativeCount < 0 {
		return invalid("options.alternative_count must not be negative")
	}
	return validateSegments(it.Segments)
}

func validateSegments(segments []model.Segment) error {
	if len(segments) == 0 {
		return invalid("segments array is required")
	}
	if len(segments) > MaxSegments {
		return invalid("Maximum %d segments allowed", MaxSegments)
	}

	for i, seg := range segments {
		if !assessableTypes[seg.Type] {
			return invalid("segments[%d].type must be 'flight', 'hotel', 'transfer', 'taxi', or 'transport'", i)
		}

		switch seg.Type {
		case model.SegmentFlight:
			if strings.TrimSpace(seg.Origin) == "" {
				return invalid("segments[%d].origin is required for flights", i)
			}
			if strings.TrimSpace(seg.Destination) == "" {
				return invalid("segments[%d].destination is required for flights", i)
			}
			if seg.DepartureDate == "" {
				return invalid("segments[%d].departure_date is required for flights", i)
			}
		case model.SegmentHotel:
			if seg.Location == nil {
				return invalid("segments[%d].location is required for hotels", i)
			}
			if strings.TrimSpace(seg.Location.CountryCode) == "" {
				return invalid("segments[%d].location.country_code is required", i)
			}
			if seg.CheckIn == "" {
				return invalid("segments[%d].check_in is required for hotels", i)
			}
			if seg.CheckOut == "" {
				return invalid("segments[%d].check_out is required for hotels", i)
			}
		default:
			if seg.DistanceKm != nil && *seg.DistanceKm < 0 {
				return invalid("segments[%d].distance_km must not be negative", i)
			}
		}
	}
	return nil
}

// requiredQuery returns the upper-cased values of the named query parameters,
// failing on the first one that is missing.
func requiredQuery(r *http.Request, names ...string) ([]string, error) {
	values := make([]string, len(names))
	for i, name := range names {
		values[i] = strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(name)))
		if values[i] == "" {
			return nil, invalid("%s query parameters required", strings.Join(names, " and "))
		}
	}
	return values, nil
}
