package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"carbon-travel-server/internals"
	"carbon-travel-server/model"
)

const defaultFactorsVersion = "2024.2"

var assessor = internals.NewAssessor(defaultFactorsVersion)

// InitHandlers configures the state shared by the handlers; it must run
// before the server starts.
func InitHandlers(factorsVersion string) {
	if factorsVersion == "" {
		factorsVersion = defaultFactorsVersion
	}
	assessor = internals.NewAssessor(factorsVersion)
}

func HandleAssess(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		assessItinerary(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func assessItinerary(w http.ResponseWriter, r *http.Request) {
	var itinerary model.Itinerary
	if err := decodeBody(w, r, &itinerary); err != nil {
		writeFailure(w, r, err)
		return
	}

	assessment, err := runAssessment(itinerary)
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	slog.Info("itinerary assessed",
		"assessment_id", assessment.AssessmentID,
		"segments", len(assessment.Segments),
		"co2e_kg", assessment.TotalEmissions.CO2eKg)
	writeJSON(w, http.StatusOK, assessment)
}

func runAssessment(itinerary model.Itinerary) (model.Assessment, error) {
	if err := validateItinerary(itinerary); err != nil {
		return model.Assessment{}, err
	}
	return assessor.Assess(itinerary)
}

type BatchRequest struct {
	BatchID     *string           `json:"batch_id"`
	Itineraries []json.RawMessage `json:"itineraries"`
}

type BatchItemResult struct {
	TripID     *string           `json:"trip_id"`
	Status     string            `json:"status"`
	Assessment *model.Assessment `json:"assessment,omitempty"`
	Error      *ErrorResponse    `json:"error,omitempty"`
}

type BatchAggregate struct {
	TotalEmissionsKg float64 `json:"total_emissions_kg"`
	AveragePerTripKg float64 `json:"average_per_trip_kg"`
}

type BatchResponse struct {
	BatchID          string            `json:"batch_id"`
	TotalItineraries int               `json:"total_itineraries"`
	Successful       int               `json:"successful"`
	Failed           int               `json:"failed"`
	Results          []BatchItemResult `json:"results"`
	Aggregate        BatchAggregate    `json:"aggregate"`
}

const (
	batchStatusSuccess = "success"
	batchStatusError   = "error"
)

func HandleBatchAssess(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		assessBatch(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func assessBatch(w http.ResponseWriter, r *http.Request) {
	var request BatchRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeFailure(w, r, err)
		return
	}
	if len(request.Itineraries) == 0 {
		writeFailure(w, r, invalid("itineraries array required"))
		return
	}
	if len(request.Itineraries) > MaxItineraries {
		writeFailure(w, r, invalid("Maximum %d itineraries allowed", MaxItineraries))
		return
	}

	response := BatchResponse{
		TotalItineraries: len(request.Itineraries),
		Results:          make([]BatchItemResult, 0, len(request.Itineraries)),
	}
	if request.BatchID != nil && *request.BatchID != "" {
		response.BatchID = *request.BatchID
	} else {
		response.BatchID = "batch_" + uuid.NewString()
	}

	// one failing itinerary never aborts the others
	for i, raw := range request.Itineraries {
		result := assessBatchItem(i, raw)
		if result.Status == batchStatusSuccess {
			response.Successful++
			response.Aggregate.TotalEmissionsKg += result.Assessment.TotalEmissions.CO2eKg
		} else {
			response.Failed++
		}
		response.Results = append(response.Results, result)
	}

	if response.Successful > 0 {
		response.Aggregate.AveragePerTripKg = internals.Round(response.Aggregate.TotalEmissionsKg/float64(response.Successful), 2)
	}
	response.Aggregate.TotalEmissionsKg = internals.Round(response.Aggregate.TotalEmissionsKg, 2)

	slog.Info("batch assessed", "batch_id", response.BatchID, "successful", response.Successful, "failed", response.Failed)
	writeJSON(w, http.StatusOK, response)
}

func assessBatchItem(index int, raw json.RawMessage) BatchItemResult {
	var itinerary model.Itinerary
	if err := json.Unmarshal(raw, &itinerary); err != nil {
		body := errorBody(invalid("itineraries[%d] is not a valid itinerary", index))
		return BatchItemResult{Status: batchStatusError, Error: &body}
	}

	assessment, err := runAssessment(itinerary)
	if err != nil {
		body := errorBody(err)
		return BatchItemResult{TripID: itinerary.TripID, Status: batchStatusError, Error: &body}
	}
	return BatchItemResult{TripID: itinerary.TripID, Status: batchStatusSuccess, Assessment: &assessment}
}
