package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
)

func TestHandleFlightFactors(t *testing.T) {
	rec := doRequest(HandleFlightFactors, "GET", "/v1/factors/flights", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeResponse[FlightFactorsResponse](t, rec)
	assert.Len(t, all.Factors, 12)
	assert.Equal(t, refdata.RadiativeForcingMultiplier, all.RadiativeForcingMultiplier)
	assert.Len(t, all.HaulTypeDefinitions, 3)

	rec = doRequest(HandleFlightFactors, "GET", "/v1/factors/flights?cabin_class=BUSINESS&haul_type=short", "")
	require.Equal(t, http.StatusOK, rec.Code)
	filtered := decodeResponse[FlightFactorsResponse](t, rec)
	require.Len(t, filtered.Factors, 1)
	assert.Equal(t, refdata.CabinBusiness, filtered.Factors[0].CabinClass)
	assert.Equal(t, refdata.HaulShort, filtered.Factors[0].HaulType)

	rec = doRequest(HandleFlightFactors, "GET", "/v1/factors/flights?cabin_class=sleeper", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"factors":[]`)
}

func TestHandleHotelFactors(t *testing.T) {
	rec := doRequest(HandleHotelFactors, "GET", "/v1/factors/hotels?country_code=gb", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeResponse[HotelFactorsResponse](t, rec)
	assert.Equal(t, "GB", resp.CountryCode)
	assert.Equal(t, 198.0, resp.GridCarbonIntensity.ValueGCO2PerKwh)
	assert.Equal(t, model.QualityMeasured, resp.GridCarbonIntensity.Quality)
	require.Len(t, resp.HotelEmissionFactors, 5)
	assert.Equal(t, 3, resp.HotelEmissionFactors[2].StarRating)
	assert.Equal(t, 7.92, resp.HotelEmissionFactors[2].KgCO2ePerNight)
	assert.Equal(t, refdata.EcoCertifiedDiscount, resp.EcoCertificationDiscount)

	rec = doRequest(HandleHotelFactors, "GET", "/v1/factors/hotels", "")
	body := requireError(t, rec, http.StatusBadRequest, CodeValidation)
	assert.Equal(t, "country_code query parameter is required", body.Message)
}

func TestHandleTrainFactors(t *testing.T) {
	rec := doRequest(HandleTrainFactors, "GET", "/v1/factors/trains", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[TrainFactorsResponse](t, rec)
	require.NotEmpty(t, resp.Factors)
	assert.Equal(t, refdata.TrainTGV, resp.Factors[0].TrainType)
	for _, f := range resp.Factors {
		assert.InDelta(t, f.KgCO2ePerKm*1000, f.GCO2ePerKm, 1e-9)
	}
}

func TestHandleGridIntensity(t *testing.T) {
	rec := doRequest(HandleGridIntensity, "GET", "/v1/factors/grid-intensity", "")
	require.Equal(t, http.StatusOK, rec.Code)
	all := decodeResponse[GridIntensityResponse](t, rec)
	assert.Equal(t, "all", all.Region)
	assert.Equal(t, len(all.Countries), all.Total)
	require.NotNil(t, all.LowestCarbon)
	assert.Equal(t, "IS", *all.LowestCarbon)
	assert.Equal(t, "PL", *all.HighestCarbon)

	rec = doRequest(HandleGridIntensity, "GET", "/v1/factors/grid-intensity?region=EU", "")
	require.Equal(t, http.StatusOK, rec.Code)
	eu := decodeResponse[GridIntensityResponse](t, rec)
	assert.Equal(t, "eu", eu.Region)
	assert.Equal(t, 23, eu.Total)
	assert.Equal(t, "PL", *eu.HighestCarbon)

	rec = doRequest(HandleGridIntensity, "GET", "/v1/factors/grid-intensity?region=asia", "")
	requireError(t, rec, http.StatusBadRequest, CodeValidation)
}

func TestHandleAirports(t *testing.T) {
	rec := doRequest(HandleAirports, "GET", "/v1/factors/airports?country=GB", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse[AirportListResponse](t, rec)
	assert.Equal(t, 7, resp.Total)
	require.Len(t, resp.Airports, 7)
	assert.Equal(t, "BHX", resp.Airports[0].Code)
	assert.NotNil(t, resp.Airports[0].Coordinates)

	rec = doRequest(HandleAirports, "GET", "/v1/factors/airports?search=london", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decodeResponse[AirportListResponse](t, rec).Total)
}

func TestHandleDistance(t *testing.T) {
	rec := doRequest(HandleDistance, "GET", "/v1/factors/distance?origin=lhr&destination=CDG", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeResponse[DistanceResponse](t, rec)
	assert.Equal(t, "LHR", resp.Origin.Code)
	assert.Equal(t, "London Heathrow", resp.Origin.Name)
	assert.Nil(t, resp.Origin.Coordinates)
	assert.Equal(t, "CDG", resp.Destination.Code)
	assert.Equal(t, 347.0, resp.DistanceKm)
	assert.Equal(t, refdata.HaulShort, resp.HaulType)
}

func TestHandleDistanceErrors(t *testing.T) {
	rec := doRequest(HandleDistance, "GET", "/v1/factors/distance?origin=LHR&destination=XXX", "")
	body := requireError(t, rec, http.StatusNotFound, CodeNotFound)
	assert.Equal(t, "Airport code 'XXX' not found", body.Message)

	rec = doRequest(HandleDistance, "GET", "/v1/factors/distance?origin=LHR", "")
	requireError(t, rec, http.StatusBadRequest, CodeValidation)

	rec = doRequest(HandleDistance, "POST", "/v1/factors/distance", "")
	requireError(t, rec, http.StatusMethodNotAllowed, CodeMethod)
}
