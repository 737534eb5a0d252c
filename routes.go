package main

import (
	"net/http"
	"time"

	"github.com/rs/cors"

	"carbon-travel-server/config"
	"carbon-travel-server/handlers"
)

func SetupServer(cfg config.Config) *http.Server {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRoutes(cfg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

func setupRoutes(cfg config.Config) http.Handler {
	v1 := http.NewServeMux()

	// setup routes
	v1.HandleFunc("/v1/assess", handlers.HandleAssess)
	v1.HandleFunc("/v1/assess/batch", handlers.HandleBatchAssess)

	v1.HandleFunc("/v1/alternatives", handlers.HandleAlternatives)
	v1.HandleFunc("/v1/alternatives/train-routes", handlers.HandleTrainRoutes)
	v1.HandleFunc("/v1/alternatives/check-train", handlers.HandleCheckTrain)

	v1.HandleFunc("/v1/factors/flights", handlers.HandleFlightFactors)
	v1.HandleFunc("/v1/factors/hotels", handlers.HandleHotelFactors)
	v1.HandleFunc("/v1/factors/trains", handlers.HandleTrainFactors)
	v1.HandleFunc("/v1/factors/grid-intensity", handlers.HandleGridIntensity)
	v1.HandleFunc("/v1/factors/airports", handlers.HandleAirports)
	v1.HandleFunc("/v1/factors/distance", handlers.HandleDistance)

	v1.HandleFunc("/v1/trains/search", handlers.HandleTrainSearch)
	v1.HandleFunc("/v1/trains/compare", handlers.HandleTrainCompare)
	v1.HandleFunc("/v1/trains/routes", handlers.HandleTrainRouteList)
	v1.HandleFunc("/v1/trains/stations", handlers.HandleStations)
	v1.HandleFunc("/v1/trains/booking-platforms", handlers.HandleBookingPlatforms)
	v1.HandleFunc("/v1/trains/book", handlers.HandleBookTrain)

	v1.HandleFunc("/v1/reports/esg", handlers.HandleESGReport)
	v1.HandleFunc("/v1/reports/", handlers.HandleReports)

	// auth runs inside the limiter so rejected keys still count against the client
	var api http.Handler = v1
	if cfg.RequireAPIKey {
		api = handlers.RequireAPIKey(cfg.APIKeys, api)
	}
	api = handlers.NewRateLimiter(cfg.RateLimitPerMinute).Middleware(api)
	api = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	}).Handler(api)

	mux := http.NewServeMux()
	mux.Handle("/v1/", api)
	mux.HandleFunc("/health", handlers.HandleHealth)
	mux.HandleFunc("/api", handlers.HandleAPIInfo)

	return mux
}
