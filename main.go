package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carbon-travel-server/config"
	"carbon-travel-server/db"
	"carbon-travel-server/handlers"
	"carbon-travel-server/refdata"
)

func main() {
	// get port from flag, it wins over the PORT variable
	port := flag.String("port", "", "Port on which the server listens")
	configFile := flag.String("config", "", "Optional YAML configuration file")
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	if *port != "" {
		cfg.Port = *port
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	// load reference data
	tables, err := loadReferenceData(cfg)
	if err != nil {
		slog.Error("failed to load reference data", "source", cfg.ReferenceSource, "error", err)
		os.Exit(1)
	}
	refdata.Init(tables)
	handlers.InitHandlers(cfg.EmissionFactorsVersion)

	if cfg.RequireAPIKey && len(cfg.APIKeys) == 0 {
		slog.Warn("api keys are required but none are configured, every /v1 request will be rejected")
	}

	server := SetupServer(cfg)

	go func() {
		slog.Info("http server listening", "address", server.Addr, "env", cfg.Env)
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("failed to listen and serve http server", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shut down http server", "error", err)
	}
	slog.Info("application gracefully shutdown")
}

// loadReferenceData builds the lookup tables from the configured source. The
// database is only read at startup, so its connection is closed afterwards.
func loadReferenceData(cfg config.Config) (*refdata.Tables, error) {
	if cfg.ReferenceSource != config.SourcePostgres {
		slog.Info("using embedded reference data")
		return refdata.New(refdata.Builtin()), nil
	}

	database, err := db.InitDB(cfg.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.CloseDBConnection(); err != nil {
			slog.Warn("failed to close database connection", "error", err)
		}
	}()

	if err := db.MigrateReferenceTables(database); err != nil {
		return nil, fmt.Errorf("migrating reference tables: %w", err)
	}
	if cfg.Database.Seed {
		if err := db.SeedReferenceTables(database, refdata.Builtin()); err != nil {
			return nil, err
		}
	}
	return db.LoadReferenceTables(database)
}
