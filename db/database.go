package db

import (
	"errors"
	"fmt"
	"log/slog"

	"carbon-travel-server/config"
	"carbon-travel-server/model"
	"carbon-travel-server/refdata"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

var ErrEmptyReferenceData = errors.New("reference tables are empty")

func InitDB(cfg config.Database) (*gorm.DB, error) {
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		// can't connect to the db, the caller decides whether to stop
		return nil, fmt.Errorf("connecting to database %s on %s: %w", cfg.Name, cfg.Host, err)
	}

	return db, nil
}

func GetDB() *gorm.DB {
	return db
}

func CloseDBConnection() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting sql connection from gorm: %w", err)
	}
	return sqlDB.Close()
}

// MigrateReferenceTables creates or updates the reference data tables.
func MigrateReferenceTables(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.Airport{},
		&model.GridIntensity{},
		&model.TrainRoute{},
		&model.TrainStation{},
		&model.SubstitutionRoute{},
	)
}

// SeedReferenceTables inserts the rows of src, leaving rows that already exist
// untouched so that edited values in the database survive a restart.
func SeedReferenceTables(gdb *gorm.DB, src refdata.Source) error {
	if err := NewAirportDAO(gdb).CreateAirports(src.Airports); err != nil {
		return fmt.Errorf("seeding airports: %w", err)
	}
	if err := NewGridIntensityDAO(gdb).CreateGridIntensities(src.GridIntensities); err != nil {
		return fmt.Errorf("seeding grid intensities: %w", err)
	}
	trainDAO := NewTrainDAO(gdb)
	if err := trainDAO.CreateTrainRoutes(src.TrainRoutes); err != nil {
		return fmt.Errorf("seeding train routes: %w", err)
	}
	if err := trainDAO.CreateStations(src.Stations); err != nil {
		return fmt.Errorf("seeding train stations: %w", err)
	}
	if err := trainDAO.CreateSubstitutionRoutes(src.SubstitutionRoutes); err != nil {
		return fmt.Errorf("seeding substitution routes: %w", err)
	}
	return nil
}

// LoadReferenceTables reads every reference table and builds the lookup
// tables from them.
func LoadReferenceTables(gdb *gorm.DB) (*refdata.Tables, error) {
	var (
		src refdata.Source
		err error
	)

	src.Airports, err = NewAirportDAO(gdb).GetAirports()
	if err != nil {
		return nil, fmt.Errorf("loading airports: %w", err)
	}
	if len(src.Airports) == 0 {
		return nil, ErrEmptyReferenceData
	}
	src.GridIntensities, err = NewGridIntensityDAO(gdb).GetGridIntensities()
	if err != nil {
		return nil, fmt.Errorf("loading grid intensities: %w", err)
	}
	trainDAO := NewTrainDAO(gdb)
	src.TrainRoutes, err = trainDAO.GetTrainRoutes()
	if err != nil {
		return nil, fmt.Errorf("loading train routes: %w", err)
	}
	src.Stations, err = trainDAO.GetStations()
	if err != nil {
		return nil, fmt.Errorf("loading train stations: %w", err)
	}
	src.SubstitutionRoutes, err = trainDAO.GetSubstitutionRoutes()
	if err != nil {
		return nil, fmt.Errorf("loading substitution routes: %w", err)
	}

	slog.Info("reference data loaded from database",
		"airports", len(src.Airports),
		"grid_intensities", len(src.GridIntensities),
		"train_routes", len(src.TrainRoutes),
		"stations", len(src.Stations),
		"substitution_routes", len(src.SubstitutionRoutes))

	return refdata.New(src), nil
}
