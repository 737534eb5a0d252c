package db

import (
	"carbon-travel-server/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seedBatchSize = 100

type AirportDAO struct {
	db *gorm.DB
}

func NewAirportDAO(db *gorm.DB) *AirportDAO {
	return &AirportDAO{db: db}
}

// CreateAirports inserts the airports, skipping codes already present
func (airportDAO *AirportDAO) CreateAirports(airports []model.Airport) error {
	if len(airports) == 0 {
		return nil
	}
	result := airportDAO.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(airports, seedBatchSize)
	return result.Error
}

func (airportDAO *AirportDAO) GetAirports() ([]model.Airport, error) {
	var airports []model.Airport
	result := airportDAO.db.Order("airport_iata").Find(&airports)
	return airports, result.Error
}
