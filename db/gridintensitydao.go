package db

import (
	"carbon-travel-server/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GridIntensityDAO struct {
	db *gorm.DB
}

func NewGridIntensityDAO(db *gorm.DB) *GridIntensityDAO {
	return &GridIntensityDAO{db: db}
}

func (gridDAO *GridIntensityDAO) CreateGridIntensities(entries []model.GridIntensity) error {
	if len(entries) == 0 {
		return nil
	}
	result := gridDAO.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(entries, seedBatchSize)
	return result.Error
}

func (gridDAO *GridIntensityDAO) GetGridIntensities() ([]model.GridIntensity, error) {
	var entries []model.GridIntensity
	result := gridDAO.db.Order("country_code").Find(&entries)
	return entries, result.Error
}
