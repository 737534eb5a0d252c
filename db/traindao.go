package db

import (
	"carbon-travel-server/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TrainDAO struct {
	db *gorm.DB
}

func NewTrainDAO(db *gorm.DB) *TrainDAO {
	return &TrainDAO{db: db}
}

func (trainDAO *TrainDAO) CreateTrainRoutes(routes []model.TrainRoute) error {
	if len(routes) == 0 {
		return nil
	}
	return trainDAO.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(routes, seedBatchSize).Error
}

func (trainDAO *TrainDAO) CreateStations(stations []model.TrainStation) error {
	if len(stations) == 0 {
		return nil
	}
	return trainDAO.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(stations, seedBatchSize).Error
}

func (trainDAO *TrainDAO) CreateSubstitutionRoutes(routes []model.SubstitutionRoute) error {
	if len(routes) == 0 {
		return nil
	}
	return trainDAO.db.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(routes, seedBatchSize).Error
}

// GetTrainRoutes returns the stored routes, only in the direction they were stored
func (trainDAO *TrainDAO) GetTrainRoutes() ([]model.TrainRoute, error) {
	var routes []model.TrainRoute
	result := trainDAO.db.Order("origin, destination").Find(&routes)
	return routes, result.Error
}

func (trainDAO *TrainDAO) GetStations() ([]model.TrainStation, error) {
	var stations []model.TrainStation
	result := trainDAO.db.Order("airport_code").Find(&stations)
	return stations, result.Error
}

func (trainDAO *TrainDAO) GetSubstitutionRoutes() ([]model.SubstitutionRoute, error) {
	var routes []model.SubstitutionRoute
	result := trainDAO.db.Order("origin, destination").Find(&routes)
	return routes, result.Error
}
