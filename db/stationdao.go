package db

import (
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

type StationDAO struct {
	db *gorm.DB
}

func NewStationDAO(db *gorm.DB) *StationDAO {
	return &StationDAO{db: db}
}

func (stationDAO *StationDAO) CreateStation(station model.Station) (model.Station, error) {
	err := internals.ValidateStation(station.Name, station.Latitude, station.Longitude)
	if err != nil {
		return model.Station{}, err
	}

	result := stationDAO.db.Create(&station)
	return station, result.Error
}

func (stationDAO *StationDAO) GetStations() ([]model.Station, error) {
	var stations []model.Station
	result := stationDAO.db.Order("name").Find(&stations)
	return stations, result.Error
}

func (stationDAO *StationDAO) GetStationById(stationID int) (model.Station, error) {
	var station model.Station
	result := stationDAO.db.First(&station, stationID)
	return station, result.Error
}
