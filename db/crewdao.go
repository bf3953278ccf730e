package db

import (
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

type CrewDAO struct {
	db *gorm.DB
}

func NewCrewDAO(db *gorm.DB) *CrewDAO {
	return &CrewDAO{db: db}
}

func (crewDAO *CrewDAO) CreateCrew(crew model.Crew) (model.Crew, error) {
	err := internals.ValidateName("first_name", crew.FirstName)
	if err != nil {
		return model.Crew{}, err
	}
	err = internals.ValidateName("last_name", crew.LastName)
	if err != nil {
		return model.Crew{}, err
	}

	result := crewDAO.db.Create(&crew)
	return crew, result.Error
}

func (crewDAO *CrewDAO) GetCrew() ([]model.Crew, error) {
	var crew []model.Crew
	result := crewDAO.db.Order("last_name, first_name").Find(&crew)
	return crew, result.Error
}

func (crewDAO *CrewDAO) GetCrewByIds(crewIDs []int) ([]model.Crew, error) {
	var crew []model.Crew
	if len(crewIDs) == 0 {
		return crew, nil
	}
	result := crewDAO.db.Where("id_crew IN ?", crewIDs).Find(&crew)
	return crew, result.Error
}
