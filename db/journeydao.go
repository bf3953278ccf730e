package db

import (
	"errors"
	"fmt"
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

type JourneyDAO struct {
	db *gorm.DB
}

func NewJourneyDAO(db *gorm.DB) *JourneyDAO {
	return &JourneyDAO{db: db}
}

func (journeyDAO *JourneyDAO) CreateJourney(request model.JourneyRequest) (model.Journey, error) {
	err := internals.ValidateJourney(request.DepartureTime, request.ArrivalTime)
	if err != nil {
		return model.Journey{}, err
	}

	// route and train must exist
	_, err = NewRouteDAO(journeyDAO.db).GetRouteById(request.Route)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Journey{}, &internals.FieldError{Field: "route", Message: "route does not exist"}
	}
	if err != nil {
		return model.Journey{}, err
	}
	_, err = NewTrainDAO(journeyDAO.db).GetTrainById(request.Train)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Journey{}, &internals.FieldError{Field: "train", Message: "train does not exist"}
	}
	if err != nil {
		return model.Journey{}, err
	}

	// every crew member must exist
	crew, err := NewCrewDAO(journeyDAO.db).GetCrewByIds(request.Crew)
	if err != nil {
		return model.Journey{}, err
	}
	if len(crew) != len(uniqueIds(request.Crew)) {
		return model.Journey{}, &internals.FieldError{Field: "crew", Message: "crew member does not exist"}
	}

	journey := model.Journey{
		RouteID:       request.Route,
		TrainID:       request.Train,
		DepartureTime: request.DepartureTime,
		ArrivalTime:   request.ArrivalTime,
		Crew:          crew,
	}
	// journey and journey_crew rows together
	result := journeyDAO.db.Create(&journey)
	if result.Error != nil {
		return model.Journey{}, result.Error
	}

	return journeyDAO.GetJourneyDetails(journey.JourneyID)
}

func (journeyDAO *JourneyDAO) GetJourneys() ([]model.Journey, error) {
	var journeys []model.Journey
	result := journeyDAO.db.Preload("Crew").Order("departure_time, id_journey").Find(&journeys)
	if result.Error != nil {
		return nil, result.Error
	}

	err := journeyDAO.injectRelations(journeys)
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

// GetJourneysByIds is GetJourneys restricted to the given ids, missing ids are skipped
func (journeyDAO *JourneyDAO) GetJourneysByIds(journeyIDs []int) ([]model.Journey, error) {
	if len(journeyIDs) == 0 {
		return []model.Journey{}, nil
	}

	var journeys []model.Journey
	result := journeyDAO.db.Preload("Crew").
		Where("id_journey IN ?", journeyIDs).
		Order("departure_time, id_journey").
		Find(&journeys)
	if result.Error != nil {
		return nil, result.Error
	}

	err := journeyDAO.injectRelations(journeys)
	if err != nil {
		return nil, err
	}
	return journeys, nil
}

func (journeyDAO *JourneyDAO) GetJourneyDetails(journeyID int) (model.Journey, error) {
	var journey model.Journey
	result := journeyDAO.db.Preload("Crew").First(&journey, journeyID)
	if result.Error != nil {
		return model.Journey{}, result.Error
	}

	journeys := []model.Journey{journey}
	err := journeyDAO.injectRelations(journeys)
	if err != nil {
		return model.Journey{}, err
	}
	return journeys[0], nil
}

// injectRelations loads route (with stations) and train (with train type) of the journeys,
// each looked up by the id stored on the journey
func (journeyDAO *JourneyDAO) injectRelations(journeys []model.Journey) error {
	if len(journeys) == 0 {
		return nil
	}

	routeIDs := make([]int, 0, len(journeys))
	trainIDs := make([]int, 0, len(journeys))
	for _, journey := range journeys {
		routeIDs = append(routeIDs, journey.RouteID)
		trainIDs = append(trainIDs, journey.TrainID)
	}

	routes, err := NewRouteDAO(journeyDAO.db).getRoutesByIds(routeIDs)
	if err != nil {
		return err
	}
	trains, err := NewTrainDAO(journeyDAO.db).getTrainsByIds(trainIDs)
	if err != nil {
		return err
	}

	for i := range journeys {
		if route, found := routes[journeys[i].RouteID]; found {
			journeys[i].Route = &route
		}
		if train, found := trains[journeys[i].TrainID]; found {
			journeys[i].Train = &train
		}
	}
	return nil
}

// GetJourneyTrain returns the journey with the train that defines its capacity,
// ErrJourneyNotFound when the journey does not exist
func (journeyDAO *JourneyDAO) GetJourneyTrain(journeyID int) (model.Journey, error) {
	var journey model.Journey
	err := journeyDAO.db.First(&journey, journeyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Journey{}, fmt.Errorf("%w: %d", internals.ErrJourneyNotFound, journeyID)
	}
	if err != nil {
		return model.Journey{}, err
	}

	var train model.Train
	err = journeyDAO.db.First(&train, journey.TrainID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// the train was deleted after the journey was read, the cascade removes the journey too
		return model.Journey{}, fmt.Errorf("%w: %d", internals.ErrJourneyNotFound, journeyID)
	}
	if err != nil {
		return model.Journey{}, err
	}
	journey.Train = &train
	return journey, nil
}

// DeleteJourney removes the journey, its crew assignments and its tickets
func (journeyDAO *JourneyDAO) DeleteJourney(journeyID int) error {
	result := journeyDAO.db.Delete(&model.Journey{}, journeyID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func uniqueIds(ids []int) map[int]bool {
	unique := make(map[int]bool, len(ids))
	for _, id := range ids {
		unique[id] = true
	}
	return unique
}
