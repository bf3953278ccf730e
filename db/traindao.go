package db

import (
	"errors"
	"gorm.io/gorm"
	"railway-booking-server/internals"
	"railway-booking-server/model"
)

type TrainDAO struct {
	db *gorm.DB
}

func NewTrainDAO(db *gorm.DB) *TrainDAO {
	return &TrainDAO{db: db}
}

func (trainDAO *TrainDAO) CreateTrainType(trainType model.TrainType) (model.TrainType, error) {
	err := internals.ValidateName("name", trainType.Name)
	if err != nil {
		return model.TrainType{}, err
	}

	result := trainDAO.db.Create(&trainType)
	if isUniqueViolation(result.Error) {
		return model.TrainType{}, &internals.FieldError{Field: "name", Message: "a train type with this name already exists"}
	}
	return trainType, result.Error
}

func (trainDAO *TrainDAO) GetTrainTypes() ([]model.TrainType, error) {
	var trainTypes []model.TrainType
	result := trainDAO.db.Order("name").Find(&trainTypes)
	return trainTypes, result.Error
}

func (trainDAO *TrainDAO) CreateTrain(request model.TrainRequest) (model.Train, error) {
	err := internals.ValidateTrain(request.Name, request.CargoNum, request.PlaceInCargo)
	if err != nil {
		return model.Train{}, err
	}

	// the train type must exist
	var trainType model.TrainType
	err = trainDAO.db.First(&trainType, request.TrainType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Train{}, &internals.FieldError{Field: "train_type", Message: "train type does not exist"}
	}
	if err != nil {
		return model.Train{}, err
	}

	train := model.Train{
		Name:         request.Name,
		CargoNum:     request.CargoNum,
		PlaceInCargo: request.PlaceInCargo,
		TrainTypeID:  trainType.TrainTypeID,
	}
	result := trainDAO.db.Create(&train)
	if result.Error != nil {
		return model.Train{}, result.Error
	}

	train.TrainType = &trainType
	return train, nil
}

func (trainDAO *TrainDAO) GetTrains() ([]model.Train, error) {
	var trains []model.Train
	result := trainDAO.db.Order("id_train").Find(&trains)
	if result.Error != nil {
		return nil, result.Error
	}

	err := trainDAO.injectTrainTypes(trains)
	if err != nil {
		return nil, err
	}
	return trains, nil
}

func (trainDAO *TrainDAO) GetTrainById(trainID int) (model.Train, error) {
	var train model.Train
	result := trainDAO.db.First(&train, trainID)
	if result.Error != nil {
		return model.Train{}, result.Error
	}

	trains := []model.Train{train}
	err := trainDAO.injectTrainTypes(trains)
	if err != nil {
		return model.Train{}, err
	}
	return trains[0], nil
}

// getTrainsByIds returns the trains with their train type, keyed by id
func (trainDAO *TrainDAO) getTrainsByIds(trainIDs []int) (map[int]model.Train, error) {
	var trains []model.Train
	if len(trainIDs) > 0 {
		result := trainDAO.db.Where("id_train IN ?", trainIDs).Find(&trains)
		if result.Error != nil {
			return nil, result.Error
		}
	}

	err := trainDAO.injectTrainTypes(trains)
	if err != nil {
		return nil, err
	}

	byId := make(map[int]model.Train, len(trains))
	for _, train := range trains {
		byId[train.TrainID] = train
	}
	return byId, nil
}

// injectTrainTypes loads the train type of the trains with a single query
func (trainDAO *TrainDAO) injectTrainTypes(trains []model.Train) error {
	if len(trains) == 0 {
		return nil
	}

	trainTypeIDs := make([]int, 0, len(trains))
	for _, train := range trains {
		trainTypeIDs = append(trainTypeIDs, train.TrainTypeID)
	}

	var trainTypes []model.TrainType
	err := trainDAO.db.Where("id_train_type IN ?", trainTypeIDs).Find(&trainTypes).Error
	if err != nil {
		return err
	}

	byId := make(map[int]model.TrainType, len(trainTypes))
	for _, trainType := range trainTypes {
		byId[trainType.TrainTypeID] = trainType
	}
	for i := range trains {
		if trainType, found := byId[trains[i].TrainTypeID]; found {
			trains[i].TrainType = &trainType
		}
	}
	return nil
}

// DeleteTrain removes the train, its journeys and their tickets
func (trainDAO *TrainDAO) DeleteTrain(trainID int) error {
	result := trainDAO.db.Delete(&model.Train{}, trainID)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
