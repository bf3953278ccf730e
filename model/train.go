package model

import (
	"fmt"
	"railway-booking-server/internals"
)

// Train defines the capacity of every journey it runs:
// cargo in [1, CargoNum] and seat in [1, PlaceInCargo].
type Train struct {
	TrainID      int        `gorm:"column:id_train;primaryKey;autoIncrement" json:"id"`
	Name         string     `gorm:"column:name;type:text;not null" json:"name"`
	CargoNum     int        `gorm:"column:cargo_num;type:integer;not null" json:"cargo_num"`
	PlaceInCargo int        `gorm:"column:place_in_cargo;type:integer;not null" json:"place_in_cargo"`
	TrainTypeID  int        `gorm:"column:id_train_type;type:integer;not null" json:"train_type_id"`
	TrainType    *TrainType `gorm:"-" json:"train_type,omitempty"`
	Journeys     []Journey  `gorm:"foreignKey:TrainID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Train) TableName() string {
	return "train"
}

func (train Train) Capacity() int {
	return internals.ComputeCapacity(train.CargoNum, train.PlaceInCargo)
}

func (train Train) String() string {
	trainType := ""
	if train.TrainType != nil {
		trainType = train.TrainType.Name
	}
	return fmt.Sprintf("%s: cargo: %d, place: %d, train_type: %s", train.Name, train.CargoNum, train.PlaceInCargo, trainType)
}

type TrainRequest struct {
	Name         string `json:"name"`
	CargoNum     int    `json:"cargo_num"`
	PlaceInCargo int    `json:"place_in_cargo"`
	TrainType    int    `json:"train_type"`
}
