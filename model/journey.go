package model

import (
	"fmt"
	"time"
)

type Journey struct {
	JourneyID     int       `gorm:"column:id_journey;primaryKey;autoIncrement" json:"id"`
	RouteID       int       `gorm:"column:id_route;type:integer;not null" json:"route"`
	TrainID       int       `gorm:"column:id_train;type:integer;not null" json:"train"`
	DepartureTime time.Time `gorm:"column:departure_time;not null;index:idx_journey_times,priority:1" json:"departure_time"`
	ArrivalTime   time.Time `gorm:"column:arrival_time;not null;index:idx_journey_times,priority:2" json:"arrival_time"`
	Route         *Route    `gorm:"-" json:"-"`
	Train         *Train    `gorm:"-" json:"-"`
	Tickets       []Ticket  `gorm:"foreignKey:JourneyID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Crew          []Crew    `gorm:"many2many:journey_crew;joinForeignKey:JourneyID;joinReferences:CrewID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Journey) TableName() string {
	return "journey"
}

func (journey Journey) String() string {
	route, train := "", ""
	if journey.Route != nil {
		route = journey.Route.String()
	}
	if journey.Train != nil {
		train = journey.Train.String()
	}
	return fmt.Sprintf("%s - %s: %s - %s", route, train,
		journey.DepartureTime.Format(time.RFC3339), journey.ArrivalTime.Format(time.RFC3339))
}

// JourneyRequest is the write model of a journey
type JourneyRequest struct {
	Route         int       `json:"route"`
	Train         int       `json:"train"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Crew          []int     `json:"crew"`
}
