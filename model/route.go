package model

import "fmt"

type Route struct {
	RouteID       int       `gorm:"column:id_route;primaryKey;autoIncrement" json:"id"`
	SourceID      int       `gorm:"column:id_source;type:integer;not null;index:idx_route_source_destination,priority:1" json:"source"`
	DestinationID int       `gorm:"column:id_destination;type:integer;not null;index:idx_route_source_destination,priority:2" json:"destination"`
	Distance      int       `gorm:"column:distance;type:integer;not null" json:"distance"`
	Source        *Station  `gorm:"-" json:"-"`
	Destination   *Station  `gorm:"-" json:"-"`
	Journeys      []Journey `gorm:"foreignKey:RouteID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Route) TableName() string {
	return "route"
}

// String needs Source and Destination to be loaded
func (route Route) String() string {
	source, destination := "?", "?"
	if route.Source != nil {
		source = route.Source.Name
	}
	if route.Destination != nil {
		destination = route.Destination.Name
	}
	return fmt.Sprintf("%s - %s: %dkm.", source, destination, route.Distance)
}

// RouteRequest is the body accepted when creating a route
type RouteRequest struct {
	Source      int `json:"source"`
	Destination int `json:"destination"`
	Distance    int `json:"distance"`
}
