package model

type Station struct {
	StationID  int     `gorm:"column:id_station;primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"column:name;type:text;not null" json:"name"`
	Latitude   float64 `gorm:"column:latitude;not null" json:"latitude"`
	Longitude  float64 `gorm:"column:longitude;not null" json:"longitude"`
	Departures []Route  `gorm:"foreignKey:SourceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Arrivals   []Route  `gorm:"foreignKey:DestinationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Station) TableName() string {
	return "station"
}

func (station Station) String() string {
	return station.Name
}
