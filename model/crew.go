package model

type Crew struct {
	CrewID    int    `gorm:"column:id_crew;primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"column:first_name;type:text;not null" json:"first_name"`
	LastName  string `gorm:"column:last_name;type:text;not null" json:"last_name"`
}

func (Crew) TableName() string {
	return "crew"
}

func (crew Crew) String() string {
	return crew.FirstName + " " + crew.LastName
}
