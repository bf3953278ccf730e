package model

type TrainType struct {
	TrainTypeID int     `gorm:"column:id_train_type;primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"column:name;type:text;not null;uniqueIndex:idx_train_type_name" json:"name"`
	Trains      []Train `gorm:"foreignKey:TrainTypeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (TrainType) TableName() string {
	return "train_type"
}
