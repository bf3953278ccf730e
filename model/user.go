package model

// User is the owner of orders, identified by the uid of the identity provider.
// Administrators have IsStaff set.
type User struct {
	UserID      int     `gorm:"column:id_user;primaryKey;autoIncrement" json:"user_id"`
	FirebaseUID string  `gorm:"column:firebase_uid;type:text;not null;uniqueIndex:idx_user_firebase_uid" json:"firebase_uid"`
	Email       string  `gorm:"column:email;type:text" json:"email"`
	IsStaff     bool    `gorm:"column:is_staff;not null;default:false" json:"is_staff"`
	Orders      []Order `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "user"
}
