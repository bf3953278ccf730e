package db

import (
	"gorm.io/gorm"
	"railway-booking-server/model"
)

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (userDAO *UserDAO) GetUserById(id int) (model.User, error) {
	var user model.User
	result := userDAO.db.First(&user, id)
	return user, result.Error
}

func (userDAO *UserDAO) GetUserByFirebaseUID(firebaseUID string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where("firebase_uid = ?", firebaseUID).First(&user)
	return user, result.Error
}

// GetOrCreateUserByFirebaseUID provisions the user on its first authenticated request
func (userDAO *UserDAO) GetOrCreateUserByFirebaseUID(firebaseUID, email string) (model.User, error) {
	var user model.User
	result := userDAO.db.Where(model.User{FirebaseUID: firebaseUID}).
		Attrs(model.User{Email: email}).
		FirstOrCreate(&user)

	// two first requests of the same user can race on the unique uid
	if isUniqueViolation(result.Error) {
		return userDAO.GetUserByFirebaseUID(firebaseUID)
	}

	return user, result.Error
}

func (userDAO *UserDAO) UpdateUser(user model.User) error {
	result := userDAO.db.Save(&user)
	return result.Error
}

// DeleteUser removes the user together with its orders and tickets
func (userDAO *UserDAO) DeleteUser(id int) error {
	result := userDAO.db.Delete(&model.User{}, id)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
