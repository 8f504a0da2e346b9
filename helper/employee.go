package helper

import (
	"errors"
	"restaurant_manager/database"
	"restaurant_manager/model"

	"gorm.io/gorm"
)

// CheckEmployeeIdentityCard reports whether another employee already holds the
// given identity document. Pass id when editing to exclude the row itself.
func CheckEmployeeIdentityCard(identityCard string, id *uint) (bool, error) {
	db := database.DB
	var count int64

	query := db.Model(&model.Employee{}).Where("identity_card = ?", identityCard)
	if id != nil {
		query = query.Where("id != ?", *id)
	}
	if err := query.Count(&count).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}
