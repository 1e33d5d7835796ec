package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/models"
)

func CreateStudent(ctx context.Context, s models.Student) (*models.Student, error) {
	if err := DB.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func GetStudentByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := DB.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

func GetStudentsByParentID(ctx context.Context, parentID uint) ([]models.Student, error) {
	var students []models.Student
	if err := DB.WithContext(ctx).Where("parent_id = ?", parentID).Find(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

// UpdateStudent writes the merged record; the handler has already
// applied the partial body over the stored values.
func UpdateStudent(ctx context.Context, id uint, s models.Student) (*models.Student, error) {
	tx := DB.WithContext(ctx).Model(&models.Student{}).Where("id = ?", id).Updates(map[string]interface{}{
		"first_name":  s.FirstName,
		"last_name":   s.LastName,
		"birthdate":   s.Birthdate,
		"bike_size":   s.BikeSize,
		"shirt_size":  s.ShirtSize,
		"earned_bike": s.EarnedBike,
		"status":      s.Status,
		"parent_id":   s.ParentID,
		"school_id":   s.SchoolID,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetStudentByID(ctx, id)
}
