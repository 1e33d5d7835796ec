package db

import (
	"context"

	"github.com/ridequest/rideon-api/internal/models"
)

func CreateSchool(ctx context.Context, s models.School) (*models.School, error) {
	if err := DB.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func GetSchoolByID(ctx context.Context, id uint) (*models.School, error) {
	var school models.School
	if err := DB.WithContext(ctx).First(&school, id).Error; err != nil {
		return nil, err
	}
	return &school, nil
}
