package db

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/models"
)

func CreateVolunteer(ctx context.Context, v models.Volunteer, password string) (*models.Volunteer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	v.Password = string(hash)
	if err := DB.WithContext(ctx).Create(&v).Error; err != nil {
		return nil, err
	}
	v.Password = ""
	return &v, nil
}

func GetVolunteerByID(ctx context.Context, id uint) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := DB.WithContext(ctx).First(&volunteer, id).Error; err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func AuthenticateVolunteer(ctx context.Context, email, password string) (*models.Volunteer, error) {
	var volunteer models.Volunteer
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&volunteer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(volunteer.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &volunteer, nil
}

// IsFacilitator reads the stored flag for the role router.
func IsFacilitator(ctx context.Context, id uint) (bool, error) {
	var volunteer models.Volunteer
	if err := DB.WithContext(ctx).Select("id", "facilitator").First(&volunteer, id).Error; err != nil {
		return false, err
	}
	return volunteer.Facilitator, nil
}

func DeleteVolunteer(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Volunteer{}, id).Error
}
