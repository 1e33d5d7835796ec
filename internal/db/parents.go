package db

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ridequest/rideon-api/internal/models"
)

// CreateParent hashes the plaintext password before persisting. The
// returned record has the hash cleared.
func CreateParent(ctx context.Context, p models.Parent, password string) (*models.Parent, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	p.Password = string(hash)
	if err := DB.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	p.Password = ""
	return &p, nil
}

func GetParentByID(ctx context.Context, id uint) (*models.Parent, error) {
	var parent models.Parent
	if err := DB.WithContext(ctx).First(&parent, id).Error; err != nil {
		return nil, err
	}
	return &parent, nil
}

// AuthenticateParent returns ErrInvalidCredentials for an unknown
// email and for a wrong password alike.
func AuthenticateParent(ctx context.Context, email, password string) (*models.Parent, error) {
	var parent models.Parent
	if err := DB.WithContext(ctx).Where("email = ?", email).First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(parent.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &parent, nil
}

// UpdateParentInfo writes the merged record. The password is re-hashed
// on every call, so callers supply the current plaintext when it is
// unchanged.
func UpdateParentInfo(ctx context.Context, id uint, p models.Parent, password string) (*models.Parent, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	tx := DB.WithContext(ctx).Model(&models.Parent{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":      p.Email,
		"password":   string(hash),
		"first_name": p.FirstName,
		"last_name":  p.LastName,
		"phone":      p.Phone,
		"address":    p.Address,
		"waiver":     p.Waiver,
	})
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return GetParentByID(ctx, id)
}

func DeleteParent(ctx context.Context, id uint) error {
	return DB.WithContext(ctx).Delete(&models.Parent{}, id).Error
}
