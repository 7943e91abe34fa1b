package repositories

import "grocery/internal/models"

// ProfileRepository defines the interface for profile data access.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetAll() ([]models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetByUserID(userID uint) (*models.Profile, error)
	Update(profile *models.Profile) error
	Delete(email string) error
}
