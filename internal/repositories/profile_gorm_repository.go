package repositories

import (
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"

	"gorm.io/gorm"
)

// GORMProfileRepository is a GORM implementation of ProfileRepository.
type GORMProfileRepository struct {
	db *gorm.DB
}

// NewGORMProfileRepository creates a new instance of GORMProfileRepository.
func NewGORMProfileRepository(db *gorm.DB) *GORMProfileRepository {
	return &GORMProfileRepository{db: db}
}

// Create inserts a profile. Email and user ID are both unique.
func (r *GORMProfileRepository) Create(profile *models.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		if isDuplicate(err) {
			return errs.AlreadyExists("Profile with email %s or for user %d already exists.", profile.Email, profile.UserID)
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetAll retrieves every profile in creation order.
func (r *GORMProfileRepository) GetAll() ([]models.Profile, error) {
	var profiles []models.Profile
	if err := r.db.Order("id").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get all profiles: %w", err)
	}
	return profiles, nil
}

// GetByEmail retrieves a profile by email.
func (r *GORMProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "email = ?", email).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("Profile with email %s does not exist.", email)
		}
		return nil, fmt.Errorf("failed to get profile by email %s: %w", email, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the profile of a user.
func (r *GORMProfileRepository) GetByUserID(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("Profile for user %d does not exist.", userID)
		}
		return nil, fmt.Errorf("failed to get profile by user %d: %w", userID, err)
	}
	return &profile, nil
}

// Update stores the editable fields of an existing profile.
func (r *GORMProfileRepository) Update(profile *models.Profile) error {
	res := r.db.Model(&models.Profile{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"email":     profile.Email,
		"name":      profile.Name,
		"last_name": profile.LastName,
	})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return errs.AlreadyExists("Profile with email %s already exists.", profile.Email)
		}
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("Profile for user %d does not exist.", profile.UserID)
	}
	return nil
}

// Delete removes a profile by email.
func (r *GORMProfileRepository) Delete(email string) error {
	res := r.db.Where("email = ?", email).Delete(&models.Profile{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("Profile with email %s does not exist.", email)
	}
	return nil
}
