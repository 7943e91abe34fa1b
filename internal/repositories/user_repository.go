package repositories

import "grocery/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetAll() ([]models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByID(id uint) (*models.User, error)
	// Delete removes the user and, when cascadeProfile is set, its profile.
	Delete(username string, cascadeProfile bool) error
}
