package repositories

import "grocery/internal/models"

// ItemRepository defines the interface for catalog item data access.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByName(name string) (*models.Item, error)
	Create(item *models.Item) error
	Delete(name string) error
}
