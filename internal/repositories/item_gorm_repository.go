package repositories

import (
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"

	"gorm.io/gorm"
)

// GORMItemRepository is a GORM implementation of ItemRepository.
type GORMItemRepository struct {
	db *gorm.DB
}

// NewGORMItemRepository creates a new instance of GORMItemRepository.
func NewGORMItemRepository(db *gorm.DB) *GORMItemRepository {
	return &GORMItemRepository{db: db}
}

// GetAll retrieves every catalog item in creation order.
func (r *GORMItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get all items: %w", err)
	}
	return items, nil
}

// GetByName retrieves a single item by its unique name.
func (r *GORMItemRepository) GetByName(name string) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, "name = ?", name).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("Item with name %s does not exist.", name)
		}
		return nil, fmt.Errorf("failed to get item %s: %w", name, err)
	}
	return &item, nil
}

// Create inserts a new item. The unique index on name is authoritative.
func (r *GORMItemRepository) Create(item *models.Item) error {
	if err := r.db.Create(item).Error; err != nil {
		if isDuplicate(err) {
			return errs.AlreadyExists("Item with name %s already exists.", item.Name)
		}
		return fmt.Errorf("failed to create item: %w", err)
	}
	return nil
}

// Delete removes an item and detaches it from every shopping list.
func (r *GORMItemRepository) Delete(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, "name = ?", name).Error; err != nil {
			if isNotFound(err) {
				return errs.NotFound("Item with name %s does not exist.", name)
			}
			return fmt.Errorf("failed to get item %s: %w", name, err)
		}
		if err := tx.Where("item_id = ?", item.ID).Delete(&ShoppingListItem{}).Error; err != nil {
			return fmt.Errorf("failed to detach item %s: %w", name, err)
		}
		if err := tx.Delete(&item).Error; err != nil {
			return fmt.Errorf("failed to delete item %s: %w", name, err)
		}
		return nil
	})
}
