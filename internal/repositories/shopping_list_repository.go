package repositories

import "grocery/internal/models"

// ShoppingListRepository defines the interface for shopping list data access.
// Lists are returned with their items in insertion order.
type ShoppingListRepository interface {
	// GetAll returns the lists visible to viewer; a nil viewer sees all.
	GetAll(viewer *models.Viewer) ([]models.ShoppingList, error)
	GetByName(name string) (*models.ShoppingList, error)
	// Create stores the list, its items and their order in one transaction.
	Create(list *models.ShoppingList) error
	// Update stores the name, privacy and owner of an existing list.
	Update(list *models.ShoppingList) error
	Delete(name string) error
	// AddItem resolves item against the catalog by name, reusing an existing
	// entry unchanged, and appends it to the list.
	AddItem(listName string, item *models.Item) error
	// RemoveItem detaches an item from the list. When dropEmpty is set and
	// the list ends up empty it is deleted too, which is reported by dropped.
	RemoveItem(listName, itemName string, dropEmpty bool) (dropped bool, err error)
}
