package repositories

import (
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"

	"gorm.io/gorm"
)

// GORMShoppingListRepository is a GORM implementation of ShoppingListRepository.
type GORMShoppingListRepository struct {
	db *gorm.DB
}

// NewGORMShoppingListRepository creates a new instance of GORMShoppingListRepository.
func NewGORMShoppingListRepository(db *gorm.DB) *GORMShoppingListRepository {
	return &GORMShoppingListRepository{db: db}
}

// VisibilityScope restricts a shopping list query to the lists v may see.
// It mirrors models.Viewer.CanSee.
func VisibilityScope(v *models.Viewer) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if v == nil {
			return db
		}
		public := string(models.PrivacyPublic)
		private := string(models.PrivacyPrivate)
		switch v.Role {
		case models.RoleAdmin:
			return db
		case models.RoleAdult:
			return db.Where("privacy IN ? OR (privacy = ? AND owner = ?)",
				[]string{public, string(models.PrivacyAdultOnly)}, private, v.Username)
		case models.RoleChild:
			return db.Where("privacy = ? OR (privacy = ? AND owner = ?)", public, private, v.Username)
		default:
			return db.Where("privacy = ?", public)
		}
	}
}

// GetAll retrieves the visible shopping lists in creation order.
func (r *GORMShoppingListRepository) GetAll(viewer *models.Viewer) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	if err := r.db.Scopes(VisibilityScope(viewer)).Order("id").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to get all shopping lists: %w", err)
	}
	for i := range lists {
		items, err := loadItems(r.db, lists[i].ID)
		if err != nil {
			return nil, err
		}
		lists[i].Items = items
	}
	return lists, nil
}

// GetByName retrieves a shopping list and its items.
func (r *GORMShoppingListRepository) GetByName(name string) (*models.ShoppingList, error) {
	list, err := findList(r.db, name)
	if err != nil {
		return nil, err
	}
	if list.Items, err = loadItems(r.db, list.ID); err != nil {
		return nil, err
	}
	return list, nil
}

// Create inserts the list and attaches its items in order.
func (r *GORMShoppingListRepository) Create(list *models.ShoppingList) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(list).Error; err != nil {
			if isDuplicate(err) {
				return errs.AlreadyExists("Shopping list with name %s already exists.", list.Name)
			}
			return fmt.Errorf("failed to create shopping list: %w", err)
		}
		for i := range list.Items {
			if err := linkCatalogItem(tx, &list.Items[i]); err != nil {
				return err
			}
			link := ShoppingListItem{ShoppingListID: list.ID, ItemID: list.Items[i].ID, Position: i}
			if err := tx.Create(&link).Error; err != nil {
				return fmt.Errorf("failed to attach item %s: %w", list.Items[i].Name, err)
			}
		}
		return nil
	})
}

// Update stores the mutable fields of a list.
func (r *GORMShoppingListRepository) Update(list *models.ShoppingList) error {
	res := r.db.Model(&models.ShoppingList{}).Where("id = ?", list.ID).Updates(map[string]interface{}{
		"name":    list.Name,
		"privacy": string(list.Privacy),
		"owner":   list.Owner,
	})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return errs.AlreadyExists("Shopping list with name %s already exists.", list.Name)
		}
		return fmt.Errorf("failed to update shopping list: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.NotFound("Shopping list with name %s does not exist.", list.Name)
	}
	return nil
}

// Delete removes a list and its item links. Catalog items are kept.
func (r *GORMShoppingListRepository) Delete(name string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		list, err := findList(tx, name)
		if err != nil {
			return err
		}
		return deleteList(tx, list)
	})
}

// AddItem links item to the catalog and appends it to the list.
func (r *GORMShoppingListRepository) AddItem(listName string, item *models.Item) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		list, err := findList(tx, listName)
		if err != nil {
			return err
		}
		if err := linkCatalogItem(tx, item); err != nil {
			return err
		}

		var linked int64
		if err := tx.Model(&ShoppingListItem{}).
			Where("shopping_list_id = ? AND item_id = ?", list.ID, item.ID).
			Count(&linked).Error; err != nil {
			return fmt.Errorf("failed to check item %s: %w", item.Name, err)
		}
		if linked > 0 {
			return errs.AlreadyExists("Item with name %s already exists in the shopping list %s.", item.Name, listName)
		}

		var last int
		if err := tx.Model(&ShoppingListItem{}).
			Where("shopping_list_id = ?", list.ID).
			Select("COALESCE(MAX(position), -1)").
			Scan(&last).Error; err != nil {
			return fmt.Errorf("failed to order item %s: %w", item.Name, err)
		}
		link := ShoppingListItem{ShoppingListID: list.ID, ItemID: item.ID, Position: last + 1}
		if err := tx.Create(&link).Error; err != nil {
			if isDuplicate(err) {
				return errs.AlreadyExists("Item with name %s already exists in the shopping list %s.", item.Name, listName)
			}
			return fmt.Errorf("failed to attach item %s: %w", item.Name, err)
		}
		return nil
	})
}

// RemoveItem detaches an item and optionally deletes the emptied list.
func (r *GORMShoppingListRepository) RemoveItem(listName, itemName string, dropEmpty bool) (bool, error) {
	dropped := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		list, err := findList(tx, listName)
		if err != nil {
			return err
		}
		missing := errs.NotFound("Item with name %s does not exist in the shopping list %s.", itemName, listName)

		var item models.Item
		if err := tx.First(&item, "name = ?", itemName).Error; err != nil {
			if isNotFound(err) {
				return missing
			}
			return fmt.Errorf("failed to get item %s: %w", itemName, err)
		}
		res := tx.Where("shopping_list_id = ? AND item_id = ?", list.ID, item.ID).Delete(&ShoppingListItem{})
		if res.Error != nil {
			return fmt.Errorf("failed to detach item %s: %w", itemName, res.Error)
		}
		if res.RowsAffected == 0 {
			return missing
		}

		if !dropEmpty {
			return nil
		}
		var remaining int64
		if err := tx.Model(&ShoppingListItem{}).Where("shopping_list_id = ?", list.ID).Count(&remaining).Error; err != nil {
			return fmt.Errorf("failed to count items of %s: %w", listName, err)
		}
		if remaining > 0 {
			return nil
		}
		dropped = true
		return deleteList(tx, list)
	})
	if err != nil {
		return false, err
	}
	return dropped, nil
}

func findList(db *gorm.DB, name string) (*models.ShoppingList, error) {
	var list models.ShoppingList
	if err := db.First(&list, "name = ?", name).Error; err != nil {
		if isNotFound(err) {
			return nil, errs.NotFound("Shopping list with name %s does not exist.", name)
		}
		return nil, fmt.Errorf("failed to get shopping list %s: %w", name, err)
	}
	return &list, nil
}

func deleteList(tx *gorm.DB, list *models.ShoppingList) error {
	if err := tx.Where("shopping_list_id = ?", list.ID).Delete(&ShoppingListItem{}).Error; err != nil {
		return fmt.Errorf("failed to detach items of %s: %w", list.Name, err)
	}
	if err := tx.Delete(list).Error; err != nil {
		return fmt.Errorf("failed to delete shopping list %s: %w", list.Name, err)
	}
	return nil
}

func loadItems(db *gorm.DB, listID uint) ([]models.Item, error) {
	items := []models.Item{}
	err := db.Model(&models.Item{}).
		Joins("JOIN shopping_list_items ON shopping_list_items.item_id = items.id").
		Where("shopping_list_items.shopping_list_id = ?", listID).
		Order("shopping_list_items.position").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load items of list %d: %w", listID, err)
	}
	return items, nil
}

// linkCatalogItem resolves item against the catalog by name. A new name is
// created; an existing entry is reused unchanged and copied into item, so
// other lists holding it are unaffected.
func linkCatalogItem(tx *gorm.DB, item *models.Item) error {
	var existing models.Item
	err := tx.First(&existing, "name = ?", item.Name).Error
	if isNotFound(err) {
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create item %s: %w", item.Name, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get item %s: %w", item.Name, err)
	}
	*item = existing
	return nil
}
