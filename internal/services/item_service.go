package services

import (
	"errors"
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/repositories"
)

// ItemService handles business logic related to the item catalog.
type ItemService struct {
	repo repositories.ItemRepository
}

// NewItemService creates a new ItemService.
func NewItemService(repo repositories.ItemRepository) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// GetAllItems retrieves all items.
func (s *ItemService) GetAllItems() ([]models.Item, error) {
	return s.repo.GetAll()
}

// GetItem retrieves a single item by name.
func (s *ItemService) GetItem(name string) (*models.Item, error) {
	return s.repo.GetByName(name)
}

// AddItem validates and stores a new catalog item.
func (s *ItemService) AddItem(in models.ItemInput) (*models.Item, error) {
	_, err := s.repo.GetByName(in.Name)
	if err == nil {
		return nil, errs.AlreadyExists("Item with name %s already exists.", in.Name)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to check item %s: %w", in.Name, err)
	}

	item, err := models.NewItem(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem deletes an item and detaches it from every list.
func (s *ItemService) RemoveItem(name string) error {
	return s.repo.Delete(name)
}
