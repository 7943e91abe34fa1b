package services

import (
	"errors"
	"fmt"
	"strings"

	"grocery/internal/errs"
	"grocery/internal/metrics"
	"grocery/internal/models"
	"grocery/internal/repositories"

	"go.uber.org/zap"
)

// ShoppingListService handles business logic related to shopping lists.
type ShoppingListService struct {
	repo      repositories.ShoppingListRepository
	publisher EventPublisher
	log       *zap.Logger
}

// NewShoppingListService creates a new ShoppingListService. publisher may be
// nil, in which case no events are emitted.
func NewShoppingListService(repo repositories.ShoppingListRepository, publisher EventPublisher, log *zap.Logger) *ShoppingListService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ShoppingListService{
		repo:      repo,
		publisher: publisher,
		log:       log,
	}
}

// GetAllShoppingLists returns the lists visible to viewer. A nil viewer sees
// every list.
func (s *ShoppingListService) GetAllShoppingLists(viewer *models.Viewer) ([]models.ShoppingList, error) {
	return s.repo.GetAll(viewer)
}

// GetShoppingList returns a single list. Lists hidden from viewer are
// reported as missing.
func (s *ShoppingListService) GetShoppingList(name string, viewer *models.Viewer) (*models.ShoppingList, error) {
	return s.lookup(name, viewer)
}

// AddShoppingList validates and stores a new list with its items.
func (s *ShoppingListService) AddShoppingList(in models.ShoppingListInput) (*models.ShoppingList, error) {
	name := strings.TrimSpace(in.Name)
	if err := s.ensureAbsent(name); err != nil {
		return nil, err
	}
	list, err := models.NewShoppingList(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(list); err != nil {
		return nil, err
	}
	s.emit(EventListCreated, ListEvent{List: list.Name, Privacy: string(list.Privacy), Owner: list.Owner})
	return list, nil
}

// RemoveShoppingList deletes a list. Its items stay in the catalog.
//
// Every mutation takes the requesting viewer: a list the viewer cannot see is
// reported as missing. A nil viewer is a trusted caller.
func (s *ShoppingListService) RemoveShoppingList(name string, viewer *models.Viewer) error {
	if _, err := s.lookup(name, viewer); err != nil {
		return err
	}
	if err := s.repo.Delete(name); err != nil {
		return err
	}
	s.emit(EventListDeleted, ListEvent{List: name})
	return nil
}

// AddItemToShoppingList validates an item and appends it to a list.
func (s *ShoppingListService) AddItemToShoppingList(listName string, in models.ItemInput, viewer *models.Viewer) (*models.Item, error) {
	list, err := s.lookup(listName, viewer)
	if err != nil {
		return nil, err
	}
	if list.FindItem(in.Name) != nil {
		return nil, errs.AlreadyExists("Item with name %s already exists in the shopping list %s.", in.Name, listName)
	}
	item, err := models.NewItem(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.AddItem(listName, item); err != nil {
		return nil, err
	}
	s.emit(EventItemAdded, ListEvent{List: listName, Item: item.Name})
	return item, nil
}

// RemoveItemFromShoppingList detaches an item from a list and deletes the
// list once its last item is gone.
func (s *ShoppingListService) RemoveItemFromShoppingList(listName, itemName string, viewer *models.Viewer) error {
	list, err := s.lookup(listName, viewer)
	if err != nil {
		return err
	}
	if list.FindItem(itemName) == nil {
		return errs.NotFound("Item with name %s does not exist in the shopping list %s.", itemName, listName)
	}
	dropped, err := s.repo.RemoveItem(listName, itemName, true)
	if err != nil {
		return err
	}
	s.emit(EventItemRemoved, ListEvent{List: listName, Item: itemName})
	if dropped {
		s.log.Info("deleted emptied shopping list", zap.String("list", listName))
		s.emit(EventListDeleted, ListEvent{List: listName})
	}
	return nil
}

// SetShoppingListPrivacy changes who can see a list.
func (s *ShoppingListService) SetShoppingListPrivacy(name string, privacy models.Privacy, viewer *models.Viewer) (*models.ShoppingList, error) {
	return s.update(name, viewer, func(l *models.ShoppingList) error { return l.SetPrivacy(privacy) })
}

// SetShoppingListOwner hands a list over to another owner.
func (s *ShoppingListService) SetShoppingListOwner(name, owner string, viewer *models.Viewer) (*models.ShoppingList, error) {
	return s.update(name, viewer, func(l *models.ShoppingList) error { return l.SetOwner(owner) })
}

func (s *ShoppingListService) update(name string, viewer *models.Viewer, mutate func(*models.ShoppingList) error) (*models.ShoppingList, error) {
	list, err := s.lookup(name, viewer)
	if err != nil {
		return nil, err
	}
	if err := mutate(list); err != nil {
		return nil, err
	}
	if err := s.repo.Update(list); err != nil {
		return nil, err
	}
	s.emit(EventListUpdated, ListEvent{List: list.Name, Privacy: string(list.Privacy), Owner: list.Owner})
	return list, nil
}

func (s *ShoppingListService) lookup(name string, viewer *models.Viewer) (*models.ShoppingList, error) {
	list, err := s.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if viewer != nil && !viewer.CanSee(list) {
		return nil, errs.NotFound("Shopping list with name %s does not exist.", name)
	}
	return list, nil
}

// ensureAbsent is the fast path of the name uniqueness check; the unique
// index still decides when two creators race.
func (s *ShoppingListService) ensureAbsent(name string) error {
	_, err := s.repo.GetByName(name)
	switch {
	case err == nil:
		return errs.AlreadyExists("Shopping list with name %s already exists.", name)
	case errors.Is(err, errs.ErrNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check shopping list %s: %w", name, err)
	}
}

func (s *ShoppingListService) emit(eventType string, ev ListEvent) {
	metrics.ShoppingListOps.WithLabelValues(strings.TrimPrefix(eventType, "shopping_list.")).Inc()
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishEvent(eventType, ev); err != nil {
		s.log.Warn("failed to publish shopping list event",
			zap.String("event", eventType),
			zap.String("list", ev.List),
			zap.Error(err),
		)
	}
}
