package models

import (
	"strings"
	"time"

	"grocery/internal/errs"
)

// Privacy controls which roles may see a shopping list.
type Privacy string

const (
	PrivacyPublic    Privacy = "public"
	PrivacyAdultOnly Privacy = "adultOnly"
	PrivacyPrivate   Privacy = "private"
)

// Valid reports whether p is one of the known privacy levels.
func (p Privacy) Valid() bool {
	switch p {
	case PrivacyPublic, PrivacyAdultOnly, PrivacyPrivate:
		return true
	}
	return false
}

// DefaultOwner owns lists created without an explicit owner.
const DefaultOwner = "GeneralUser"

// ShoppingListInput is the payload used to create a shopping list.
type ShoppingListInput struct {
	Name    string      `json:"name"`
	Items   []ItemInput `json:"items"`
	Privacy Privacy     `json:"privacy,omitempty"`
	Owner   string      `json:"owner,omitempty"`
}

// ShoppingList is a named, ordered collection of catalog items.
type ShoppingList struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:40;not null" validate:"notblank,max=40"`
	Items     []Item    `json:"items" gorm:"-" validate:"-"`
	Privacy   Privacy   `json:"privacy" gorm:"size:16;not null;default:public;index" validate:"oneof=public adultOnly private"`
	Owner     string    `json:"owner" gorm:"size:255;not null;index" validate:"notblank"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

var listRules = map[string]fieldRule{
	"name":    {code: errs.InvalidListName, message: "Invalid list name value"},
	"privacy": {code: errs.InvalidPrivacy, message: "Privacy can only be set to the following values: public, adultOnly, private"},
	"owner":   {code: errs.InvalidOwner, message: "Invalid owner name"},
}

// NewShoppingList validates in, including every embedded item, and builds a
// ShoppingList. The name is trimmed; privacy and owner get their defaults.
func NewShoppingList(in ShoppingListInput) (*ShoppingList, error) {
	list := &ShoppingList{
		Name:    strings.TrimSpace(in.Name),
		Privacy: in.Privacy,
		Owner:   in.Owner,
		Items:   make([]Item, 0, len(in.Items)),
	}
	if list.Privacy == "" {
		list.Privacy = PrivacyPublic
	}
	if list.Owner == "" {
		list.Owner = DefaultOwner
	}
	if err := check(list, listRules); err != nil {
		return nil, err
	}
	for _, itemIn := range in.Items {
		item, err := NewItem(itemIn)
		if err != nil {
			return nil, err
		}
		if err := list.AddItem(item); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// FindItem returns the item called name, or nil.
func (l *ShoppingList) FindItem(name string) *Item {
	for i := range l.Items {
		if l.Items[i].Name == name {
			return &l.Items[i]
		}
	}
	return nil
}

// AddItem appends item, keeping insertion order.
func (l *ShoppingList) AddItem(item *Item) error {
	if item == nil {
		return errs.Invalid(errs.InvalidName, "items", "Invalid item")
	}
	if err := item.Validate(); err != nil {
		return err
	}
	if l.FindItem(item.Name) != nil {
		return errs.AlreadyExists("Item with name %s already exists in the shopping list %s.", item.Name, l.Name)
	}
	l.Items = append(l.Items, *item)
	return nil
}

// RemoveItem drops the item called name and reports whether it was present.
func (l *ShoppingList) RemoveItem(name string) bool {
	for i := range l.Items {
		if l.Items[i].Name == name {
			l.Items = append(l.Items[:i], l.Items[i+1:]...)
			return true
		}
	}
	return false
}

// SetPrivacy changes the privacy level.
func (l *ShoppingList) SetPrivacy(p Privacy) error {
	if !p.Valid() {
		return errs.Invalid(errs.InvalidPrivacy, "privacy", listRules["privacy"].message)
	}
	l.Privacy = p
	return nil
}

// SetOwner changes the owner.
func (l *ShoppingList) SetOwner(owner string) error {
	if err := checkField(owner, "notblank", "owner", listRules); err != nil {
		return err
	}
	l.Owner = owner
	return nil
}
