package models

import (
	"time"

	"grocery/internal/errs"
)

// Urgency ranks how soon an item is needed. It has no behavioral effect.
type Urgency string

const (
	UrgencyLow  Urgency = "low"
	UrgencyMid  Urgency = "mid"
	UrgencyHigh Urgency = "high"
)

// Valid reports whether u is one of the known urgencies.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyLow, UrgencyMid, UrgencyHigh:
		return true
	}
	return false
}

// ItemInput is the payload used to create an item.
type ItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price,omitempty"`
	Urgency     Urgency  `json:"urgency,omitempty"`
}

// Item is an entry of the global item catalog.
type Item struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;size:40;not null" validate:"notblank,max=40"`
	Description string    `json:"description" gorm:"size:240" validate:"max=240"`
	Price       float64   `json:"price" gorm:"not null;default:0" validate:"finite,gte=0"`
	Urgency     Urgency   `json:"urgency" gorm:"size:8;not null;default:low" validate:"oneof=low mid high"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

var itemRules = map[string]fieldRule{
	"name":        {code: errs.InvalidName, message: "Invalid name value"},
	"description": {code: errs.InvalidDescription, message: "Invalid description value"},
	"price":       {code: errs.InvalidPrice, message: "Invalid price value"},
	"urgency":     {code: errs.InvalidUrgency, message: "Invalid urgency value"},
}

// NewItem validates in and builds an Item, applying the default price and
// urgency.
func NewItem(in ItemInput) (*Item, error) {
	item := &Item{
		Name:        in.Name,
		Description: in.Description,
		Urgency:     in.Urgency,
	}
	if in.Price != nil {
		item.Price = *in.Price
	}
	if item.Urgency == "" {
		item.Urgency = UrgencyLow
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

// Validate checks every field of the item.
func (i *Item) Validate() error {
	return check(i, itemRules)
}

// SetDescription replaces the description.
func (i *Item) SetDescription(description string) error {
	if err := checkField(description, "max=240", "description", itemRules); err != nil {
		return err
	}
	i.Description = description
	return nil
}

// SetPrice replaces the price.
func (i *Item) SetPrice(price float64) error {
	if err := checkField(price, "finite,gte=0", "price", itemRules); err != nil {
		return err
	}
	i.Price = price
	return nil
}

// SetUrgency replaces the urgency.
func (i *Item) SetUrgency(u Urgency) error {
	if !u.Valid() {
		return errs.Invalid(errs.InvalidUrgency, "urgency", "Invalid urgency value")
	}
	i.Urgency = u
	return nil
}
