package main

import (
	"errors"
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/services"

	"go.uber.org/zap"
)

func price(p float64) *float64 { return &p }

var (
	seedUsers = []models.UserInput{
		{Username: "admin", Password: "Admin123!", Role: models.RoleAdmin},
		{Username: "johndoe", Password: "Password123!", Role: models.RoleAdult},
		{Username: "timmy", Password: "Child123!", Role: models.RoleChild},
	}

	seedProfiles = map[string]models.ProfileInput{
		"johndoe": {Email: "john.doe@example.com", Name: "John", LastName: "Doe"},
		"timmy":   {Email: "timmy.doe@example.com", Name: "Timmy", LastName: "Doe"},
	}

	seedLists = []models.ShoppingListInput{
		{
			Name: "Weekly Groceries",
			Items: []models.ItemInput{
				{Name: "Apples", Description: "Delicious red apples", Price: price(3.99), Urgency: models.UrgencyHigh},
				{Name: "Bananas", Description: "Fresh yellow bananas", Price: price(1.99), Urgency: models.UrgencyLow},
			},
		},
		{
			Name:    "Party Supplies",
			Privacy: models.PrivacyAdultOnly,
			Owner:   "johndoe",
			Items: []models.ItemInput{
				{Name: "Chips", Description: "Crunchy potato chips", Price: price(2.99), Urgency: models.UrgencyLow},
				{Name: "Soda", Description: "Refreshing soda drinks", Price: price(4.99), Urgency: models.UrgencyHigh},
			},
		},
		{
			Name:    "Timmy's Snacks",
			Privacy: models.PrivacyPrivate,
			Owner:   "timmy",
			Items: []models.ItemInput{
				{Name: "Cookies", Price: price(2.49), Urgency: models.UrgencyMid},
			},
		},
	}
)

// seedData creates the demo users, profiles and lists. Existing records are
// left alone so the seed can run on every start.
func seedData(users *services.UserService, profiles *services.ProfileService, lists *services.ShoppingListService, log *zap.Logger) error {
	for _, in := range seedUsers {
		if _, err := users.AddUser(in); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
			return fmt.Errorf("seed user %s: %w", in.Username, err)
		}
	}

	for username, in := range seedProfiles {
		user, err := users.GetUser(username)
		if err != nil {
			return fmt.Errorf("seed profile of %s: %w", username, err)
		}
		in.UserID = user.ID
		if _, err := profiles.AddProfile(in); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
			return fmt.Errorf("seed profile of %s: %w", username, err)
		}
	}

	for _, in := range seedLists {
		if _, err := lists.AddShoppingList(in); err != nil && !errors.Is(err, errs.ErrAlreadyExists) {
			return fmt.Errorf("seed list %s: %w", in.Name, err)
		}
	}

	log.Info("seed data ready",
		zap.Int("users", len(seedUsers)),
		zap.Int("profiles", len(seedProfiles)),
		zap.Int("shoppingLists", len(seedLists)),
	)
	return nil
}
