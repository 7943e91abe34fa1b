package models_test

import (
	"testing"

	"grocery/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleLists() []models.ShoppingList {
	return []models.ShoppingList{
		{Name: "L1", Privacy: models.PrivacyPrivate, Owner: "alice"},
		{Name: "L2", Privacy: models.PrivacyPublic, Owner: models.DefaultOwner},
		{Name: "L3", Privacy: models.PrivacyAdultOnly, Owner: models.DefaultOwner},
	}
}

func names(lists []models.ShoppingList) []string {
	out := make([]string, 0, len(lists))
	for _, l := range lists {
		out = append(out, l.Name)
	}
	return out
}

func TestFilterVisible(t *testing.T) {
	tests := []struct {
		name   string
		viewer *models.Viewer
		want   []string
	}{
		{"child bob", &models.Viewer{Username: "bob", Role: models.RoleChild}, []string{"L2"}},
		{"child alice owns L1", &models.Viewer{Username: "alice", Role: models.RoleChild}, []string{"L1", "L2"}},
		{"adult alice", &models.Viewer{Username: "alice", Role: models.RoleAdult}, []string{"L1", "L2", "L3"}},
		{"adult bob", &models.Viewer{Username: "bob", Role: models.RoleAdult}, []string{"L2", "L3"}},
		{"admin without username", &models.Viewer{Role: models.RoleAdmin}, []string{"L1", "L2", "L3"}},
		{"admin bob", &models.Viewer{Username: "bob", Role: models.RoleAdmin}, []string{"L1", "L2", "L3"}},
		{"unknown role", &models.Viewer{Username: "alice", Role: "guest"}, []string{"L2"}},
		{"empty role", &models.Viewer{Username: "alice"}, []string{"L2"}},
		{"no viewer", nil, []string{"L1", "L2", "L3"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, names(models.FilterVisible(sampleLists(), tc.viewer)))
		})
	}
}
