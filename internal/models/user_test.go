package models_test

import (
	"strings"
	"testing"

	"grocery/internal/errs"
	"grocery/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	user, err := models.NewUser(models.UserInput{Username: "alice", Password: "Secret!1", Role: models.RoleAdult})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, models.RoleAdult, user.Role)
}

func TestNewUser_Rules(t *testing.T) {
	tests := []struct {
		name string
		in   models.UserInput
		code string
	}{
		{"username too long", models.UserInput{Username: strings.Repeat("u", 41), Password: "Secret!1", Role: "adult"}, errs.InvalidUsername},
		{"blank username", models.UserInput{Username: "", Password: "Secret!1", Role: "adult"}, errs.InvalidUsername},
		{"blank password", models.UserInput{Username: "bob", Password: "   ", Role: "adult"}, errs.InvalidPassword},
		{"password too long", models.UserInput{Username: "bob", Password: "A!" + strings.Repeat("p", 199), Role: "adult"}, errs.InvalidPassword},
		{"no uppercase", models.UserInput{Username: "bob", Password: "secret!1", Role: "adult"}, errs.WeakPassword},
		{"no special character", models.UserInput{Username: "bob", Password: "Secret11", Role: "adult"}, errs.WeakPassword},
		{"unknown role", models.UserInput{Username: "bob", Password: "Secret!1", Role: "member"}, errs.InvalidRole},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := models.NewUser(tc.in)
			assert.Equal(t, tc.code, errs.Code(err))
		})
	}
}

func TestUserSetPassword(t *testing.T) {
	user, err := models.NewUser(models.UserInput{Username: "carol", Password: "Secret!1", Role: models.RoleChild})
	require.NoError(t, err)

	assert.Equal(t, errs.WeakPassword, errs.Code(user.SetPassword("weakpass")))
	assert.Equal(t, "Secret!1", user.Password)
	assert.NoError(t, user.SetPassword("Better?2"))
	assert.Equal(t, "Better?2", user.Password)
}

func TestRoleValid(t *testing.T) {
	assert.True(t, models.RoleAdmin.Valid())
	assert.True(t, models.RoleChild.Valid())
	assert.False(t, models.Role("a").Valid())
	assert.False(t, models.Role("").Valid())
}
