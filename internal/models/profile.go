package models

import (
	"time"
	"unicode/utf8"

	"grocery/internal/errs"
)

// ProfileInput is the payload used to create or update a profile.
type ProfileInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	UserID   uint   `json:"userId"`
}

// Profile holds the personal details of a user. A user has at most one.
type Profile struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:60;not null" validate:"max=60,email_simple"`
	Name      string    `json:"name" gorm:"size:40" validate:"max=40"`
	LastName  string    `json:"lastName" gorm:"size:60" validate:"max=60"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex;not null" validate:"required"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

var profileRules = map[string]fieldRule{
	"email":    {code: errs.InvalidEmail, message: "Invalid email value"},
	"name":     {code: errs.InvalidName, message: "Invalid name value"},
	"lastName": {code: errs.InvalidLastName, message: "Invalid lastname value"},
	"userId":   {code: errs.InvalidUserID, message: "Invalid userId value"},
}

// NewProfile validates in and builds a Profile.
func NewProfile(in ProfileInput) (*Profile, error) {
	p := &Profile{
		Email:    in.Email,
		Name:     in.Name,
		LastName: in.LastName,
		UserID:   in.UserID,
	}
	if err := check(p, profileRules); err != nil {
		return nil, err
	}
	return p, nil
}

// SetEmail replaces the email address.
func (p *Profile) SetEmail(email string) error {
	if err := checkField(email, "max=60,email_simple", "email", profileRules); err != nil {
		return err
	}
	p.Email = email
	return nil
}

// SetName replaces the first name.
func (p *Profile) SetName(name string) error {
	if err := checkField(name, "max=40", "name", profileRules); err != nil {
		return err
	}
	p.Name = name
	return nil
}

// SetLastName replaces the last name.
func (p *Profile) SetLastName(lastName string) error {
	if err := checkField(lastName, "max=60", "lastName", profileRules); err != nil {
		return err
	}
	p.LastName = lastName
	return nil
}

// FullName joins the first and last name.
func (p *Profile) FullName() string {
	if p.LastName == "" {
		return p.Name
	}
	return p.Name + " " + p.LastName
}

// Initials returns the first letter of the first and last name.
func (p *Profile) Initials() string {
	return firstRune(p.Name) + firstRune(p.LastName)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(r)
}
