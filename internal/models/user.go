package models

import (
	"time"

	"grocery/internal/errs"
)

// Role drives feature access and list visibility.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleAdult Role = "adult"
	RoleChild Role = "child"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleAdult, RoleChild:
		return true
	}
	return false
}

// UserInput is the signup payload. Password is the plaintext password.
type UserInput struct {
	Username string `json:"username" validate:"notblank,max=40"`
	Password string `json:"password" validate:"notblank,max=200,has_upper,has_special"`
	Role     Role   `json:"role" validate:"oneof=admin adult child"`
}

// User is an account. Password holds the bcrypt hash once persisted.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:40;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"`
	Role      Role      `json:"role" gorm:"size:8;not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

var userRules = map[string]fieldRule{
	"username": {code: errs.InvalidUsername, message: "Invalid username value"},
	"password": {
		code:    errs.InvalidPassword,
		message: "Invalid password value",
		weak: map[string]string{
			"has_upper":   "Password must have an upper case",
			"has_special": "Password must contain a special character",
		},
	},
	"role": {code: errs.InvalidRole, message: "Invalid role value"},
}

// NewUser validates in and builds a User holding the plaintext password.
// Callers hash it with SetPasswordHash before persisting.
func NewUser(in UserInput) (*User, error) {
	if err := check(in, userRules); err != nil {
		return nil, err
	}
	return &User{
		Username: in.Username,
		Password: in.Password,
		Role:     in.Role,
	}, nil
}

// SetPassword validates and stores a new plaintext password.
func (u *User) SetPassword(password string) error {
	if err := checkField(password, "notblank,max=200,has_upper,has_special", "password", userRules); err != nil {
		return err
	}
	u.Password = password
	return nil
}

// SetPasswordHash stores an already hashed password.
func (u *User) SetPasswordHash(hash string) {
	u.Password = hash
}
