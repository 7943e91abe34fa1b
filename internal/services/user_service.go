package services

import (
	"errors"
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/repositories"
)

// UserService handles account management.
type UserService struct {
	repo           repositories.UserRepository
	cascadeProfile bool
}

// NewUserService creates a new UserService. When cascadeProfile is set,
// removing a user also removes its profile.
func NewUserService(repo repositories.UserRepository, cascadeProfile bool) *UserService {
	return &UserService{
		repo:           repo,
		cascadeProfile: cascadeProfile,
	}
}

// AddUser registers a new user and stores the bcrypt hash of its password.
func (s *UserService) AddUser(in models.UserInput) (*models.User, error) {
	_, err := s.repo.GetByUsername(in.Username)
	if err == nil {
		return nil, errs.AlreadyExists("User with username %s already exists.", in.Username)
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user %s: %w", in.Username, err)
	}

	user, err := models.NewUser(in)
	if err != nil {
		return nil, err
	}
	hash, err := HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.SetPasswordHash(hash)

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by username.
func (s *UserService) GetUser(username string) (*models.User, error) {
	return s.repo.GetByUsername(username)
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// RemoveUser deletes a user.
func (s *UserService) RemoveUser(username string) error {
	return s.repo.Delete(username, s.cascadeProfile)
}
