package services

import (
	"errors"
	"fmt"

	"grocery/internal/errs"
	"grocery/internal/models"
	"grocery/internal/repositories"
)

// ProfileService handles the personal details attached to users.
type ProfileService struct {
	profiles repositories.ProfileRepository
	users    repositories.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles repositories.ProfileRepository, users repositories.UserRepository) *ProfileService {
	return &ProfileService{
		profiles: profiles,
		users:    users,
	}
}

// AddProfile creates the single profile of an existing user.
func (s *ProfileService) AddProfile(in models.ProfileInput) (*models.Profile, error) {
	if _, err := s.profiles.GetByEmail(in.Email); err == nil {
		return nil, errs.AlreadyExists("Profile with email %s already exists.", in.Email)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to check profile %s: %w", in.Email, err)
	}

	profile, err := models.NewProfile(in)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.GetByID(in.UserID); err != nil {
		return nil, err
	}
	if _, err := s.profiles.GetByUserID(in.UserID); err == nil {
		return nil, errs.AlreadyExists("User %d already has a profile.", in.UserID)
	} else if !errors.Is(err, errs.ErrNotFound) {
		return nil, fmt.Errorf("failed to check profile of user %d: %w", in.UserID, err)
	}

	if err := s.profiles.Create(profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetAllProfiles retrieves all profiles.
func (s *ProfileService) GetAllProfiles() ([]models.Profile, error) {
	return s.profiles.GetAll()
}

// GetProfileByEmail retrieves a profile by email.
func (s *ProfileService) GetProfileByEmail(email string) (*models.Profile, error) {
	return s.profiles.GetByEmail(email)
}

// GetProfileByUserID retrieves the profile of a user.
func (s *ProfileService) GetProfileByUserID(userID uint) (*models.Profile, error) {
	return s.profiles.GetByUserID(userID)
}

// UpdateProfile replaces the email, name and last name of a user's profile.
// Nothing is stored unless every field is valid.
func (s *ProfileService) UpdateProfile(userID uint, in models.ProfileInput) (*models.Profile, error) {
	current, err := s.profiles.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	updated := *current
	if err := updated.SetEmail(in.Email); err != nil {
		return nil, err
	}
	if err := updated.SetName(in.Name); err != nil {
		return nil, err
	}
	if err := updated.SetLastName(in.LastName); err != nil {
		return nil, err
	}
	if err := s.profiles.Update(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveProfile deletes a profile by email.
func (s *ProfileService) RemoveProfile(email string) error {
	return s.profiles.Delete(email)
}
