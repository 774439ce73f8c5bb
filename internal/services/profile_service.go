package services

import (
	"errors"
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService handles profile business logic
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetByUserID returns the profile owned by the user
func (s *ProfileService) GetByUserID(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, profileError("failed to find profile", err)
	}
	return profile, nil
}

// Update merges the patch into the profile with the given ID
func (s *ProfileService) Update(id string, patch models.ProfilePatch) (*models.Profile, error) {
	profile, err := s.profileRepo.Update(id, patch)
	if err != nil {
		return nil, profileError("failed to update profile", err)
	}
	return profile, nil
}

// ListFreelancers returns the profiles of all freelancer accounts
func (s *ProfileService) ListFreelancers() ([]models.Profile, error) {
	profiles, err := s.profileRepo.ListFreelancers()
	if err != nil {
		return nil, fmt.Errorf("failed to list freelancers: %w", err)
	}
	return profiles, nil
}

func profileError(msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProfileNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
