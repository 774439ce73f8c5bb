package repository

import (
	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormProfileRepository is a GORM implementation of ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &GormProfileRepository{db: db}
}

// Create creates a new profile
func (r *GormProfileRepository) Create(profile *models.Profile) error {
	profile.ID = uuid.NewString()
	profile.Normalize()
	return r.db.Create(profile).Error
}

// FindByID finds a profile by ID
func (r *GormProfileRepository) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// FindByUserID finds a profile by its owner
func (r *GormProfileRepository) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.Where("user_id = ?", userID).Take(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// Update merges the patch into a profile
func (r *GormProfileRepository) Update(id string, patch models.ProfilePatch) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&profile, "id = ?", id).Error; err != nil {
			return err
		}
		profile.Apply(patch)
		return tx.Save(&profile).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// ListFreelancers joins profiles to their owners and keeps the freelancers
func (r *GormProfileRepository) ListFreelancers() ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := r.db.Model(&models.Profile{}).
		Select("profiles.*").
		Joins("JOIN users ON users.id = profiles.user_id").
		Where("users.account_type = ?", models.AccountTypeFreelancer).
		Order("users.created_at, profiles.id").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
