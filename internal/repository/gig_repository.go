package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormGigRepository is a GORM implementation of GigRepository
type GormGigRepository struct {
	db *gorm.DB
}

// NewGigRepository creates a new GigRepository
func NewGigRepository(db *gorm.DB) GigRepository {
	return &GormGigRepository{db: db}
}

// Create creates a new gig
func (r *GormGigRepository) Create(gig *models.Gig) error {
	gig.ID = uuid.NewString()
	gig.Views = 0
	gig.CreatedAt = time.Now()
	return r.db.Create(gig).Error
}

// FindByID finds a gig by ID
func (r *GormGigRepository) FindByID(id string) (*models.Gig, error) {
	var gig models.Gig
	if err := r.db.First(&gig, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &gig, nil
}

// List returns every gig
func (r *GormGigRepository) List() ([]models.Gig, error) {
	gigs := make([]models.Gig, 0)
	if err := r.db.Order(creationOrder).Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

// ListByFreelancer returns the gigs offered by a freelancer
func (r *GormGigRepository) ListByFreelancer(freelancerID string) ([]models.Gig, error) {
	gigs := make([]models.Gig, 0)
	if err := r.db.Where("freelancer_id = ?", freelancerID).
		Order(creationOrder).
		Find(&gigs).Error; err != nil {
		return nil, err
	}
	return gigs, nil
}

// Update merges the patch into a gig
func (r *GormGigRepository) Update(id string, patch models.GigPatch) (*models.Gig, error) {
	var gig models.Gig
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&gig, "id = ?", id).Error; err != nil {
			return err
		}
		gig.Apply(patch)
		return tx.Save(&gig).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &gig, nil
}

// Delete removes a gig
func (r *GormGigRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Gig{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
