package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	project.ID = uuid.NewString()
	project.CreatedAt = time.Now()
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id string) (*models.Project, error) {
	var project models.Project
	if err := r.db.First(&project, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// List returns every project
func (r *GormProjectRepository) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := r.db.Order(creationOrder).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByClient returns the projects posted by a client
func (r *GormProjectRepository) ListByClient(clientID string) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := r.db.Where("client_id = ?", clientID).
		Order(creationOrder).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Update merges the patch into a project
func (r *GormProjectRepository) Update(id string, patch models.ProjectPatch) (*models.Project, error) {
	var project models.Project
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, "id = ?", id).Error; err != nil {
			return err
		}
		project.Apply(patch)
		return tx.Save(&project).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

// Delete removes a project
func (r *GormProjectRepository) Delete(id string) (bool, error) {
	result := r.db.Where("id = ?", id).Delete(&models.Project{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
