package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNegativeBudget  = errors.New("budget cannot be negative")
)

// ProjectService handles project business logic
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProjectInput represents input for posting a project
type CreateProjectInput struct {
	ClientID    string
	Title       string
	Description string
	Budget      decimal.Decimal
	Skills      []string
	Deadline    *time.Time
}

// Create posts a new project
func (s *ProjectService) Create(input CreateProjectInput) (*models.Project, error) {
	if input.Budget.IsNegative() {
		return nil, ErrNegativeBudget
	}

	project := &models.Project{
		ClientID:    input.ClientID,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		Skills:      input.Skills,
		Deadline:    input.Deadline,
	}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// Get returns the project with the given ID
func (s *ProjectService) Get(id string) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(id)
	if err != nil {
		return nil, projectError("failed to find project", err)
	}
	return project, nil
}

// List returns all projects, or only those of one client when clientID is set
func (s *ProjectService) List(clientID string) ([]models.Project, error) {
	var (
		projects []models.Project
		err      error
	)
	if clientID != "" {
		projects, err = s.projectRepo.ListByClient(clientID)
	} else {
		projects, err = s.projectRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// Update merges the patch into the project with the given ID
func (s *ProjectService) Update(id string, patch models.ProjectPatch) (*models.Project, error) {
	if patch.Budget != nil && patch.Budget.IsNegative() {
		return nil, ErrNegativeBudget
	}

	project, err := s.projectRepo.Update(id, patch)
	if err != nil {
		return nil, projectError("failed to update project", err)
	}
	return project, nil
}

// Delete removes the project with the given ID
func (s *ProjectService) Delete(id string) error {
	deleted, err := s.projectRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if !deleted {
		return ErrProjectNotFound
	}
	return nil
}

func projectError(msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProjectNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
