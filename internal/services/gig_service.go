package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var (
	ErrGigNotFound   = errors.New("gig not found")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// GigService handles gig business logic
type GigService struct {
	gigRepo repository.GigRepository
}

// NewGigService creates a new GigService
func NewGigService(gigRepo repository.GigRepository) *GigService {
	return &GigService{gigRepo: gigRepo}
}

// CreateGigInput represents input for creating a gig
type CreateGigInput struct {
	FreelancerID string
	Title        string
	Description  string
	Price        decimal.Decimal
	Skills       []string
	Images       []string
}

// Create publishes a new gig. Views always start at zero.
func (s *GigService) Create(input CreateGigInput) (*models.Gig, error) {
	if input.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	gig := &models.Gig{
		FreelancerID: input.FreelancerID,
		Title:        input.Title,
		Description:  input.Description,
		Price:        input.Price,
		Skills:       input.Skills,
		Images:       input.Images,
	}
	if err := s.gigRepo.Create(gig); err != nil {
		return nil, fmt.Errorf("failed to create gig: %w", err)
	}
	return gig, nil
}

// Get returns the gig with the given ID
func (s *GigService) Get(id string) (*models.Gig, error) {
	gig, err := s.gigRepo.FindByID(id)
	if err != nil {
		return nil, gigError("failed to find gig", err)
	}
	return gig, nil
}

// List returns all gigs, or only those of one freelancer when freelancerID is set
func (s *GigService) List(freelancerID string) ([]models.Gig, error) {
	var (
		gigs []models.Gig
		err  error
	)
	if freelancerID != "" {
		gigs, err = s.gigRepo.ListByFreelancer(freelancerID)
	} else {
		gigs, err = s.gigRepo.List()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list gigs: %w", err)
	}
	return gigs, nil
}

// Update merges the patch into the gig with the given ID
func (s *GigService) Update(id string, patch models.GigPatch) (*models.Gig, error) {
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, ErrNegativePrice
	}

	gig, err := s.gigRepo.Update(id, patch)
	if err != nil {
		return nil, gigError("failed to update gig", err)
	}
	return gig, nil
}

// Delete removes the gig with the given ID
func (s *GigService) Delete(id string) error {
	deleted, err := s.gigRepo.Delete(id)
	if err != nil {
		return fmt.Errorf("failed to delete gig: %w", err)
	}
	if !deleted {
		return ErrGigNotFound
	}
	return nil
}

func gigError(msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrGigNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
