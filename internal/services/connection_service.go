package services

import (
	"fmt"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

// ConnectionService records which freelancers a client has connected with
type ConnectionService struct {
	connectionRepo repository.ConnectionRepository
}

// NewConnectionService creates a new ConnectionService
func NewConnectionService(connectionRepo repository.ConnectionRepository) *ConnectionService {
	return &ConnectionService{connectionRepo: connectionRepo}
}

// Create records a connection between a client and a freelancer
func (s *ConnectionService) Create(clientID, freelancerID string) (*models.Connection, error) {
	connection := &models.Connection{
		ClientID:     clientID,
		FreelancerID: freelancerID,
	}
	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}
	return connection, nil
}

// ListByClient returns the connections of a client
func (s *ConnectionService) ListByClient(clientID string) ([]models.Connection, error) {
	connections, err := s.connectionRepo.ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	return connections, nil
}
