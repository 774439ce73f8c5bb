package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormConnectionRepository is a GORM implementation of ConnectionRepository
type GormConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new ConnectionRepository
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &GormConnectionRepository{db: db}
}

// Create creates a new connection
func (r *GormConnectionRepository) Create(connection *models.Connection) error {
	connection.ID = uuid.NewString()
	connection.CreatedAt = time.Now()
	return r.db.Create(connection).Error
}

// FindByID finds a connection by ID
func (r *GormConnectionRepository) FindByID(id string) (*models.Connection, error) {
	var connection models.Connection
	if err := r.db.First(&connection, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &connection, nil
}

// ListByClient returns the connections a client has made
func (r *GormConnectionRepository) ListByClient(clientID string) ([]models.Connection, error) {
	connections := make([]models.Connection, 0)
	if err := r.db.Where("client_id = ?", clientID).
		Order(creationOrder).
		Find(&connections).Error; err != nil {
		return nil, err
	}
	return connections, nil
}
