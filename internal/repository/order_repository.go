package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormOrderRepository is a GORM implementation of OrderRepository
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: db}
}

// Create creates a new order
func (r *GormOrderRepository) Create(order *models.Order) error {
	order.ID = uuid.NewString()
	order.Normalize()
	order.CreatedAt = time.Now()
	order.CompletedAt = nil
	return r.db.Create(order).Error
}

// FindByID finds an order by ID
func (r *GormOrderRepository) FindByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// ListByClient returns the orders placed by a client
func (r *GormOrderRepository) ListByClient(clientID string) ([]models.Order, error) {
	return r.listWhere("client_id = ?", clientID)
}

// ListByFreelancer returns the orders received by a freelancer
func (r *GormOrderRepository) ListByFreelancer(freelancerID string) ([]models.Order, error) {
	return r.listWhere("freelancer_id = ?", freelancerID)
}

func (r *GormOrderRepository) listWhere(query string, arg string) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := r.db.Where(query, arg).Order(creationOrder).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Update merges the patch into an order
func (r *GormOrderRepository) Update(id string, patch models.OrderPatch) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&order, "id = ?", id).Error; err != nil {
			return err
		}
		order.Apply(patch)
		return tx.Save(&order).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}
