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
	ErrOrderNotFound       = errors.New("order not found")
	ErrNonPositiveAmount   = errors.New("amount must be greater than zero")
	ErrInvalidOrderStatus  = errors.New("invalid order status")
	ErrInvalidEscrowStatus = errors.New("invalid escrow status")
)

// OrderService handles order business logic
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService creates a new OrderService
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// CreateOrderInput represents input for placing an order
type CreateOrderInput struct {
	GigID        string
	ClientID     string
	FreelancerID string
	Amount       decimal.Decimal
	Status       models.OrderStatus
	EscrowStatus models.EscrowStatus
	DeliveryDate *time.Time
}

// UpdateOrderInput holds the order fields a client may change
type UpdateOrderInput struct {
	Status       *models.OrderStatus
	EscrowStatus *models.EscrowStatus
	DeliveryDate models.Field[time.Time]
}

// Create places a new order. Empty statuses default to pending.
func (s *OrderService) Create(input CreateOrderInput) (*models.Order, error) {
	if !input.Amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if input.Status != "" && !validOrderStatus(input.Status) {
		return nil, ErrInvalidOrderStatus
	}
	if input.EscrowStatus != "" && !validEscrowStatus(input.EscrowStatus) {
		return nil, ErrInvalidEscrowStatus
	}

	order := &models.Order{
		GigID:        input.GigID,
		ClientID:     input.ClientID,
		FreelancerID: input.FreelancerID,
		Amount:       input.Amount,
		Status:       input.Status,
		EscrowStatus: input.EscrowStatus,
		DeliveryDate: input.DeliveryDate,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// Get returns the order with the given ID
func (s *OrderService) Get(id string) (*models.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		return nil, orderError("failed to find order", err)
	}
	return order, nil
}

// ListByClient returns the orders placed by a client
func (s *OrderService) ListByClient(clientID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByClient(clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListByFreelancer returns the orders received by a freelancer
func (s *OrderService) ListByFreelancer(freelancerID string) ([]models.Order, error) {
	orders, err := s.orderRepo.ListByFreelancer(freelancerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// Update changes the status, escrow status or delivery date of an order.
// No other field can be changed through this method.
func (s *OrderService) Update(id string, input UpdateOrderInput) (*models.Order, error) {
	if input.Status != nil && !validOrderStatus(*input.Status) {
		return nil, ErrInvalidOrderStatus
	}
	if input.EscrowStatus != nil && !validEscrowStatus(*input.EscrowStatus) {
		return nil, ErrInvalidEscrowStatus
	}

	order, err := s.orderRepo.Update(id, models.OrderPatch{
		Status:       input.Status,
		EscrowStatus: input.EscrowStatus,
		DeliveryDate: input.DeliveryDate,
	})
	if err != nil {
		return nil, orderError("failed to update order", err)
	}
	return order, nil
}

func validOrderStatus(status models.OrderStatus) bool {
	switch status {
	case models.OrderStatusPending, models.OrderStatusInProgress, models.OrderStatusDelivered,
		models.OrderStatusCompleted, models.OrderStatusCancelled:
		return true
	}
	return false
}

func validEscrowStatus(status models.EscrowStatus) bool {
	switch status {
	case models.EscrowStatusPending, models.EscrowStatusFunded, models.EscrowStatusReleased,
		models.EscrowStatusRefunded:
		return true
	}
	return false
}

func orderError(msg string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrOrderNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
