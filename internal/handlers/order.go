package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	apierrors "github.com/yukikurage/freelance-marketplace-api/internal/errors"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

type OrderHandler struct {
	orderService *services.OrderService
}

func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GetOrder returns a specific order by ID
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// ListClientOrders returns the orders placed by a client
func (h *OrderHandler) ListClientOrders(c *gin.Context) {
	orders, err := h.orderService.ListByClient(c.Param("clientId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListFreelancerOrders returns the orders received by a freelancer
func (h *OrderHandler) ListFreelancerOrders(c *gin.Context) {
	orders, err := h.orderService.ListByFreelancer(c.Param("freelancerId"))
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// CreateOrder places an order for a gig
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	type CreateOrderRequest struct {
		GigID        string              `json:"gigId" binding:"required"`
		ClientID     string              `json:"clientId" binding:"required"`
		FreelancerID string              `json:"freelancerId" binding:"required"`
		Amount       *decimal.Decimal    `json:"amount" binding:"required"`
		Status       models.OrderStatus  `json:"status"`
		EscrowStatus models.EscrowStatus `json:"escrowStatus"`
		DeliveryDate *time.Time          `json:"deliveryDate"`
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	order, err := h.orderService.Create(services.CreateOrderInput{
		GigID:        req.GigID,
		ClientID:     req.ClientID,
		FreelancerID: req.FreelancerID,
		Amount:       *req.Amount,
		Status:       req.Status,
		EscrowStatus: req.EscrowStatus,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// UpdateOrder changes the status, escrow status or delivery date of an order.
// Any other key in the body is ignored.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	type UpdateOrderRequest struct {
		Status       *models.OrderStatus     `json:"status"`
		EscrowStatus *models.EscrowStatus    `json:"escrowStatus"`
		DeliveryDate models.Field[time.Time] `json:"deliveryDate"`
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationFailed(c, err)
		return
	}

	order, err := h.orderService.Update(c.Param("id"), services.UpdateOrderInput{
		Status:       req.Status,
		EscrowStatus: req.EscrowStatus,
		DeliveryDate: req.DeliveryDate,
	})
	if err != nil {
		respondOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

func respondOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		apierrors.NotFound(c, "Order not found")
	case errors.Is(err, services.ErrNonPositiveAmount):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "amount", Rule: "gt", Param: "0"},
		})
	case errors.Is(err, services.ErrInvalidOrderStatus):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "status", Rule: "oneof"},
		})
	case errors.Is(err, services.ErrInvalidEscrowStatus):
		apierrors.BadRequestWithDetails(c, "Validation failed", []apierrors.FieldError{
			{Field: "escrowStatus", Rule: "oneof"},
		})
	default:
		respondInternal(c, err)
	}
}
