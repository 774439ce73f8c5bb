package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

type EscrowStatus string

const (
	EscrowStatusPending  EscrowStatus = "pending"
	EscrowStatusFunded   EscrowStatus = "funded"
	EscrowStatusReleased EscrowStatus = "released"
	EscrowStatusRefunded EscrowStatus = "refunded"
)

type Order struct {
	ID           string          `gorm:"primaryKey;type:varchar(36)" json:"id"`
	GigID        string          `gorm:"type:varchar(36);index;not null" json:"gigId"`
	ClientID     string          `gorm:"type:varchar(36);index;not null" json:"clientId"`
	FreelancerID string          `gorm:"type:varchar(36);index;not null" json:"freelancerId"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Status       OrderStatus     `gorm:"type:varchar(20);not null" json:"status"`
	EscrowStatus EscrowStatus    `gorm:"type:varchar(20);not null" json:"escrowStatus"`
	DeliveryDate *time.Time      `json:"deliveryDate"`
	CreatedAt    time.Time       `json:"createdAt"`
	CompletedAt  *time.Time      `json:"completedAt"`
}

// OrderPatch carries the order fields to change. The HTTP layer only exposes
// Status, EscrowStatus and DeliveryDate.
type OrderPatch struct {
	GigID        *string          `json:"gigId"`
	ClientID     *string          `json:"clientId"`
	FreelancerID *string          `json:"freelancerId"`
	Amount       *decimal.Decimal `json:"amount"`
	Status       *OrderStatus     `json:"status"`
	EscrowStatus *EscrowStatus    `json:"escrowStatus"`
	DeliveryDate Field[time.Time] `json:"deliveryDate"`
	CompletedAt  Field[time.Time] `json:"completedAt"`
}

// Normalize fills the status fields left empty at creation.
func (o *Order) Normalize() {
	if o.Status == "" {
		o.Status = OrderStatusPending
	}
	if o.EscrowStatus == "" {
		o.EscrowStatus = EscrowStatusPending
	}
}

// Apply merges the patch into the order.
func (o *Order) Apply(patch OrderPatch) {
	applyValue(&o.GigID, patch.GigID)
	applyValue(&o.ClientID, patch.ClientID)
	applyValue(&o.FreelancerID, patch.FreelancerID)
	applyValue(&o.Amount, patch.Amount)
	applyValue(&o.Status, patch.Status)
	applyValue(&o.EscrowStatus, patch.EscrowStatus)
	applyPtr(&o.DeliveryDate, patch.DeliveryDate)
	applyPtr(&o.CompletedAt, patch.CompletedAt)
}

func (o Order) Clone() Order {
	o.DeliveryDate = clonePtr(o.DeliveryDate)
	o.CompletedAt = clonePtr(o.CompletedAt)
	return o
}
