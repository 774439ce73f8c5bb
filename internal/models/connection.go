package models

import "time"

// Connection links a client to a freelancer. Connections are append-only.
type Connection struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientID     string    `gorm:"type:varchar(36);index;not null" json:"clientId"`
	FreelancerID string    `gorm:"type:varchar(36);index;not null" json:"freelancerId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (c Connection) Clone() Connection {
	return c
}
