package models

import "time"

// Notification is a message for a user. Read only ever moves from false to true.
type Notification struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Link      *string   `gorm:"type:text" json:"link"`
	Read      bool      `gorm:"not null;default:false" json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Normalize applies creation defaults: an empty link becomes null.
func (n *Notification) Normalize() {
	n.Link = nilIfEmpty(n.Link)
}

func (n Notification) Clone() Notification {
	n.Link = clonePtr(n.Link)
	return n
}
