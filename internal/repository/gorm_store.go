package repository

import (
	"errors"

	"gorm.io/gorm"
)

// NewGormStore creates a Store backed by a SQL database through GORM.
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:         NewUserRepository(db),
		Profiles:      NewProfileRepository(db),
		Gigs:          NewGigRepository(db),
		Orders:        NewOrderRepository(db),
		Connections:   NewConnectionRepository(db),
		Projects:      NewProjectRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

// translate maps GORM's missing-row error onto ErrNotFound.
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

const creationOrder = "created_at, id"
