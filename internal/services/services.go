package services

import "github.com/yukikurage/freelance-marketplace-api/internal/repository"

// Services bundles every service built over one Store.
type Services struct {
	Auth          *AuthService
	Profiles      *ProfileService
	Gigs          *GigService
	Orders        *OrderService
	Connections   *ConnectionService
	Projects      *ProjectService
	Notifications *NotificationService
}

// New wires all services to the given store.
func New(store *repository.Store) *Services {
	return &Services{
		Auth:          NewAuthService(store.Users, store.Profiles),
		Profiles:      NewProfileService(store.Profiles),
		Gigs:          NewGigService(store.Gigs),
		Orders:        NewOrderService(store.Orders),
		Connections:   NewConnectionService(store.Connections),
		Projects:      NewProjectService(store.Projects),
		Notifications: NewNotificationService(store.Notifications),
	}
}
