package repository

import (
	"errors"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("repository: record not found")

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create stores a new user and fills in its id and defaults
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id string) (*models.User, error)

	// FindByEmail finds the first user with exactly this email
	FindByEmail(email string) (*models.User, error)

	// UpdateWallet sets the wallet address of a user
	UpdateWallet(id, walletAddress string) (*models.User, error)
}

// ProfileRepository defines the interface for profile data access
type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)

	// FindByUserID finds the first profile owned by the user
	FindByUserID(userID string) (*models.Profile, error)

	Update(id string, patch models.ProfilePatch) (*models.Profile, error)

	// ListFreelancers returns every profile whose owner is a freelancer,
	// evaluated against the current users on each call
	ListFreelancers() ([]models.Profile, error)
}

// GigRepository defines the interface for gig data access
type GigRepository interface {
	Create(gig *models.Gig) error
	FindByID(id string) (*models.Gig, error)
	List() ([]models.Gig, error)
	ListByFreelancer(freelancerID string) ([]models.Gig, error)
	Update(id string, patch models.GigPatch) (*models.Gig, error)

	// Delete reports whether a gig was removed
	Delete(id string) (bool, error)
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(order *models.Order) error
	FindByID(id string) (*models.Order, error)
	ListByClient(clientID string) ([]models.Order, error)
	ListByFreelancer(freelancerID string) ([]models.Order, error)
	Update(id string, patch models.OrderPatch) (*models.Order, error)
}

// ConnectionRepository defines the interface for connection data access.
// Connections cannot be changed or removed once created.
type ConnectionRepository interface {
	Create(connection *models.Connection) error
	FindByID(id string) (*models.Connection, error)
	ListByClient(clientID string) ([]models.Connection, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	List() ([]models.Project, error)
	ListByClient(clientID string) ([]models.Project, error)
	Update(id string, patch models.ProjectPatch) (*models.Project, error)

	// Delete reports whether a project was removed
	Delete(id string) (bool, error)
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByID(id string) (*models.Notification, error)
	ListByUser(userID string) ([]models.Notification, error)

	// MarkAsRead flags the notification as read
	MarkAsRead(id string) (*models.Notification, error)
}

// Store groups the seven collections behind one injectable value.
type Store struct {
	Users         UserRepository
	Profiles      ProfileRepository
	Gigs          GigRepository
	Orders        OrderRepository
	Connections   ConnectionRepository
	Projects      ProjectRepository
	Notifications NotificationRepository
}
