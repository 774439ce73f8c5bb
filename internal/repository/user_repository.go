package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	user.ID = uuid.NewString()
	user.WalletAddress = nil
	user.CreatedAt = time.Now()
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByEmail finds the earliest user registered with the email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).Order(creationOrder).Take(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateWallet sets the wallet address of a user
func (r *GormUserRepository) UpdateWallet(id, walletAddress string) (*models.User, error) {
	var user models.User
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		user.WalletAddress = &walletAddress
		return tx.Model(&user).Update("wallet_address", walletAddress).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
