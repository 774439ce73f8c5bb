package dto

import (
	"time"

	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/services"
)

// UserDTO represents a user in API responses. It never carries the password.
type UserDTO struct {
	ID            string             `json:"id"`
	Email         string             `json:"email"`
	AccountType   models.AccountType `json:"accountType"`
	WalletAddress *string            `json:"walletAddress"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// AccountDTO is returned by register, login and me.
type AccountDTO struct {
	User    UserDTO         `json:"user"`
	Profile *models.Profile `json:"profile"`
}

// WalletDTO is returned after linking a wallet.
type WalletDTO struct {
	User UserDTO `json:"user"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		AccountType:   user.AccountType,
		WalletAddress: user.WalletAddress,
		CreatedAt:     user.CreatedAt,
	}
}

// ToAccountDTO converts an account to DTO
func ToAccountDTO(account services.Account) AccountDTO {
	return AccountDTO{
		User:    ToUserDTO(*account.User),
		Profile: account.Profile,
	}
}
