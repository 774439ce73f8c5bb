package models

import "time"

type AccountType string

const (
	AccountTypeClient     AccountType = "client"
	AccountTypeFreelancer AccountType = "freelancer"
)

// User is an account on the marketplace. Password is stored as supplied and
// never serialized.
type User struct {
	ID            string      `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Email         string      `gorm:"type:varchar(255);index;not null" json:"email"`
	Password      string      `gorm:"type:varchar(255);not null" json:"-"`
	AccountType   AccountType `gorm:"type:varchar(20);index;not null" json:"accountType"`
	WalletAddress *string     `gorm:"type:varchar(255)" json:"walletAddress"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	u.WalletAddress = clonePtr(u.WalletAddress)
	return u
}

// IsFreelancer reports whether the account sells services.
func (u User) IsFreelancer() bool {
	return u.AccountType == AccountTypeFreelancer
}
