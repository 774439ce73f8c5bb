package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yukikurage/freelance-marketplace-api/internal/constants"
	"github.com/yukikurage/freelance-marketplace-api/internal/models"
	"github.com/yukikurage/freelance-marketplace-api/internal/repository"
)

var (
	ErrPasswordTooShort      = errors.New("password too short")
	ErrEmailTaken            = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrUserNotFound          = errors.New("user not found")
	ErrFailedToCreateUser    = errors.New("failed to create user")
	ErrFailedToCreateProfile = errors.New("failed to create profile")
)

// AuthService handles registration, login and wallet linking.
//
// Passwords are stored and compared as plain text.
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

// RegisterInput represents the information needed to open an account.
type RegisterInput struct {
	Email       string
	Password    string
	AccountType models.AccountType
	FirstName   string
	LastName    string
	Country     string
	Phone       string
}

// Account is a user together with their profile. Profile is nil when the
// user has none.
type Account struct {
	User    *models.User
	Profile *models.Profile
}

// Register creates a user and the matching profile.
func (s *AuthService) Register(input RegisterInput) (*Account, error) {
	email := strings.TrimSpace(input.Email)
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	user := &models.User{
		Email:       email,
		Password:    input.Password,
		AccountType: input.AccountType,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateUser, err)
	}

	profile := &models.Profile{
		UserID:    user.ID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Country:   input.Country,
		Phone:     input.Phone,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToCreateProfile, err)
	}

	return &Account{User: user, Profile: profile}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the account.
func (s *AuthService) Login(input LoginInput) (*Account, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(input.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if user.Password != input.Password {
		return nil, ErrInvalidCredentials
	}

	return s.withProfile(user)
}

// GetAccount retrieves a user and their profile by user ID.
func (s *AuthService) GetAccount(userID string) (*Account, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}
	return s.withProfile(user)
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ConnectWallet links a wallet address to a user.
func (s *AuthService) ConnectWallet(userID, walletAddress string) (*models.User, error) {
	user, err := s.userRepo.UpdateWallet(userID, walletAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update wallet: %w", err)
	}
	return user, nil
}

func (s *AuthService) withProfile(user *models.User) (*Account, error) {
	profile, err := s.profileRepo.FindByUserID(user.ID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}
	return &Account{User: user, Profile: profile}, nil
}
