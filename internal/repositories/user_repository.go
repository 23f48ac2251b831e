package repositories

import (
	"errors"

	"coinvault/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// Create creates a new user. Returns ErrEmailTaken when the email
	// is already registered.
	Create(user *models.User) error

	// GetByID retrieves a user by id
	GetByID(id uint) (*models.User, error)

	// GetByEmail retrieves a user by email address
	GetByEmail(email string) (*models.User, error)

	// List retrieves all users
	List() ([]*models.User, error)

	// ListByCryptoSymbol retrieves users holding the given cryptocurrency
	// in any of their wallets
	ListByCryptoSymbol(symbol string) ([]*models.User, error)

	// ListWithMultipleWallets retrieves users owning more than one wallet
	ListWithMultipleWallets() ([]*models.User, error)

	// Delete removes the user and everything it owns: its transactions
	// (both sides), the assets of its wallets, its wallets and its
	// history, all in one transaction
	Delete(id uint) error
}
