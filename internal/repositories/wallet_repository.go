package repositories

import (
	"errors"

	"coinvault/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrWalletNotFound = errors.New("wallet not found")
)

// WalletRepository defines the interface for wallet-related database operations.
type WalletRepository interface {
	// Create creates a new wallet
	Create(wallet *models.Wallet) error

	// GetByID retrieves a wallet by id
	GetByID(id uint) (*models.Wallet, error)

	// GetByIDWithAssets retrieves a wallet with its asset positions and
	// their cryptocurrencies loaded
	GetByIDWithAssets(id uint) (*models.Wallet, error)

	// ListByUser retrieves the user's wallets ordered by ascending id,
	// with assets and cryptocurrencies loaded
	ListByUser(userID uint) ([]*models.Wallet, error)

	// FirstByUser retrieves the user's wallet with the lowest id.
	// Returns ErrWalletNotFound when the user owns none.
	FirstByUser(userID uint) (*models.Wallet, error)

	// ListWithBalanceAbove retrieves wallets whose fiat balance exceeds
	// the threshold
	ListWithBalanceAbove(threshold decimal.Decimal) ([]*models.Wallet, error)

	// SumFiatByUser sums the fiat balances of the user's wallets,
	// zero when there are none
	SumFiatByUser(userID uint) (decimal.Decimal, error)

	// Update updates an existing wallet
	Update(wallet *models.Wallet) error

	// Delete removes the wallet and its assets in one transaction
	Delete(id uint) error
}
