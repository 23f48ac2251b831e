package wallet

import (
	"context"

	"coinvault/internal/models"

	"github.com/shopspring/decimal"
)

// Service manages wallets and their asset positions.
type Service interface {
	// Create opens a wallet for the user identified by email, holding
	// the given initial fiat balance.
	Create(ctx context.Context, userEmail string, initialBalance decimal.Decimal) (*models.Wallet, error)

	// Get retrieves a wallet with its asset positions loaded.
	Get(ctx context.Context, id uint) (*models.Wallet, error)

	// ListByUserEmail retrieves the user's wallets ordered by id.
	ListByUserEmail(ctx context.Context, email string) ([]*models.Wallet, error)

	// AddAsset attaches a zero-quantity position for the cryptocurrency.
	AddAsset(ctx context.Context, walletID, cryptoID uint) (*models.Asset, error)

	// RemoveAsset deletes the wallet's position for the cryptocurrency.
	RemoveAsset(ctx context.Context, walletID, cryptoID uint) error

	// Invest buys crypto units with fiat held in the wallet: debits the
	// fiat balance and credits the position by fiatAmount / price.
	Invest(ctx context.Context, walletID, cryptoID uint, fiatAmount decimal.Decimal) (*models.Asset, error)

	// TotalNetWorth sums, across the user's wallets, fiat balance plus
	// the fiat value of every position. Unpriced positions count zero.
	TotalNetWorth(ctx context.Context, userEmail string) (decimal.Decimal, error)

	// Delete removes a wallet and its positions.
	Delete(ctx context.Context, id uint) error
}
