package repositories

import (
	"errors"

	"coinvault/internal/models"
)

var (
	ErrAssetNotFound  = errors.New("asset not found")
	ErrDuplicateAsset = errors.New("asset already exists for this wallet and cryptocurrency")
)

// AssetRepository defines the interface for asset-position database operations.
type AssetRepository interface {
	// Create creates a new asset position. Returns ErrDuplicateAsset
	// when the (wallet, cryptocurrency) pair already has one.
	Create(asset *models.Asset) error

	// GetByWalletAndCrypto retrieves the position for the pair
	GetByWalletAndCrypto(walletID, cryptoID uint) (*models.Asset, error)

	// ListByWallet retrieves every position in the wallet with
	// cryptocurrencies loaded
	ListByWallet(walletID uint) ([]*models.Asset, error)

	// Update updates an existing position
	Update(asset *models.Asset) error

	// Delete removes a position
	Delete(id uint) error
}
