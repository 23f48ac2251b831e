package repositories

import (
	"errors"

	"coinvault/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrCryptocurrencyNotFound = errors.New("cryptocurrency not found")
	ErrSymbolTaken            = errors.New("cryptocurrency symbol already taken")
	// ErrCryptocurrencyInUse is a referential integrity failure: the
	// cryptocurrency is still referenced by an asset or a transaction.
	ErrCryptocurrencyInUse = errors.New("cryptocurrency is still referenced by assets or transactions")
)

// CryptocurrencyRepository defines the interface for cryptocurrency
// database operations.
type CryptocurrencyRepository interface {
	// Create creates a new cryptocurrency. Returns ErrSymbolTaken when
	// the symbol is already registered.
	Create(crypto *models.Cryptocurrency) error

	// GetByID retrieves a cryptocurrency by id
	GetByID(id uint) (*models.Cryptocurrency, error)

	// GetBySymbol retrieves a cryptocurrency by its ticker symbol
	GetBySymbol(symbol string) (*models.Cryptocurrency, error)

	// GetByName retrieves a cryptocurrency by its full name
	GetByName(name string) (*models.Cryptocurrency, error)

	// List retrieves all cryptocurrencies
	List() ([]*models.Cryptocurrency, error)

	// ListUnused retrieves cryptocurrencies not referenced by any asset
	ListUnused() ([]*models.Cryptocurrency, error)

	// UpdatePrice sets the current price
	UpdatePrice(id uint, price decimal.Decimal) error

	// Delete removes a cryptocurrency. Fails with
	// ErrCryptocurrencyInUse while any asset or transaction references it.
	Delete(id uint) error
}
