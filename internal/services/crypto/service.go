// Package crypto implements cryptocurrency reference-data management.
package crypto

import (
	"strings"

	"coinvault/internal/errors"
	"coinvault/internal/models"
	"coinvault/internal/repositories"
	"coinvault/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	// Create registers a cryptocurrency; price may be nil when unknown.
	Create(name, symbol string, price *decimal.Decimal) (*models.Cryptocurrency, error)

	// SetPrice updates the current price.
	SetPrice(id uint, price decimal.Decimal) error

	GetByID(id uint) (*models.Cryptocurrency, error)
	GetBySymbol(symbol string) (*models.Cryptocurrency, error)
	List() ([]*models.Cryptocurrency, error)

	// ListUnused lists cryptocurrencies not held in any wallet. Only
	// these can be deleted.
	ListUnused() ([]*models.Cryptocurrency, error)

	// Delete removes an unused cryptocurrency. Referential integrity
	// failures from the store are passed through unchanged.
	Delete(id uint) error
}

type service struct {
	store  *repositories.Store
	logger *zap.Logger
}

func NewService(store *repositories.Store, logger *zap.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, logger: logger}
}

func (s *service) Create(name, symbol string, price *decimal.Decimal) (*models.Cryptocurrency, error) {
	if !validation.NotBlank(name) || !validation.NotBlank(symbol) {
		return nil, errors.Validationf("INVALID_CRYPTOCURRENCY", "name and symbol are required")
	}

	crypto := &models.Cryptocurrency{
		Name:   strings.TrimSpace(name),
		Symbol: strings.ToUpper(strings.TrimSpace(symbol)),
	}
	if price != nil {
		if !price.IsPositive() {
			return nil, errors.Validationf(errors.ErrInvalidAmount.Code,
				"price must be positive, got %s", price)
		}
		crypto.CurrentPrice = decimal.NewNullDecimal(*price)
	}

	if err := s.store.Cryptocurrencies.Create(crypto); err != nil {
		if err == repositories.ErrSymbolTaken {
			return nil, errors.Validationf(errors.ErrSymbolTaken.Code,
				"symbol %q is already registered", crypto.Symbol)
		}
		return nil, err
	}

	s.logger.Info("cryptocurrency created",
		zap.Uint("cryptocurrency_id", crypto.ID),
		zap.String("symbol", crypto.Symbol))
	return crypto, nil
}

func (s *service) SetPrice(id uint, price decimal.Decimal) error {
	if !price.IsPositive() {
		return errors.Validationf(errors.ErrInvalidAmount.Code,
			"price must be positive, got %s", price)
	}
	err := s.store.Cryptocurrencies.UpdatePrice(id, price)
	if err == repositories.ErrCryptocurrencyNotFound {
		return errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
			"cryptocurrency %d not found", id)
	}
	return err
}

func (s *service) GetByID(id uint) (*models.Cryptocurrency, error) {
	crypto, err := s.store.Cryptocurrencies.GetByID(id)
	if err == repositories.ErrCryptocurrencyNotFound {
		return nil, errors.ErrCryptocurrencyNotFound
	}
	return crypto, err
}

func (s *service) GetBySymbol(symbol string) (*models.Cryptocurrency, error) {
	crypto, err := s.store.Cryptocurrencies.GetBySymbol(symbol)
	if err == repositories.ErrCryptocurrencyNotFound {
		return nil, errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
			"unsupported cryptocurrency: %s", symbol)
	}
	return crypto, err
}

func (s *service) List() ([]*models.Cryptocurrency, error) {
	return s.store.Cryptocurrencies.List()
}

func (s *service) ListUnused() ([]*models.Cryptocurrency, error) {
	return s.store.Cryptocurrencies.ListUnused()
}

func (s *service) Delete(id uint) error {
	if _, err := s.store.Cryptocurrencies.GetByID(id); err != nil {
		if err == repositories.ErrCryptocurrencyNotFound {
			return errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
				"cryptocurrency %d not found", id)
		}
		return err
	}
	// ErrCryptocurrencyInUse propagates as-is.
	return s.store.Cryptocurrencies.Delete(id)
}
