// Package wallet implements wallet management: creation, asset
// positions, fiat-to-crypto investment and net worth valuation.
package wallet

import (
	"context"
	"strings"

	"coinvault/internal/errors"
	"coinvault/internal/models"
	"coinvault/internal/repositories"
	"coinvault/internal/validation"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type service struct {
	store  *repositories.Store
	cache  repositories.CacheRepository
	logger *zap.Logger
}

// NewService creates a new wallet service.
func NewService(store *repositories.Store, cache repositories.CacheRepository, logger *zap.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if cache == nil {
		cache = repositories.NewNoopCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, cache: cache, logger: logger}
}

func (s *service) Create(ctx context.Context, userEmail string, initialBalance decimal.Decimal) (*models.Wallet, error) {
	if !validation.ValidEmail(userEmail) {
		return nil, errors.Validationf(errors.ErrInvalidEmail.Code,
			"email format is invalid: %s", userEmail)
	}
	if initialBalance.IsNegative() {
		return nil, errors.Validationf(errors.ErrNegativeBalance.Code,
			"initial balance cannot be negative: %s", initialBalance)
	}

	owner, err := s.store.Users.GetByEmail(strings.TrimSpace(userEmail))
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errors.NotFoundf(errors.ErrUserNotFound.Code,
				"cannot create wallet: user not found: %s", userEmail)
		}
		return nil, err
	}

	wallet := &models.Wallet{UserID: owner.ID, FiatBalance: initialBalance}
	if err := s.store.Wallets.Create(wallet); err != nil {
		return nil, err
	}

	s.logger.Info("wallet created",
		zap.Uint("wallet_id", wallet.ID),
		zap.Uint("user_id", owner.ID))
	return wallet, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Wallet, error) {
	if cached, err := s.cache.GetWallet(ctx, id); err == nil {
		return cached, nil
	}

	wallet, err := s.store.Wallets.GetByIDWithAssets(id)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, errors.ErrWalletNotFound
		}
		return nil, err
	}

	if err := s.cache.SetWallet(ctx, wallet); err != nil {
		s.logger.Warn("failed to cache wallet", zap.Uint("wallet_id", id), zap.Error(err))
	}
	return wallet, nil
}

func (s *service) ListByUserEmail(ctx context.Context, email string) ([]*models.Wallet, error) {
	if !validation.ValidEmail(email) {
		return nil, errors.Validationf(errors.ErrInvalidEmail.Code,
			"email format is invalid: %s", email)
	}
	owner, err := s.store.Users.GetByEmail(email)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errors.NotFoundf(errors.ErrUserNotFound.Code,
				"user not found with email: %s", email)
		}
		return nil, err
	}
	return s.store.Wallets.ListByUser(owner.ID)
}

func (s *service) AddAsset(ctx context.Context, walletID, cryptoID uint) (*models.Asset, error) {
	wallet, err := s.store.Wallets.GetByID(walletID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, errors.NotFoundf(errors.ErrWalletNotFound.Code,
				"wallet %d not found", walletID)
		}
		return nil, err
	}
	crypto, err := s.store.Cryptocurrencies.GetByID(cryptoID)
	if err != nil {
		if err == repositories.ErrCryptocurrencyNotFound {
			return nil, errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
				"cryptocurrency %d not found", cryptoID)
		}
		return nil, err
	}

	// A fresh position always starts at zero, even if the pair held a
	// balance before being removed.
	asset := &models.Asset{
		WalletID:         wallet.ID,
		CryptocurrencyID: crypto.ID,
		Quantity:         decimal.Zero,
	}
	if err := s.store.Assets.Create(asset); err != nil {
		if err == repositories.ErrDuplicateAsset {
			return nil, errors.Validationf(errors.ErrDuplicateAsset.Code,
				"wallet %d already holds %s", walletID, crypto.Symbol)
		}
		return nil, err
	}
	asset.Cryptocurrency = crypto

	s.invalidate(ctx, walletID)
	return asset, nil
}

func (s *service) RemoveAsset(ctx context.Context, walletID, cryptoID uint) error {
	if _, err := s.store.Wallets.GetByID(walletID); err != nil {
		if err == repositories.ErrWalletNotFound {
			return errors.NotFoundf(errors.ErrWalletNotFound.Code,
				"wallet %d not found", walletID)
		}
		return err
	}
	crypto, err := s.store.Cryptocurrencies.GetByID(cryptoID)
	if err != nil {
		if err == repositories.ErrCryptocurrencyNotFound {
			return errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
				"cryptocurrency %d not found", cryptoID)
		}
		return err
	}

	asset, err := s.store.Assets.GetByWalletAndCrypto(walletID, cryptoID)
	if err != nil {
		if err == repositories.ErrAssetNotFound {
			return errors.Validationf(errors.ErrAssetNotHeld.Code,
				"cannot remove: wallet does not hold %s", crypto.Symbol)
		}
		return err
	}
	if err := s.store.Assets.Delete(asset.ID); err != nil {
		return err
	}

	s.invalidate(ctx, walletID)
	return nil
}

func (s *service) Invest(ctx context.Context, walletID, cryptoID uint, fiatAmount decimal.Decimal) (*models.Asset, error) {
	if !fiatAmount.IsPositive() {
		return nil, errors.Validationf(errors.ErrInvalidAmount.Code,
			"investment must be positive, got %s", fiatAmount)
	}

	var asset *models.Asset
	err := s.store.Atomic(func(tx *repositories.Store) error {
		// Re-read inside the transaction so a concurrent invest cannot
		// work from a stale balance.
		wallet, err := tx.Wallets.GetByID(walletID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return errors.NotFoundf(errors.ErrWalletNotFound.Code,
					"wallet %d not found", walletID)
			}
			return err
		}
		crypto, err := tx.Cryptocurrencies.GetByID(cryptoID)
		if err != nil {
			if err == repositories.ErrCryptocurrencyNotFound {
				return errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
					"cryptocurrency %d not found", cryptoID)
			}
			return err
		}
		if !crypto.HasPrice() {
			return errors.Statef(errors.ErrPriceNotConfigured.Code,
				"cryptocurrency %s has no configured price", crypto.Symbol)
		}
		if wallet.FiatBalance.LessThan(fiatAmount) {
			return errors.Validationf(errors.ErrInsufficientBalance.Code,
				"insufficient balance: you have $%s, tried to invest $%s",
				wallet.FiatBalance.StringFixed(2), fiatAmount.StringFixed(2))
		}

		units := fiatAmount.Div(crypto.Price())

		wallet.FiatBalance = wallet.FiatBalance.Sub(fiatAmount)
		if err := tx.Wallets.Update(wallet); err != nil {
			return err
		}

		asset, err = tx.Assets.GetByWalletAndCrypto(walletID, cryptoID)
		if err == repositories.ErrAssetNotFound {
			asset = &models.Asset{
				WalletID:         walletID,
				CryptocurrencyID: cryptoID,
				Quantity:         decimal.Zero,
			}
			if err := tx.Assets.Create(asset); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		asset.Quantity = asset.Quantity.Add(units)
		asset.Cryptocurrency = crypto
		return tx.Assets.Update(asset)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, walletID)
	s.logger.Info("investment executed",
		zap.Uint("wallet_id", walletID),
		zap.Uint("cryptocurrency_id", cryptoID),
		zap.String("fiat_amount", fiatAmount.String()),
		zap.String("quantity", asset.Quantity.String()))
	return asset, nil
}

func (s *service) TotalNetWorth(ctx context.Context, userEmail string) (decimal.Decimal, error) {
	owner, err := s.store.Users.GetByEmail(userEmail)
	if err != nil {
		if err == repositories.ErrUserNotFound {
			return decimal.Zero, errors.NotFoundf(errors.ErrUserNotFound.Code,
				"user not found with email: %s", userEmail)
		}
		return decimal.Zero, err
	}

	wallets, err := s.store.Wallets.ListByUser(owner.ID)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.NetWorth())
	}
	return total, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.store.Wallets.GetByID(id); err != nil {
		if err == repositories.ErrWalletNotFound {
			return errors.NotFoundf(errors.ErrWalletNotFound.Code,
				"wallet %d not found", id)
		}
		return err
	}
	if err := s.store.Wallets.Delete(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info("wallet deleted", zap.Uint("wallet_id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context, walletID uint) {
	if err := s.cache.DeleteWallet(ctx, walletID); err != nil {
		s.logger.Warn("failed to invalidate wallet cache",
			zap.Uint("wallet_id", walletID), zap.Error(err))
	}
}
