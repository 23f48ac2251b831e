package repositories

import (
	"fmt"

	"coinvault/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type walletRepository struct {
	db *gorm.DB
}

func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

func (r *walletRepository) Create(wallet *models.Wallet) error {
	if err := r.db.Create(wallet).Error; err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) GetByID(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	if err := r.db.First(&wallet, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) GetByIDWithAssets(id uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.
		Preload("Assets").
		Preload("Assets.Cryptocurrency").
		First(&wallet, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListByUser(userID uint) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	err := r.db.
		Preload("Assets").
		Preload("Assets.Cryptocurrency").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}
	return wallets, nil
}

// FirstByUser picks the lowest wallet id. Transfers credit this wallet
// when the receiver owns several; the ordering keeps that choice stable.
func (r *walletRepository) FirstByUser(userID uint) (*models.Wallet, error) {
	var wallet models.Wallet
	err := r.db.
		Where("user_id = ?", userID).
		Order("id asc").
		First(&wallet).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get first wallet: %w", err)
	}
	return &wallet, nil
}

func (r *walletRepository) ListWithBalanceAbove(threshold decimal.Decimal) ([]*models.Wallet, error) {
	var wallets []*models.Wallet
	err := r.db.
		Where("fiat_balance > ?", threshold).
		Order("id asc").
		Find(&wallets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets by balance: %w", err)
	}
	return wallets, nil
}

func (r *walletRepository) SumFiatByUser(userID uint) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&models.Wallet{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(fiat_balance), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum fiat balances: %w", err)
	}
	return total, nil
}

func (r *walletRepository) Update(wallet *models.Wallet) error {
	if err := r.db.Save(wallet).Error; err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	return nil
}

func (r *walletRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wallet_id = ?", id).Delete(&models.Asset{}).Error; err != nil {
			return fmt.Errorf("failed to delete wallet assets: %w", err)
		}
		result := tx.Delete(&models.Wallet{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete wallet: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrWalletNotFound
		}
		return nil
	})
}
