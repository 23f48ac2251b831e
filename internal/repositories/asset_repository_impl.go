package repositories

import (
	"fmt"

	"coinvault/internal/models"

	"gorm.io/gorm"
)

type assetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepository{db: db}
}

func (r *assetRepository) Create(asset *models.Asset) error {
	var count int64
	err := r.db.Model(&models.Asset{}).
		Where("wallet_id = ? AND cryptocurrency_id = ?", asset.WalletID, asset.CryptocurrencyID).
		Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to check for existing asset: %w", err)
	}
	if count > 0 {
		return ErrDuplicateAsset
	}
	if err := r.db.Create(asset).Error; err != nil {
		return fmt.Errorf("failed to create asset: %w", err)
	}
	return nil
}

func (r *assetRepository) GetByWalletAndCrypto(walletID, cryptoID uint) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.
		Preload("Cryptocurrency").
		Where("wallet_id = ? AND cryptocurrency_id = ?", walletID, cryptoID).
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) ListByWallet(walletID uint) ([]*models.Asset, error) {
	var assets []*models.Asset
	err := r.db.
		Preload("Cryptocurrency").
		Where("wallet_id = ?", walletID).
		Order("id asc").
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	return assets, nil
}

func (r *assetRepository) Update(asset *models.Asset) error {
	if err := r.db.Save(asset).Error; err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
	}
	return nil
}

func (r *assetRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Asset{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete asset: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAssetNotFound
	}
	return nil
}
