package repositories

import (
	"fmt"

	"coinvault/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type cryptoRepository struct {
	db *gorm.DB
}

func NewCryptocurrencyRepository(db *gorm.DB) CryptocurrencyRepository {
	return &cryptoRepository{db: db}
}

func (r *cryptoRepository) Create(crypto *models.Cryptocurrency) error {
	var count int64
	if err := r.db.Model(&models.Cryptocurrency{}).
		Where("symbol = ?", crypto.Symbol).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check symbol: %w", err)
	}
	if count > 0 {
		return ErrSymbolTaken
	}
	if err := r.db.Create(crypto).Error; err != nil {
		return fmt.Errorf("failed to create cryptocurrency: %w", err)
	}
	return nil
}

func (r *cryptoRepository) GetByID(id uint) (*models.Cryptocurrency, error) {
	var crypto models.Cryptocurrency
	if err := r.db.First(&crypto, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCryptocurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get cryptocurrency: %w", err)
	}
	return &crypto, nil
}

func (r *cryptoRepository) GetBySymbol(symbol string) (*models.Cryptocurrency, error) {
	var crypto models.Cryptocurrency
	if err := r.db.Where("symbol = ?", symbol).First(&crypto).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCryptocurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get cryptocurrency by symbol: %w", err)
	}
	return &crypto, nil
}

func (r *cryptoRepository) GetByName(name string) (*models.Cryptocurrency, error) {
	var crypto models.Cryptocurrency
	if err := r.db.Where("name = ?", name).First(&crypto).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCryptocurrencyNotFound
		}
		return nil, fmt.Errorf("failed to get cryptocurrency by name: %w", err)
	}
	return &crypto, nil
}

func (r *cryptoRepository) List() ([]*models.Cryptocurrency, error) {
	var cryptos []*models.Cryptocurrency
	if err := r.db.Order("id asc").Find(&cryptos).Error; err != nil {
		return nil, fmt.Errorf("failed to list cryptocurrencies: %w", err)
	}
	return cryptos, nil
}

func (r *cryptoRepository) ListUnused() ([]*models.Cryptocurrency, error) {
	var cryptos []*models.Cryptocurrency
	err := r.db.
		Where("NOT EXISTS (SELECT 1 FROM assets WHERE assets.cryptocurrency_id = cryptocurrencies.id)").
		Order("id asc").
		Find(&cryptos).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unused cryptocurrencies: %w", err)
	}
	return cryptos, nil
}

func (r *cryptoRepository) UpdatePrice(id uint, price decimal.Decimal) error {
	result := r.db.Model(&models.Cryptocurrency{}).
		Where("id = ?", id).
		Update("current_price", price)
	if result.Error != nil {
		return fmt.Errorf("failed to update price: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCryptocurrencyNotFound
	}
	return nil
}

func (r *cryptoRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Asset{}).
			Where("cryptocurrency_id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count asset references: %w", err)
		}
		if count > 0 {
			return ErrCryptocurrencyInUse
		}
		if err := tx.Model(&models.Transaction{}).
			Where("cryptocurrency_id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count transaction references: %w", err)
		}
		if count > 0 {
			return ErrCryptocurrencyInUse
		}

		result := tx.Delete(&models.Cryptocurrency{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete cryptocurrency: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrCryptocurrencyNotFound
		}
		return nil
	})
}
