package repositories

import (
	"fmt"

	"coinvault/internal/models"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("email = ?", user.Email).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("History").First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("History").Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) List() ([]*models.User, error) {
	var users []*models.User
	if err := r.db.Order("id asc").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListByCryptoSymbol(symbol string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.
		Distinct("users.*").
		Joins("JOIN wallets ON wallets.user_id = users.id").
		Joins("JOIN assets ON assets.wallet_id = wallets.id").
		Joins("JOIN cryptocurrencies ON cryptocurrencies.id = assets.cryptocurrency_id").
		Where("cryptocurrencies.symbol = ?", symbol).
		Order("users.id asc").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users by crypto symbol: %w", err)
	}
	return users, nil
}

func (r *userRepository) ListWithMultipleWallets() ([]*models.User, error) {
	var users []*models.User
	err := r.db.
		Joins("JOIN wallets ON wallets.user_id = users.id").
		Group("users.id").
		Having("COUNT(wallets.id) > 1").
		Order("users.id asc").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users with multiple wallets: %w", err)
	}
	return users, nil
}

// Delete removes the user and cascades explicitly, oldest dependency
// first, inside one transaction. Declarative FK cascades are avoided
// on purpose; the deletion order is the contract.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("sender_id = ? OR receiver_id = ?", id, id).
			Delete(&models.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to delete user transactions: %w", err)
		}

		walletIDs := tx.Model(&models.Wallet{}).Select("id").Where("user_id = ?", id)
		if err := tx.Where("wallet_id IN (?)", walletIDs).Delete(&models.Asset{}).Error; err != nil {
			return fmt.Errorf("failed to delete user assets: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.Wallet{}).Error; err != nil {
			return fmt.Errorf("failed to delete user wallets: %w", err)
		}

		if err := tx.Where("user_id = ?", id).Delete(&models.History{}).Error; err != nil {
			return fmt.Errorf("failed to delete user history: %w", err)
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete user: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
}
