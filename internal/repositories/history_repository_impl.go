package repositories

import (
	"fmt"

	"coinvault/internal/models"

	"gorm.io/gorm"
)

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Create(history *models.History) error {
	if err := r.db.Create(history).Error; err != nil {
		return fmt.Errorf("failed to create history: %w", err)
	}
	return nil
}

func (r *historyRepository) GetByUser(userID uint) (*models.History, error) {
	var history models.History
	if err := r.db.Where("user_id = ?", userID).First(&history).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	return &history, nil
}

func (r *historyRepository) GetByUserEmail(email string) (*models.History, error) {
	var history models.History
	err := r.db.
		Joins("JOIN users ON users.id = histories.user_id").
		Where("users.email = ?", email).
		First(&history).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history by email: %w", err)
	}
	return &history, nil
}

func (r *historyRepository) Update(history *models.History) error {
	if err := r.db.Save(history).Error; err != nil {
		return fmt.Errorf("failed to update history: %w", err)
	}
	return nil
}
