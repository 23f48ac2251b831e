package repositories

import (
	"fmt"
	"time"

	"coinvault/internal/models"

	"gorm.io/gorm"
)

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(tx *models.Transaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *transactionRepository) GetByID(id uint) (*models.Transaction, error) {
	var tx models.Transaction
	err := r.db.
		Preload("Sender").
		Preload("Receiver").
		Preload("Cryptocurrency").
		First(&tx, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &tx, nil
}

func (r *transactionRepository) ListByUser(userID uint) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Preload("Cryptocurrency").
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListByCryptocurrency(cryptoID uint) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("cryptocurrency_id = ?", cryptoID).
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by cryptocurrency: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListInRange(start, end time.Time) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in range: %w", err)
	}
	return txs, nil
}

func (r *transactionRepository) ListSelfTransfers() ([]*models.Transaction, error) {
	var txs []*models.Transaction
	err := r.db.
		Where("sender_id = receiver_id").
		Order("created_at desc").
		Find(&txs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list self transfers: %w", err)
	}
	return txs, nil
}
