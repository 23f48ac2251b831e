package repositories

import (
	"errors"
	"time"

	"coinvault/internal/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionRepository defines the interface for transaction-record
// database operations. Records are insert-only; there is no update.
type TransactionRepository interface {
	// Create persists a new transaction record
	Create(tx *models.Transaction) error

	// GetByID retrieves a transaction by id
	GetByID(id uint) (*models.Transaction, error)

	// ListByUser retrieves transactions where the user is sender or
	// receiver, newest first
	ListByUser(userID uint) ([]*models.Transaction, error)

	// ListByCryptocurrency retrieves transactions of one cryptocurrency,
	// newest first
	ListByCryptocurrency(cryptoID uint) ([]*models.Transaction, error)

	// ListInRange retrieves transactions created within [start, end],
	// newest first
	ListInRange(start, end time.Time) ([]*models.Transaction, error)

	// ListSelfTransfers retrieves transactions whose sender and receiver
	// are the same user. The transfer operation rejects these, so any
	// hit points at data written outside it.
	ListSelfTransfers() ([]*models.Transaction, error)
}
