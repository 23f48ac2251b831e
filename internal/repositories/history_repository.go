package repositories

import (
	"errors"

	"coinvault/internal/models"
)

var (
	ErrHistoryNotFound = errors.New("history not found")
)

// HistoryRepository defines the interface for history-log database operations.
type HistoryRepository interface {
	// Create creates a user's history log
	Create(history *models.History) error

	// GetByUser retrieves the history owned by the user
	GetByUser(userID uint) (*models.History, error)

	// GetByUserEmail retrieves the history via the owner's email
	GetByUserEmail(email string) (*models.History, error)

	// Update persists an appended log
	Update(history *models.History) error
}
