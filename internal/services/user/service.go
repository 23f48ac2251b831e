// Package user implements user management: registration with a linked
// history log, lookups and cascading removal.
package user

import (
	"strings"

	"coinvault/internal/errors"
	"coinvault/internal/models"
	"coinvault/internal/repositories"
	"coinvault/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	// Create registers a user and its history log in one atomic unit.
	Create(name, email, historyNote string) (*models.User, error)

	// Delete removes the user and everything it owns.
	Delete(id uint) error

	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]*models.User, error)
	ListByCryptoSymbol(symbol string) ([]*models.User, error)
	ListWithMultipleWallets() ([]*models.User, error)
	GetHistory(userID uint) (*models.History, error)
}

type service struct {
	store  *repositories.Store
	logger *zap.Logger
}

// NewService creates a new user service.
func NewService(store *repositories.Store, logger *zap.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, logger: logger}
}

func (s *service) Create(name, email, historyNote string) (*models.User, error) {
	if !validation.ValidName(name) {
		return nil, errors.Validationf(errors.ErrInvalidName.Code,
			"name must have at least %d characters", validation.MinNameLength)
	}
	if !validation.ValidEmail(email) {
		return nil, errors.Validationf(errors.ErrInvalidEmail.Code,
			"email format is invalid: %s", email)
	}
	if !validation.NotBlank(historyNote) {
		return nil, errors.ErrEmptyHistoryNote
	}

	email = strings.TrimSpace(email)
	if _, err := s.store.Users.GetByEmail(email); err == nil {
		return nil, errors.Validationf(errors.ErrEmailTaken.Code,
			"email %q is already registered", email)
	} else if err != repositories.ErrUserNotFound {
		return nil, err
	}

	user := &models.User{
		Name:  strings.TrimSpace(name),
		Email: email,
	}
	err := s.store.Atomic(func(tx *repositories.Store) error {
		if err := tx.Users.Create(user); err != nil {
			if err == repositories.ErrEmailTaken {
				return errors.Validationf(errors.ErrEmailTaken.Code,
					"email %q is already registered", user.Email)
			}
			return err
		}
		history := &models.History{UserID: user.ID, Detail: historyNote}
		if err := tx.Histories.Create(history); err != nil {
			return err
		}
		user.History = history
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created",
		zap.Uint("user_id", user.ID),
		zap.String("email", user.Email))
	return user, nil
}

func (s *service) Delete(id uint) error {
	if _, err := s.store.Users.GetByID(id); err != nil {
		if err == repositories.ErrUserNotFound {
			return errors.NotFoundf(errors.ErrUserNotFound.Code,
				"cannot delete: user %d not found", id)
		}
		return err
	}
	if err := s.store.Users.Delete(id); err != nil {
		return err
	}
	s.logger.Info("user deleted", zap.Uint("user_id", id))
	return nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	user, err := s.store.Users.GetByID(id)
	if err == repositories.ErrUserNotFound {
		return nil, errors.ErrUserNotFound
	}
	return user, err
}

func (s *service) GetByEmail(email string) (*models.User, error) {
	user, err := s.store.Users.GetByEmail(email)
	if err == repositories.ErrUserNotFound {
		return nil, errors.NotFoundf(errors.ErrUserNotFound.Code,
			"user not found with email: %s", email)
	}
	return user, err
}

func (s *service) List() ([]*models.User, error) {
	return s.store.Users.List()
}

func (s *service) ListByCryptoSymbol(symbol string) ([]*models.User, error) {
	return s.store.Users.ListByCryptoSymbol(symbol)
}

func (s *service) ListWithMultipleWallets() ([]*models.User, error) {
	return s.store.Users.ListWithMultipleWallets()
}

func (s *service) GetHistory(userID uint) (*models.History, error) {
	history, err := s.store.Histories.GetByUser(userID)
	if err == repositories.ErrHistoryNotFound {
		return nil, errors.NotFoundf("HISTORY_NOT_FOUND", "no history for user %d", userID)
	}
	return history, err
}
