// Package transfer implements cross-user asset transfers: a fiat
// amount is converted to crypto units at the current price, debited
// from the sender's position and credited to the receiver's, with a
// transaction record and history entries written in the same unit.
package transfer

import (
	"context"
	"fmt"
	"time"

	"coinvault/internal/errors"
	"coinvault/internal/models"
	"coinvault/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service executes transfers and answers transaction queries.
type Service interface {
	// Transfer moves fiatAmount worth of the given cryptocurrency from
	// the sender's named wallet to the receiver's first wallet. Either
	// every mutation is applied or none is.
	Transfer(ctx context.Context, senderID, receiverID, senderWalletID uint, cryptoSymbol string, fiatAmount decimal.Decimal) (*models.Transaction, error)

	// TransactionsForUser lists transactions involving the user, newest first.
	TransactionsForUser(userID uint) ([]*models.Transaction, error)

	// TransactionsInRange lists transactions created within [start, end].
	TransactionsInRange(start, end time.Time) ([]*models.Transaction, error)
}

type service struct {
	store  *repositories.Store
	logger *zap.Logger
}

// NewService creates a new transfer service.
func NewService(store *repositories.Store, logger *zap.Logger) Service {
	if store == nil {
		panic("store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{store: store, logger: logger}
}

func (s *service) Transfer(ctx context.Context, senderID, receiverID, senderWalletID uint, cryptoSymbol string, fiatAmount decimal.Decimal) (*models.Transaction, error) {
	if senderID == 0 || receiverID == 0 || senderWalletID == 0 {
		return nil, errors.ErrMissingIdentifier
	}
	if !fiatAmount.IsPositive() {
		return nil, errors.Validationf(errors.ErrInvalidAmount.Code,
			"transfer amount must be positive, got %s", fiatAmount)
	}
	if senderID == receiverID {
		return nil, errors.ErrSelfTransfer
	}

	var record *models.Transaction
	err := s.store.Atomic(func(tx *repositories.Store) error {
		sender, err := tx.Users.GetByID(senderID)
		if err != nil {
			if err == repositories.ErrUserNotFound {
				return errors.NotFoundf(errors.ErrUserNotFound.Code,
					"sender %d not found", senderID)
			}
			return err
		}
		receiver, err := tx.Users.GetByID(receiverID)
		if err != nil {
			if err == repositories.ErrUserNotFound {
				return errors.NotFoundf(errors.ErrUserNotFound.Code,
					"receiver %d not found", receiverID)
			}
			return err
		}
		crypto, err := tx.Cryptocurrencies.GetBySymbol(cryptoSymbol)
		if err != nil {
			if err == repositories.ErrCryptocurrencyNotFound {
				return errors.NotFoundf(errors.ErrCryptocurrencyNotFound.Code,
					"unsupported cryptocurrency: %s", cryptoSymbol)
			}
			return err
		}
		if !crypto.HasPrice() {
			return errors.Statef(errors.ErrPriceNotConfigured.Code,
				"cryptocurrency %s has no configured price", crypto.Symbol)
		}

		units := fiatAmount.Div(crypto.Price())

		senderWallet, err := tx.Wallets.GetByID(senderWalletID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return errors.NotFoundf(errors.ErrWalletNotFound.Code,
					"wallet %d not found", senderWalletID)
			}
			return err
		}
		if senderWallet.UserID != sender.ID {
			return errors.Securityf(errors.ErrWalletNotOwned.Code,
				"wallet %d does not belong to sender %d", senderWalletID, senderID)
		}

		senderAsset, err := tx.Assets.GetByWalletAndCrypto(senderWallet.ID, crypto.ID)
		if err != nil {
			if err == repositories.ErrAssetNotFound {
				return errors.Validationf(errors.ErrAssetNotHeld.Code,
					"you do not hold %s in this wallet", crypto.Name)
			}
			return err
		}
		if senderAsset.Quantity.LessThan(units) {
			held := senderAsset.Quantity
			return errors.Validationf(errors.ErrInsufficientBalance.Code,
				"insufficient balance: you hold %s %s (value $%s), tried to send $%s",
				held.StringFixed(4), crypto.Symbol,
				held.Mul(crypto.Price()).StringFixed(2), fiatAmount.StringFixed(2))
		}

		senderAsset.Quantity = senderAsset.Quantity.Sub(units)
		if err := tx.Assets.Update(senderAsset); err != nil {
			return err
		}

		// The receiver has no say in which wallet is credited; the
		// lowest wallet id wins.
		receiverWallet, err := tx.Wallets.FirstByUser(receiver.ID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return errors.Statef(errors.ErrReceiverHasNoWallet.Code,
					"receiver %s has no wallet to receive assets", receiver.Name)
			}
			return err
		}

		receiverAsset, err := tx.Assets.GetByWalletAndCrypto(receiverWallet.ID, crypto.ID)
		if err == repositories.ErrAssetNotFound {
			receiverAsset = &models.Asset{
				WalletID:         receiverWallet.ID,
				CryptocurrencyID: crypto.ID,
				Quantity:         decimal.Zero,
			}
			if err := tx.Assets.Create(receiverAsset); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		receiverAsset.Quantity = receiverAsset.Quantity.Add(units)
		if err := tx.Assets.Update(receiverAsset); err != nil {
			return err
		}

		record = &models.Transaction{
			Reference:        uuid.NewString(),
			SenderID:         sender.ID,
			ReceiverID:       receiver.ID,
			CryptocurrencyID: crypto.ID,
			Quantity:         units,
		}
		if err := tx.Transactions.Create(record); err != nil {
			return err
		}

		return s.appendHistories(tx, sender, receiver, crypto, fiatAmount, units)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("transfer committed",
		zap.String("reference", record.Reference),
		zap.Uint("sender_id", senderID),
		zap.Uint("receiver_id", receiverID),
		zap.String("symbol", cryptoSymbol),
		zap.String("quantity", record.Quantity.String()))
	return record, nil
}

// appendHistories writes the [SENT]/[RECEIVED] lines. A user without a
// history simply gets no entry; the transfer itself is unaffected.
func (s *service) appendHistories(tx *repositories.Store, sender, receiver *models.User, crypto *models.Cryptocurrency, fiat, units decimal.Decimal) error {
	detail := fmt.Sprintf("$%s (%s %s)", fiat.StringFixed(2), units.StringFixed(4), crypto.Symbol)

	if senderHistory, err := tx.Histories.GetByUser(sender.ID); err == nil {
		senderHistory.Append("[SENT] " + detail + " to " + receiver.Name)
		if err := tx.Histories.Update(senderHistory); err != nil {
			return err
		}
	} else if err != repositories.ErrHistoryNotFound {
		return err
	}

	if receiverHistory, err := tx.Histories.GetByUser(receiver.ID); err == nil {
		receiverHistory.Append("[RECEIVED] " + detail + " from " + sender.Name)
		if err := tx.Histories.Update(receiverHistory); err != nil {
			return err
		}
	} else if err != repositories.ErrHistoryNotFound {
		return err
	}
	return nil
}

func (s *service) TransactionsForUser(userID uint) ([]*models.Transaction, error) {
	if _, err := s.store.Users.GetByID(userID); err != nil {
		if err == repositories.ErrUserNotFound {
			return nil, errors.NotFoundf(errors.ErrUserNotFound.Code,
				"user %d not found", userID)
		}
		return nil, err
	}
	return s.store.Transactions.ListByUser(userID)
}

func (s *service) TransactionsInRange(start, end time.Time) ([]*models.Transaction, error) {
	return s.store.Transactions.ListInRange(start, end)
}
