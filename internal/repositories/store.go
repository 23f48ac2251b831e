package repositories

import (
	"gorm.io/gorm"
)

// Store bundles every repository over one database handle. Atomic
// yields a Store bound to a transaction, so a multi-repository
// operation commits or rolls back as a unit.
type Store struct {
	db *gorm.DB

	Users            UserRepository
	Wallets          WalletRepository
	Assets           AssetRepository
	Cryptocurrencies CryptocurrencyRepository
	Transactions     TransactionRepository
	Histories        HistoryRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:               db,
		Users:            NewUserRepository(db),
		Wallets:          NewWalletRepository(db),
		Assets:           NewAssetRepository(db),
		Cryptocurrencies: NewCryptocurrencyRepository(db),
		Transactions:     NewTransactionRepository(db),
		Histories:        NewHistoryRepository(db),
	}
}

// Atomic runs fn inside a database transaction. Returning an error
// rolls back every mutation made through the yielded Store.
func (s *Store) Atomic(fn func(*Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
