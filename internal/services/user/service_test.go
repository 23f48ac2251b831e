package user

import (
	"testing"

	"coinvault/internal/errors"
	"coinvault/internal/models"
	"coinvault/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *repositories.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to file::memory: is a distinct database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, repositories.Migrate(db))
	return repositories.NewStore(db)
}

func TestUserService_Create(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	t.Run("creates user with history", func(t *testing.T) {
		created, err := svc.Create("Alice", "alice@example.com", "account opened")
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Alice", created.Name)
		require.NotNil(t, created.History)
		assert.Equal(t, "account opened", created.History.Detail)

		history, err := svc.GetHistory(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "account opened", history.Detail)
	})

	t.Run("trims name and email", func(t *testing.T) {
		created, err := svc.Create("  Bob  ", "bob@example.com", "note")
		require.NoError(t, err)
		assert.Equal(t, "Bob", created.Name)
		assert.Equal(t, "bob@example.com", created.Email)
	})

	t.Run("rejects short name", func(t *testing.T) {
		_, err := svc.Create("Al", "al@example.com", "note")
		assert.True(t, errors.Is(err, errors.ErrInvalidName))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		for _, email := range []string{"", "plainaddress", "missing@tld", "a@b.toolong"} {
			_, err := svc.Create("Carol", email, "note")
			assert.True(t, errors.Is(err, errors.ErrInvalidEmail), "email %q", email)
		}
	})

	t.Run("rejects blank history note", func(t *testing.T) {
		_, err := svc.Create("Carol", "carol@example.com", "   ")
		assert.True(t, errors.Is(err, errors.ErrEmptyHistoryNote))
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := svc.Create("Alice Again", "alice@example.com", "note")
		assert.True(t, errors.Is(err, errors.ErrEmailTaken))
	})
}

func TestUserService_Lookups(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	alice, err := svc.Create("Alice", "alice@example.com", "note")
	require.NoError(t, err)

	t.Run("get by id", func(t *testing.T) {
		found, err := svc.GetByID(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, alice.Email, found.Email)
	})

	t.Run("get by email", func(t *testing.T) {
		found, err := svc.GetByEmail("alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, found.ID)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := svc.GetByID(9999)
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))
		assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, err := svc.GetByEmail("nobody@example.com")
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))
	})
}

func TestUserService_ListQueries(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	alice, err := svc.Create("Alice", "alice@example.com", "note")
	require.NoError(t, err)
	bob, err := svc.Create("Bob", "bob@example.com", "note")
	require.NoError(t, err)

	btc := &models.Cryptocurrency{Name: "Bitcoin", Symbol: "BTC"}
	require.NoError(t, store.Cryptocurrencies.Create(btc))

	w1 := &models.Wallet{UserID: alice.ID, FiatBalance: decimal.NewFromInt(100)}
	w2 := &models.Wallet{UserID: alice.ID, FiatBalance: decimal.NewFromInt(200)}
	w3 := &models.Wallet{UserID: bob.ID, FiatBalance: decimal.NewFromInt(50)}
	for _, w := range []*models.Wallet{w1, w2, w3} {
		require.NoError(t, store.Wallets.Create(w))
	}
	require.NoError(t, store.Assets.Create(&models.Asset{
		WalletID:         w1.ID,
		CryptocurrencyID: btc.ID,
		Quantity:         decimal.NewFromFloat(0.5),
	}))

	t.Run("list all", func(t *testing.T) {
		users, err := svc.List()
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("list holders of a symbol", func(t *testing.T) {
		holders, err := svc.ListByCryptoSymbol("BTC")
		require.NoError(t, err)
		require.Len(t, holders, 1)
		assert.Equal(t, alice.ID, holders[0].ID)
	})

	t.Run("list users with multiple wallets", func(t *testing.T) {
		users, err := svc.ListWithMultipleWallets()
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, alice.ID, users[0].ID)
	})
}

func TestUserService_DeleteCascades(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil)

	alice, err := svc.Create("Alice", "alice@example.com", "note")
	require.NoError(t, err)
	bob, err := svc.Create("Bob", "bob@example.com", "note")
	require.NoError(t, err)

	btc := &models.Cryptocurrency{Name: "Bitcoin", Symbol: "BTC"}
	require.NoError(t, store.Cryptocurrencies.Create(btc))

	aliceWallet := &models.Wallet{UserID: alice.ID, FiatBalance: decimal.NewFromInt(100)}
	require.NoError(t, store.Wallets.Create(aliceWallet))
	bobWallet := &models.Wallet{UserID: bob.ID, FiatBalance: decimal.NewFromInt(50)}
	require.NoError(t, store.Wallets.Create(bobWallet))

	require.NoError(t, store.Assets.Create(&models.Asset{
		WalletID:         aliceWallet.ID,
		CryptocurrencyID: btc.ID,
		Quantity:         decimal.NewFromFloat(0.25),
	}))
	bobAsset := &models.Asset{
		WalletID:         bobWallet.ID,
		CryptocurrencyID: btc.ID,
		Quantity:         decimal.NewFromFloat(0.1),
	}
	require.NoError(t, store.Assets.Create(bobAsset))

	require.NoError(t, store.Transactions.Create(&models.Transaction{
		Reference:        "ref-1",
		SenderID:         alice.ID,
		ReceiverID:       bob.ID,
		CryptocurrencyID: btc.ID,
		Quantity:         decimal.NewFromFloat(0.01),
	}))

	require.NoError(t, svc.Delete(alice.ID))

	t.Run("user and owned rows are gone", func(t *testing.T) {
		_, err := svc.GetByID(alice.ID)
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))

		_, err = store.Wallets.GetByID(aliceWallet.ID)
		assert.Equal(t, repositories.ErrWalletNotFound, err)

		_, err = store.Histories.GetByUser(alice.ID)
		assert.Equal(t, repositories.ErrHistoryNotFound, err)

		txs, err := store.Transactions.ListByUser(bob.ID)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("unrelated rows survive", func(t *testing.T) {
		_, err := svc.GetByID(bob.ID)
		require.NoError(t, err)

		held, err := store.Assets.GetByWalletAndCrypto(bobWallet.ID, btc.ID)
		require.NoError(t, err)
		assert.True(t, held.Quantity.Equal(bobAsset.Quantity))

		_, err = store.Cryptocurrencies.GetByID(btc.ID)
		require.NoError(t, err)
	})

	t.Run("deleting again is not found", func(t *testing.T) {
		err := svc.Delete(alice.ID)
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))
	})
}
