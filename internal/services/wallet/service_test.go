package wallet

import (
	"context"
	"sync"
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

func seedUser(t *testing.T, store *repositories.Store, name, email string) *models.User {
	t.Helper()
	user := &models.User{Name: name, Email: email}
	require.NoError(t, store.Users.Create(user))
	return user
}

func seedCrypto(t *testing.T, store *repositories.Store, name, symbol string, price string) *models.Cryptocurrency {
	t.Helper()
	crypto := &models.Cryptocurrency{Name: name, Symbol: symbol}
	if price != "" {
		crypto.CurrentPrice = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	require.NoError(t, store.Cryptocurrencies.Create(crypto))
	return crypto
}

// spyCache is a map-backed CacheRepository that counts hits.
type spyCache struct {
	mu      sync.Mutex
	wallets map[uint]*models.Wallet
	hits    int
}

func newSpyCache() *spyCache {
	return &spyCache{wallets: make(map[uint]*models.Wallet)}
}

func (c *spyCache) GetWallet(_ context.Context, walletID uint) (*models.Wallet, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.wallets[walletID]
	if !ok {
		return nil, repositories.ErrCacheMiss
	}
	c.hits++
	return w, nil
}

func (c *spyCache) SetWallet(_ context.Context, wallet *models.Wallet) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wallets[wallet.ID] = wallet
	return nil
}

func (c *spyCache) DeleteWallet(_ context.Context, walletID uint) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.wallets, walletID)
	return nil
}

func (c *spyCache) Close() error { return nil }

func TestWalletService_Create(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")

	t.Run("creates wallet with initial balance", func(t *testing.T) {
		created, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.True(t, created.FiatBalance.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("zero balance is allowed", func(t *testing.T) {
		_, err := svc.Create(ctx, "alice@example.com", decimal.Zero)
		assert.NoError(t, err)
	})

	t.Run("rejects negative balance", func(t *testing.T) {
		_, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(-1))
		assert.True(t, errors.Is(err, errors.ErrNegativeBalance))
	})

	t.Run("rejects unknown user", func(t *testing.T) {
		_, err := svc.Create(ctx, "nobody@example.com", decimal.Zero)
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := svc.Create(ctx, "not-an-email", decimal.Zero)
		assert.True(t, errors.Is(err, errors.ErrInvalidEmail))
	})
}

func TestWalletService_AddRemoveAsset(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	btc := seedCrypto(t, store, "Bitcoin", "BTC", "50000")
	wallet, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
	require.NoError(t, err)

	t.Run("new position starts at zero", func(t *testing.T) {
		asset, err := svc.AddAsset(ctx, wallet.ID, btc.ID)
		require.NoError(t, err)
		assert.True(t, asset.Quantity.IsZero())
	})

	t.Run("duplicate position is rejected", func(t *testing.T) {
		_, err := svc.AddAsset(ctx, wallet.ID, btc.ID)
		assert.True(t, errors.Is(err, errors.ErrDuplicateAsset))
	})

	t.Run("re-added position starts at zero again", func(t *testing.T) {
		_, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(500))
		require.NoError(t, err)

		require.NoError(t, svc.RemoveAsset(ctx, wallet.ID, btc.ID))

		asset, err := svc.AddAsset(ctx, wallet.ID, btc.ID)
		require.NoError(t, err)
		assert.True(t, asset.Quantity.IsZero())
	})

	t.Run("removing an unheld position fails", func(t *testing.T) {
		require.NoError(t, svc.RemoveAsset(ctx, wallet.ID, btc.ID))
		err := svc.RemoveAsset(ctx, wallet.ID, btc.ID)
		assert.True(t, errors.Is(err, errors.ErrAssetNotHeld))
	})

	t.Run("unknown wallet fails", func(t *testing.T) {
		_, err := svc.AddAsset(ctx, 9999, btc.ID)
		assert.True(t, errors.Is(err, errors.ErrWalletNotFound))
	})

	t.Run("unknown cryptocurrency fails", func(t *testing.T) {
		_, err := svc.AddAsset(ctx, wallet.ID, 9999)
		assert.True(t, errors.Is(err, errors.ErrCryptocurrencyNotFound))
	})
}

func TestWalletService_Invest(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	btc := seedCrypto(t, store, "Bitcoin", "BTC", "50000")
	eth := seedCrypto(t, store, "Ether", "ETH", "")
	wallet, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
	require.NoError(t, err)

	t.Run("converts fiat at current price", func(t *testing.T) {
		asset, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(500))
		require.NoError(t, err)
		assert.True(t, asset.Quantity.Equal(decimal.RequireFromString("0.01")), "got %s", asset.Quantity)

		reloaded, err := store.Wallets.GetByID(wallet.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.FiatBalance.Equal(decimal.NewFromInt(500)))
	})

	t.Run("accumulates into the existing position", func(t *testing.T) {
		asset, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(250))
		require.NoError(t, err)
		assert.True(t, asset.Quantity.Equal(decimal.RequireFromString("0.015")), "got %s", asset.Quantity)
	})

	t.Run("insufficient balance names both figures", func(t *testing.T) {
		_, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(2000))
		require.Error(t, err)
		assert.True(t, errors.Is(err, errors.ErrInsufficientBalance))
		assert.Contains(t, err.Error(), "you have $250.00")
		assert.Contains(t, err.Error(), "tried to invest $2000.00")

		reloaded, err := store.Wallets.GetByID(wallet.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.FiatBalance.Equal(decimal.NewFromInt(250)))
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.Zero)
		assert.True(t, errors.Is(err, errors.ErrInvalidAmount))
	})

	t.Run("unpriced cryptocurrency cannot be bought", func(t *testing.T) {
		_, err := svc.Invest(ctx, wallet.ID, eth.ID, decimal.NewFromInt(10))
		assert.True(t, errors.Is(err, errors.ErrPriceNotConfigured))
		assert.Equal(t, errors.KindState, errors.KindOf(err))
	})
}

func TestWalletService_TotalNetWorth(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	btc := seedCrypto(t, store, "Bitcoin", "BTC", "50000")
	eth := seedCrypto(t, store, "Ether", "ETH", "")

	wallet, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice@example.com", decimal.NewFromInt(200))
	require.NoError(t, err)

	_, err = svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(500))
	require.NoError(t, err)

	// Unpriced holdings are worth zero until a price is set.
	require.NoError(t, store.Assets.Create(&models.Asset{
		WalletID:         wallet.ID,
		CryptocurrencyID: eth.ID,
		Quantity:         decimal.NewFromInt(3),
	}))

	t.Run("fiat plus priced holdings across wallets", func(t *testing.T) {
		total, err := svc.TotalNetWorth(ctx, "alice@example.com")
		require.NoError(t, err)
		// 500 fiat + 0.01 BTC * 50000 + 200 fiat = 1200.
		assert.True(t, total.Equal(decimal.NewFromInt(1200)), "got %s", total)
	})

	t.Run("pricing the holding raises the total", func(t *testing.T) {
		require.NoError(t, store.Cryptocurrencies.UpdatePrice(eth.ID, decimal.NewFromInt(100)))
		total, err := svc.TotalNetWorth(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(1500)), "got %s", total)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		_, err := svc.TotalNetWorth(ctx, "nobody@example.com")
		assert.True(t, errors.Is(err, errors.ErrUserNotFound))
	})
}

func TestWalletService_CachedReads(t *testing.T) {
	store := newTestStore(t)
	cache := newSpyCache()
	svc := NewService(store, cache, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	btc := seedCrypto(t, store, "Bitcoin", "BTC", "50000")
	wallet, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
	require.NoError(t, err)

	t.Run("second read is served from cache", func(t *testing.T) {
		_, err := svc.Get(ctx, wallet.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, cache.hits)

		_, err = svc.Get(ctx, wallet.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.hits)
	})

	t.Run("writes invalidate the cached wallet", func(t *testing.T) {
		_, err := svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(100))
		require.NoError(t, err)

		fresh, err := svc.Get(ctx, wallet.ID)
		require.NoError(t, err)
		assert.True(t, fresh.FiatBalance.Equal(decimal.NewFromInt(900)))
	})
}

func TestWalletService_Delete(t *testing.T) {
	store := newTestStore(t)
	svc := NewService(store, nil, nil)
	ctx := context.Background()

	seedUser(t, store, "Alice", "alice@example.com")
	btc := seedCrypto(t, store, "Bitcoin", "BTC", "50000")
	wallet, err := svc.Create(ctx, "alice@example.com", decimal.NewFromInt(1000))
	require.NoError(t, err)
	_, err = svc.Invest(ctx, wallet.ID, btc.ID, decimal.NewFromInt(500))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, wallet.ID))

	_, err = svc.Get(ctx, wallet.ID)
	assert.True(t, errors.Is(err, errors.ErrWalletNotFound))

	_, err = store.Assets.GetByWalletAndCrypto(wallet.ID, btc.ID)
	assert.Equal(t, repositories.ErrAssetNotFound, err)

	err = svc.Delete(ctx, wallet.ID)
	assert.True(t, errors.Is(err, errors.ErrWalletNotFound))
}
