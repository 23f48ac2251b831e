package repositories

import (
	"context"
	"errors"

	"coinvault/internal/models"
)

// ErrCacheMiss is returned when the key is absent. A miss is never a
// failure; callers fall through to the database.
var ErrCacheMiss = errors.New("cache miss")

// CacheRepository is a read-through cache for wallet lookups. Writers
// invalidate, readers repopulate.
type CacheRepository interface {
	GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	DeleteWallet(ctx context.Context, walletID uint) error
	Close() error
}

// NoopCache satisfies CacheRepository without caching anything. Used in
// tests and when Redis is not configured.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) SetWallet(ctx context.Context, wallet *models.Wallet) error { return nil }

func (NoopCache) DeleteWallet(ctx context.Context, walletID uint) error { return nil }

func (NoopCache) Close() error { return nil }
