package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"coinvault/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis connection configuration.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and returns a wallet cache. The
// connection is verified with a ping before use.
func NewRedisCache(cfg RedisConfig) (CacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Minute
	}
	return &redisCache{client: client, ttl: ttl}, nil
}

func walletKey(id uint) string {
	return fmt.Sprintf("wallet:%d", id)
}

func (c *redisCache) GetWallet(ctx context.Context, walletID uint) (*models.Wallet, error) {
	data, err := c.client.Get(ctx, walletKey(walletID)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet from cache: %w", err)
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to decode cached wallet: %w", err)
	}
	return &wallet, nil
}

func (c *redisCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to encode wallet for cache: %w", err)
	}
	return c.client.Set(ctx, walletKey(wallet.ID), data, c.ttl).Err()
}

func (c *redisCache) DeleteWallet(ctx context.Context, walletID uint) error {
	return c.client.Del(ctx, walletKey(walletID)).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}
