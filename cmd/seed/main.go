// Command seed loads a small demo data set: two users with wallets,
// a priced bitcoin and an unpriced ether.
package main

import (
	"context"
	"log"

	"coinvault/internal/config"
	"coinvault/internal/repositories"
	"coinvault/internal/services/crypto"
	"coinvault/internal/services/user"
	"coinvault/internal/services/wallet"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	db, err := repositories.Connect(config.DatabaseDSN(), repositories.DefaultPoolConfig())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	logger := zap.NewNop()
	store := repositories.NewStore(db)
	userService := user.NewService(store, logger)
	walletService := wallet.NewService(store, repositories.NewNoopCache(), logger)
	cryptoService := crypto.NewService(store, logger)

	ctx := context.Background()

	if _, err := userService.GetByEmail("alice@coinvault.dev"); err == nil {
		log.Println("Demo data already present")
		return
	}

	if _, err := userService.Create("Alice", "alice@coinvault.dev", "account opened by seeder"); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}
	if _, err := userService.Create("Bob", "bob@coinvault.dev", "account opened by seeder"); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	btcPrice := decimal.NewFromInt(50000)
	if _, err := cryptoService.Create("Bitcoin", "BTC", &btcPrice); err != nil {
		log.Fatalf("Failed to create cryptocurrency: %v", err)
	}
	if _, err := cryptoService.Create("Ether", "ETH", nil); err != nil {
		log.Fatalf("Failed to create cryptocurrency: %v", err)
	}

	aliceWallet, err := walletService.Create(ctx, "alice@coinvault.dev", decimal.NewFromInt(1000))
	if err != nil {
		log.Fatalf("Failed to create wallet: %v", err)
	}
	if _, err := walletService.Create(ctx, "bob@coinvault.dev", decimal.NewFromInt(250)); err != nil {
		log.Fatalf("Failed to create wallet: %v", err)
	}

	btc, err := cryptoService.GetBySymbol("BTC")
	if err != nil {
		log.Fatalf("Failed to look up cryptocurrency: %v", err)
	}
	if _, err := walletService.Invest(ctx, aliceWallet.ID, btc.ID, decimal.NewFromInt(500)); err != nil {
		log.Fatalf("Failed to invest: %v", err)
	}

	log.Println("Demo data loaded")
}
