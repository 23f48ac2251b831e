// Package routes defines the API routing configuration.
// It wires repositories into services, services into handlers, and
// registers all HTTP routes.
package routes

import (
	"coinvault/internal/handlers"
	"coinvault/internal/repositories"
	"coinvault/internal/services/crypto"
	"coinvault/internal/services/transfer"
	"coinvault/internal/services/user"
	"coinvault/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cache repositories.CacheRepository, logger *zap.Logger) {
	store := repositories.NewStore(db)

	userService := user.NewService(store, logger)
	walletService := wallet.NewService(store, cache, logger)
	cryptoService := crypto.NewService(store, logger)
	transferService := transfer.NewService(store, logger)

	userHandler := handlers.NewUserHandler(userService)
	walletHandler := handlers.NewWalletHandler(walletService)
	cryptoHandler := handlers.NewCryptoHandler(cryptoService)
	transferHandler := handlers.NewTransferHandler(transferService)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to CoinVault API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	users := api.Group("/users")
	users.Post("/", userHandler.CreateUser)
	users.Get("/", userHandler.ListUsers)
	users.Get("/:id", userHandler.GetUser)
	users.Delete("/:id", userHandler.DeleteUser)
	users.Get("/:id/history", userHandler.GetHistory)

	wallets := api.Group("/wallets")
	wallets.Post("/", walletHandler.CreateWallet)
	wallets.Get("/", walletHandler.ListWallets)
	wallets.Get("/net-worth", walletHandler.NetWorth)
	wallets.Get("/:id", walletHandler.GetWallet)
	wallets.Delete("/:id", walletHandler.DeleteWallet)
	wallets.Post("/:id/assets", walletHandler.AddAsset)
	wallets.Delete("/:id/assets/:cryptoID", walletHandler.RemoveAsset)
	wallets.Post("/:id/invest", walletHandler.Invest)

	cryptos := api.Group("/cryptocurrencies")
	cryptos.Post("/", cryptoHandler.CreateCryptocurrency)
	cryptos.Get("/", cryptoHandler.ListCryptocurrencies)
	cryptos.Get("/:id", cryptoHandler.GetCryptocurrency)
	cryptos.Put("/:id/price", cryptoHandler.SetPrice)
	cryptos.Delete("/:id", cryptoHandler.DeleteCryptocurrency)

	api.Post("/transfers", transferHandler.CreateTransfer)
	api.Get("/transactions", transferHandler.ListTransactions)
}
