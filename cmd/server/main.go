// Package main is the entry point for the application.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinvault/internal/config"
	"coinvault/internal/logger"
	"coinvault/internal/repositories"
	"coinvault/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()

	zapLogger, err := logger.New(
		config.GetEnv("LOG_LEVEL", "info"),
		config.GetEnv("LOG_FORMAT", "console"),
	)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	pool := repositories.DefaultPoolConfig()
	pool.MaxIdleConns = config.GetIntEnv("DB_MAX_IDLE_CONNS", pool.MaxIdleConns)
	pool.MaxOpenConns = config.GetIntEnv("DB_MAX_OPEN_CONNS", pool.MaxOpenConns)

	db, err := repositories.Connect(config.DatabaseDSN(), pool)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	zapLogger.Info("Connected to database")

	cache := newCache(zapLogger)
	defer cache.Close()

	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			zapLogger.Warn("Failed to get database instance", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			zapLogger.Warn("Failed to close database connection", zap.Error(err))
		}
	}()

	app := fiber.New(fiber.Config{
		AppName: "CoinVault",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
	}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	routes.SetupRoutes(app, db, cache, zapLogger)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		zapLogger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zapLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + config.GetEnv("PORT", "3000")
	if err := app.Listen(addr); err != nil {
		zapLogger.Fatal("Server stopped", zap.Error(err))
	}
}

// newCache builds the wallet cache from REDIS_* environment variables,
// falling back to a no-op cache when Redis is unreachable.
func newCache(zapLogger *zap.Logger) repositories.CacheRepository {
	cache, err := repositories.NewRedisCache(repositories.RedisConfig{
		Addr:     config.GetEnv("REDIS_ADDR", "localhost:6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
		TTL:      time.Duration(config.GetIntEnv("REDIS_TTL_SECONDS", 60)) * time.Second,
	})
	if err != nil {
		zapLogger.Warn("Redis unavailable, wallet caching disabled", zap.Error(err))
		return repositories.NewNoopCache()
	}
	zapLogger.Info("Connected to Redis")
	return cache
}
