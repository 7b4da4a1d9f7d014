// Package main is the entry point for the merchant portal API.
// It initializes all dependencies, sets up the HTTP server,
// and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/config"
	"github.com/Ramiogue/dashboard-app2/internal/identity"
	"github.com/Ramiogue/dashboard-app2/internal/repositories/cache"
	"github.com/Ramiogue/dashboard-app2/internal/routes"
	"github.com/Ramiogue/dashboard-app2/internal/services/dataset"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Identity: the static users file is the only credential store.
	usersFile := config.GetEnv("USERS_FILE", "users.yaml")
	provider, err := identity.Load(usersFile)
	if err != nil {
		log.Fatalf("Failed to load users file: %v", err)
	}
	log.Printf("Loaded %d user(s) from %s", len(provider.Usernames()), usersFile)

	// Snapshot cache: redis when configured, in-process otherwise.
	snapshotCache := buildCache()
	defer func() {
		if err := snapshotCache.Close(); err != nil {
			log.Printf("Failed to close cache: %v", err)
		}
	}()

	// Dataset pipeline: candidate CSV locations tried in order.
	loader := dataset.NewLoader(
		config.GetEnv("TRANSACTIONS_CSV", "sample_merchant_transactions.csv"),
		config.GetEnv("TRANSACTIONS_CSV_FALLBACK", "data/sample_merchant_transactions.csv"),
	)
	ttl := config.GetDurationEnv("DATASET_CACHE_TTL", 60*time.Second)
	datasetService := dataset.NewService(loader, snapshotCache, ttl)

	// Warm the snapshot cache; a load failure is also surfaced per-request.
	if _, err := datasetService.Snapshot(context.Background()); err != nil {
		log.Printf("Dataset not ready at startup: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGIN", "http://localhost:5173"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	// Routes
	routes.SetupRoutes(app, provider, datasetService)

	// Start server
	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}

// buildCache wires the redis snapshot cache when REDIS_HOST is set and
// reachable, and degrades to the in-process cache otherwise.
func buildCache() cache.Cache {
	host := config.GetEnv("REDIS_HOST", "")
	if host == "" {
		log.Println("REDIS_HOST not set, using in-process snapshot cache")
		return cache.NewMemoryCache()
	}

	client := cache.NewRedisClient(&cache.RedisConfig{
		Host:     host,
		Port:     config.GetEnv("REDIS_PORT", "6379"),
		Password: config.GetEnv("REDIS_PASSWORD", ""),
		DB:       config.GetIntEnv("REDIS_DB", 0),
	})
	redisCache := cache.NewRedisCache(client)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.HealthCheck(ctx); err != nil {
		log.Printf("Redis unavailable, using in-process snapshot cache: %v", err)
		return cache.NewMemoryCache()
	}

	log.Println("Connected to redis snapshot cache")
	return redisCache
}
