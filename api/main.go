package main

import (
	"context"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/kozlekmarchewkowy/warehouse-manager/internal/cache"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/config"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/db"
	api "github.com/kozlekmarchewkowy/warehouse-manager/internal/http"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/http/handlers"
	rl "github.com/kozlekmarchewkowy/warehouse-manager/internal/http/rate_limiter"
	"github.com/kozlekmarchewkowy/warehouse-manager/internal/repo"
)

// @title Warehouse Manager API
// @version 1.0
// @description REST API for managing warehouse categories, products and statistics.
// @host localhost:8080
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Invalid configuration:", err)
	}

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Could not connect to database:", err)
	}
	defer database.Close()

	var store cache.Store
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
		})
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("Could not connect to Redis: %v", err)
		}
		defer rdb.Close()
		store = cache.NewRedisStore(rdb, ctx)
	} else {
		log.Println("REDIS_ADDR not set, using in-process category cache")
		store = cache.NewMemoryStore()
	}

	categoryRepo := repo.NewCachedCategoryRepository(
		repo.NewPostgresCategoryRepository(database), store, cfg.CategoryCacheTTL)
	handlers.SetCategoryRepo(categoryRepo)
	handlers.SetProductRepo(repo.NewPostgresProductRepository(database))

	go rl.StartVisitorCleanupLoop()

	r := api.RateLimitMiddleware(api.NewRouter())
	log.Printf("✅ Server running on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		log.Fatal(err)
	}
}
