package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/manhnguyen41/FoodRecommender/internal/catalog"
	"github.com/manhnguyen41/FoodRecommender/internal/engine"
	"github.com/manhnguyen41/FoodRecommender/internal/family"
	"github.com/manhnguyen41/FoodRecommender/internal/history"
	"github.com/manhnguyen41/FoodRecommender/internal/logger"
	"github.com/manhnguyen41/FoodRecommender/internal/matrix"
	"github.com/manhnguyen41/FoodRecommender/internal/server"
	"github.com/manhnguyen41/FoodRecommender/internal/task"
)

// historyRetentionDays bounds the served-meal log; older records are dropped
// at startup.
const historyRetentionDays = 30

func main() {
	// .env is optional; env vars set in the shell still apply.
	_ = godotenv.Load()

	cfg, clearCache := InitConfig()
	logger.SetDebug(cfg.Server.Debug)

	cache, err := matrix.NewCache(cfg.Paths.Cache)
	if err != nil {
		logger.Fatal("Failed to init matrix cache: %v", err)
	}

	if clearCache {
		if err := cache.Clear(); err != nil {
			logger.Fatal("Failed to clear matrix cache: %v", err)
		}
		logger.Info("Similarity matrix cache cleared")
		return
	}

	matrices, err := cache.LoadSet()
	if err != nil {
		logger.Fatal("Failed to load similarity matrices: %v", err)
	}
	logger.Info("Loaded similarity matrices: recipes=%v ingredients=%v tags=%v",
		matrices.HasRecipeMatrix(), matrices.HasIngredientMatrix(), matrices.HasTagMatrix())

	provider, err := buildProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to init catalog provider: %v", err)
	}
	logger.Info("Loaded catalog: %d recipes, %d ingredients, %d tags",
		len(provider.Recipes()), len(provider.Ingredients()), len(provider.Tags()))

	var hist history.Store
	if cfg.Paths.History != "" {
		fileStore, err := history.NewFileStore(cfg.Paths.History)
		if err != nil {
			logger.Fatal("Failed to open meal history: %v", err)
		}
		if err := fileStore.Cleanup(historyRetentionDays); err != nil {
			logger.Error("Failed to trim meal history: %v", err)
		}
		hist = fileStore
	}

	var families family.Provider
	if cfg.Paths.Families != "" {
		families, err = family.NewStaticProvider(cfg.Paths.Families)
		if err != nil {
			logger.Fatal("Failed to load family profiles: %v", err)
		}
	}

	eng := engine.New(provider, matrices)
	srv := server.NewServer(eng, task.NewManager(), families, hist)

	logger.Info("Starting HTTP server on port %s...", cfg.Server.Port)
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Server failed: %v", err)
	}
}

func buildProvider(cfg *Config) (catalog.Provider, error) {
	switch cfg.Catalog.Provider {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			logger.Fatal("DATABASE_URL not set for postgres catalog provider")
		}
		ctx := context.Background()
		pool, err := catalog.ConnectPool(ctx, dsn)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return catalog.NewPostgresProvider(ctx, pool)
	default:
		return catalog.NewFileProvider(cfg.Paths.Data)
	}
}
