package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/config"
	"github.com/dmorales/recetario/internal/cook"
	"github.com/dmorales/recetario/internal/database"
	"github.com/dmorales/recetario/internal/database/postgres"
	"github.com/dmorales/recetario/internal/favorite"
	"github.com/dmorales/recetario/internal/fridge"
	"github.com/dmorales/recetario/internal/handler"
	"github.com/dmorales/recetario/internal/history"
	"github.com/dmorales/recetario/internal/ingredient"
	"github.com/dmorales/recetario/internal/profile"
	"github.com/dmorales/recetario/internal/recipe"
	"github.com/dmorales/recetario/internal/server"
	"github.com/dmorales/recetario/internal/user"
)

// ShutdownTimeout bounds graceful shutdown of in-flight requests
const ShutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	initLogger(cfg)

	if err := config.ValidateEnv(); err != nil {
		return err
	}

	// Request validation must be ready before the router serves traffic
	handler.InitValidator()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	// Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	ingredientRepo := postgres.NewIngredientRepository(dbPool)
	fridgeRepo := postgres.NewFridgeRepository(dbPool)
	recipeRepo := postgres.NewRecipeRepository(dbPool)
	favoriteRepo := postgres.NewFavoriteRepository(dbPool)
	historyRepo := postgres.NewHistoryRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// Per-key locks shared by every service that mutates fridges or recipes
	lockManager := concurrency.NewLockManager()

	services := server.Services{
		User:       user.NewService(userRepo),
		Ingredient: ingredient.NewService(ingredientRepo, cfg.IngredientCacheSize, cfg.IngredientCacheTTL),
		Fridge:     fridge.NewService(fridgeRepo, lockManager),
		Recipe:     recipe.NewService(recipeRepo, lockManager),
		Cook:       cook.NewService(fridgeRepo, recipeRepo, ingredientRepo, lockManager),
		Favorite:   favorite.NewService(favoriteRepo, recipeRepo),
		History:    history.NewService(historyRepo, recipeRepo),
		Profile:    profile.NewService(profileRepo, userRepo),
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, services)

	// Serve until interrupted
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		return err
	}

	slog.Info("Server stopped")
	return nil
}
