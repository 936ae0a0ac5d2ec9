// Package recipe manages the recipe catalog: authoring, search by
// ingredient coverage, and per-user ratings with their aggregates.
package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Result set limits for the deterministic discovery queries
const (
	PopularLimit     = 10
	RecommendedLimit = 5
)

// Repository defines the interface for data access required by the recipe service
type Repository interface {
	repository.Recipe
}

// Service defines the interface for recipe operations
type Service interface {
	CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error)
	GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipesByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error)
	GetRecipesByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error)
	GetPopularRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecommendedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error)

	SearchExact(ctx context.Context, ingredientIDs []string) ([]domain.Recipe, error)
	SearchByProximity(ctx context.Context, ingredientIDs []string) ([]ProximityMatch, error)

	RateRecipe(ctx context.Context, recipeID, userID string, value int) (*domain.Recipe, error)
}

type service struct {
	repo        Repository
	lockManager *concurrency.LockManager
}

// NewService creates a new recipe service
func NewService(repo Repository, lockManager *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		lockManager: lockManager,
	}
}

// normalizeRecipe applies the authoring rules shared by create and update:
// a recipe done in QuickRecipeMaxMinutes or less is always typed "Rápida",
// and type/difficulty must come from the closed enums.
func normalizeRecipe(recipe *domain.Recipe) error {
	if recipe.TimeRequired > 0 && recipe.TimeRequired <= domain.QuickRecipeMaxMinutes {
		recipe.Type = domain.TypeRapida
	}
	if recipe.Difficulty != "" && !domain.ValidDifficulties[recipe.Difficulty] {
		return fmt.Errorf("%w: difficulty %q", domain.ErrInvalidRecipeField, recipe.Difficulty)
	}
	if recipe.Type != "" && !domain.ValidRecipeTypes[recipe.Type] {
		return fmt.Errorf("%w: type %q", domain.ErrInvalidRecipeField, recipe.Type)
	}
	return nil
}

func (s *service) CreateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	if err := normalizeRecipe(&recipe); err != nil {
		log.Warn("Rejected recipe", "error", err, "title", recipe.Title)
		return nil, err
	}

	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.Ratings == nil {
		recipe.Ratings = []domain.RecipeRating{}
	}

	if err := s.repo.CreateRecipe(ctx, &recipe); err != nil {
		log.Error("Failed to create recipe", "error", err, "title", recipe.Title)
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	log.Info("Recipe created", "recipeID", recipe.ID, "title", recipe.Title)
	return &recipe, nil
}

func (s *service) UpdateRecipe(ctx context.Context, recipe domain.Recipe) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrRecipeNotFound
	}

	if err := normalizeRecipe(&recipe); err != nil {
		log.Warn("Rejected recipe update", "error", err, "recipeID", recipe.ID)
		return nil, err
	}

	// Rating state is owned by RateRecipe and the deletion cascade
	recipe.Rating = existing.Rating
	recipe.RatingCount = existing.RatingCount
	recipe.RatingTotal = existing.RatingTotal
	recipe.Ratings = existing.Ratings

	if err := s.repo.UpdateRecipe(ctx, recipe); err != nil {
		log.Error("Failed to update recipe", "error", err, "recipeID", recipe.ID)
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return &recipe, nil
}

func (s *service) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, nil
}

func (s *service) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return recipes, nil
}

func (s *service) GetRecipesByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error) {
	if !domain.ValidRecipeTypes[recipeType] {
		return nil, fmt.Errorf("%w: type %q", domain.ErrInvalidRecipeField, recipeType)
	}
	recipes, err := s.repo.GetRecipesByType(ctx, recipeType)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by type: %w", err)
	}
	return recipes, nil
}

func (s *service) GetRecipesByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error) {
	if !domain.ValidDifficulties[difficulty] {
		return nil, fmt.Errorf("%w: difficulty %q", domain.ErrInvalidRecipeField, difficulty)
	}
	recipes, err := s.repo.GetRecipesByDifficulty(ctx, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes by difficulty: %w", err)
	}
	return recipes, nil
}

func (s *service) GetPopularRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.repo.GetPopularRecipes(ctx, PopularLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list popular recipes: %w", err)
	}
	return recipes, nil
}

// GetRecommendedRecipes returns the first RecommendedLimit catalog entries.
// This is a plain deterministic rule, not a recommender: the catalog order
// is stable, so every user sees the same editorial picks.
func (s *service) GetRecommendedRecipes(ctx context.Context, userID string) ([]domain.Recipe, error) {
	recipes, err := s.repo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	if len(recipes) > RecommendedLimit {
		recipes = recipes[:RecommendedLimit]
	}
	return recipes, nil
}

func (s *service) SearchExact(ctx context.Context, ingredientIDs []string) ([]domain.Recipe, error) {
	catalog, err := s.repo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return FindExact(catalog, ingredientIDs), nil
}

func (s *service) SearchByProximity(ctx context.Context, ingredientIDs []string) ([]ProximityMatch, error) {
	catalog, err := s.repo.GetAllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	return FindByProximity(catalog, ingredientIDs), nil
}

// RateRecipe records a user's rating under the recipe's lock so concurrent
// raters cannot clobber each other's aggregate updates.
func (s *service) RateRecipe(ctx context.Context, recipeID, userID string, value int) (*domain.Recipe, error) {
	log := logger.FromContext(ctx)

	var rated *domain.Recipe
	err := s.lockManager.WithLock(concurrency.RecipeKey(recipeID), func() error {
		recipe, err := s.repo.GetRecipeByID(ctx, recipeID)
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}
		if recipe == nil {
			return domain.ErrRecipeNotFound
		}

		if err := ApplyRating(recipe, userID, value); err != nil {
			return err
		}

		if err := s.repo.UpdateRecipe(ctx, *recipe); err != nil {
			log.Error("Failed to persist rating", "error", err, "recipeID", recipeID)
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		rated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("Recipe rated", "recipeID", recipeID, "userID", userID, "value", value)
	return rated, nil
}
