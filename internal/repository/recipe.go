package repository

import (
	"context"

	"github.com/dmorales/recetario/internal/domain"
)

// Recipe defines the interface for recipe persistence
type Recipe interface {
	CreateRecipe(ctx context.Context, recipe *domain.Recipe) error
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
	GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error)
	GetAllRecipes(ctx context.Context) ([]domain.Recipe, error)
	GetRecipesByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error)
	GetRecipesByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error)
	GetPopularRecipes(ctx context.Context, limit int) ([]domain.Recipe, error)
	GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error)
}
