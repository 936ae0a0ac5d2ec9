// Package favorite manages each user's saved recipe set.
package favorite

import (
	"context"
	"fmt"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the favorite service
type Repository interface {
	repository.Favorite
}

// Service defines the interface for favorite operations
type Service interface {
	GetFavorites(ctx context.Context, userID string) ([]string, error)
	AddFavorite(ctx context.Context, userID, recipeID string) ([]string, error)
	RemoveFavorite(ctx context.Context, userID, recipeID string) ([]string, error)
}

type service struct {
	repo    Repository
	recipes repository.Recipe
}

// NewService creates a new favorite service. The recipe repository guards
// against saving ids that do not exist in the catalog.
func NewService(repo Repository, recipes repository.Recipe) Service {
	return &service{repo: repo, recipes: recipes}
}

func (s *service) GetFavorites(ctx context.Context, userID string) ([]string, error) {
	favorites, err := s.repo.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	if favorites == nil {
		return []string{}, nil
	}
	return favorites.RecipeIDs, nil
}

// AddFavorite saves a recipe id for the user. Saving an already-saved id is
// a no-op, not an error.
func (s *service) AddFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}

	favorites, err := s.repo.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	if favorites == nil {
		favorites = &domain.Favorites{UserID: userID}
	}

	if !favorites.Contains(recipeID) {
		favorites.RecipeIDs = append(favorites.RecipeIDs, recipeID)
		if err := s.repo.UpdateFavorites(ctx, userID, *favorites); err != nil {
			log.Error("Failed to update favorites", "error", err, "userID", userID)
			return nil, fmt.Errorf("failed to update favorites: %w", err)
		}
	}

	return favorites.RecipeIDs, nil
}

func (s *service) RemoveFavorite(ctx context.Context, userID, recipeID string) ([]string, error) {
	favorites, err := s.repo.GetFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	if favorites == nil {
		return nil, domain.ErrFavoritesNotFound
	}

	for i, id := range favorites.RecipeIDs {
		if id == recipeID {
			favorites.RecipeIDs = append(favorites.RecipeIDs[:i], favorites.RecipeIDs[i+1:]...)
			if err := s.repo.UpdateFavorites(ctx, userID, *favorites); err != nil {
				return nil, fmt.Errorf("failed to update favorites: %w", err)
			}
			break
		}
	}

	return favorites.RecipeIDs, nil
}
