// Package ingredient manages the ingredient catalog that recipes and
// fridge entries reference by id.
package ingredient

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the ingredient service
type Repository interface {
	repository.Ingredient
}

// Service defines the interface for ingredient catalog operations
type Service interface {
	CreateIngredient(ctx context.Context, ingredient domain.Ingredient) (*domain.Ingredient, error)
	UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) (*domain.Ingredient, error)
	GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error)
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *ingredientCache
}

// NewService creates a new ingredient service with a lookup cache of the
// given size and TTL.
func NewService(repo Repository, cacheSize int, cacheTTL time.Duration) Service {
	return &service{
		repo:  repo,
		cache: newIngredientCache(cacheSize, cacheTTL),
	}
}

func (s *service) CreateIngredient(ctx context.Context, ingredient domain.Ingredient) (*domain.Ingredient, error) {
	log := logger.FromContext(ctx)

	ingredient.Name = strings.TrimSpace(ingredient.Name)
	if ingredient.Name == "" {
		return nil, fmt.Errorf("%w: ingredient name is required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetIngredientByName(ctx, ingredient.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check ingredient name: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrIngredientExists
	}

	if ingredient.ID == "" {
		ingredient.ID = uuid.NewString()
	}
	if err := s.repo.CreateIngredient(ctx, &ingredient); err != nil {
		log.Error("Failed to create ingredient", "error", err, "name", ingredient.Name)
		return nil, fmt.Errorf("failed to create ingredient: %w", err)
	}

	log.Info("Ingredient created", "ingredientID", ingredient.ID, "name", ingredient.Name)
	return &ingredient, nil
}

func (s *service) UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) (*domain.Ingredient, error) {
	existing, err := s.repo.GetIngredientByID(ctx, ingredient.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrIngredientNotFound
	}

	if err := s.repo.UpdateIngredient(ctx, ingredient); err != nil {
		return nil, fmt.Errorf("failed to update ingredient: %w", err)
	}

	s.cache.Invalidate(ingredient.ID)
	return &ingredient, nil
}

func (s *service) GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	if cached, ok := s.cache.Get(id); ok {
		return cached, nil
	}

	ing, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}

	s.cache.Set(ing)
	return ing, nil
}

func (s *service) GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	ing, err := s.repo.GetIngredientByName(ctx, strings.TrimSpace(name))
	if err != nil {
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if ing == nil {
		return nil, domain.ErrIngredientNotFound
	}
	return ing, nil
}

// GetIngredientsByIDs resolves a batch of ids, serving hits from the cache
// and fetching the remainder in one query. Unknown ids are simply absent
// from the result; callers that need strictness compare lengths.
func (s *service) GetIngredientsByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error) {
	result := make([]domain.Ingredient, 0, len(ids))
	missing := make([]string, 0)
	for _, id := range ids {
		if cached, ok := s.cache.Get(id); ok {
			result = append(result, *cached)
		} else {
			missing = append(missing, id)
		}
	}

	if len(missing) > 0 {
		fetched, err := s.repo.GetIngredientsByIDs(ctx, missing)
		if err != nil {
			return nil, fmt.Errorf("failed to get ingredients: %w", err)
		}
		for i := range fetched {
			s.cache.Set(&fetched[i])
			result = append(result, fetched[i])
		}
	}

	return result, nil
}

func (s *service) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	ingredients, err := s.repo.GetAllIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *service) DeleteIngredient(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetIngredientByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get ingredient: %w", err)
	}
	if existing == nil {
		return domain.ErrIngredientNotFound
	}

	if err := s.repo.DeleteIngredient(ctx, id); err != nil {
		log.Error("Failed to delete ingredient", "error", err, "ingredientID", id)
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}

	s.cache.Invalidate(id)
	log.Info("Ingredient deleted", "ingredientID", id)
	return nil
}
