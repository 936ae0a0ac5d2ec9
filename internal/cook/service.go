// Package cook deducts a recipe's ingredient lines from a user's fridge.
package cook

import (
	"context"
	"fmt"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
	"github.com/dmorales/recetario/internal/repository"
	"github.com/dmorales/recetario/internal/units"
)

// Service defines the interface for the cook operation
type Service interface {
	Cook(ctx context.Context, userID, recipeID string) ([]domain.FridgeEntry, error)
}

type service struct {
	fridges     repository.Fridge
	recipes     repository.Recipe
	ingredients repository.Ingredient
	lockManager *concurrency.LockManager
}

// NewService creates a new cook service
func NewService(fridges repository.Fridge, recipes repository.Recipe, ingredients repository.Ingredient, lockManager *concurrency.LockManager) Service {
	return &service{
		fridges:     fridges,
		recipes:     recipes,
		ingredients: ingredients,
		lockManager: lockManager,
	}
}

// Cook deducts each recipe line from the user's fridge and returns the
// updated entry list.
//
// A line only targets the fridge entry carrying the same ingredient id and
// the same unit string; lines with no such entry are skipped without error.
// Lines without a quantity or unit ("al gusto") are skipped too. When the
// normalized units still differ, the required quantity is converted into the
// fridge entry's unit first. Deduction never leaves a zero or negative
// entry: stock at or below the required amount removes the entry outright.
func (s *service) Cook(ctx context.Context, userID, recipeID string) ([]domain.FridgeEntry, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}

	var result []domain.FridgeEntry
	err = s.lockManager.WithLock(concurrency.FridgeKey(userID), func() error {
		fridge, err := s.fridges.GetFridge(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get fridge: %w", err)
		}
		if fridge == nil {
			return domain.ErrFridgeNotFound
		}

		for _, line := range recipe.Ingredients {
			if line.Quantity == nil || line.Unit == nil {
				continue
			}

			idx := findDeductionTarget(fridge, line.IngredientID, *line.Unit)
			if idx < 0 {
				log.Debug("No fridge entry for recipe line", "ingredientID", line.IngredientID, "unit", *line.Unit)
				continue
			}

			required, err := s.requiredInFridgeUnit(ctx, line, fridge.Entries[idx].Unit)
			if err != nil {
				return err
			}

			if fridge.Entries[idx].Quantity > required {
				fridge.Entries[idx].Quantity -= required
			} else {
				fridge.RemoveEntry(idx)
			}
		}

		if err := s.fridges.UpdateFridge(ctx, userID, *fridge); err != nil {
			return fmt.Errorf("failed to update fridge: %w", err)
		}
		result = fridge.Entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecipesCooked.WithLabelValues(string(recipe.Type)).Inc()
	log.Info("Recipe cooked", "userID", userID, "recipeID", recipeID, "title", recipe.Title)
	return result, nil
}

// findDeductionTarget locates the fridge entry with the same ingredient id
// and the exact same unit string as the recipe line. Unlike merge matching
// this is not normalized; a differently cased fridge unit is not a target.
func findDeductionTarget(f *domain.Fridge, ingredientID, unit string) int {
	for i, e := range f.Entries {
		if e.IngredientID == ingredientID && e.Unit == unit {
			return i
		}
	}
	return -1
}

// requiredInFridgeUnit expresses the line's quantity in the fridge entry's
// unit, converting through the rate table when the normalized units differ.
// The ingredient name is resolved from the catalog for the converter's
// error messages.
func (s *service) requiredInFridgeUnit(ctx context.Context, line domain.RecipeIngredient, fridgeUnit string) (float64, error) {
	from := domain.NormalizeUnit(*line.Unit)
	to := domain.NormalizeUnit(fridgeUnit)
	if from == to {
		return *line.Quantity, nil
	}

	ing, err := s.ingredients.GetIngredientByID(ctx, line.IngredientID)
	if err != nil {
		return 0, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if ing == nil {
		return 0, domain.ErrIngredientNotFound
	}

	return units.Convert(ing.Name, *line.Quantity, units.Unit(from), units.Unit(to))
}
