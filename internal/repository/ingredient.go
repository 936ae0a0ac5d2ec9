package repository

import (
	"context"

	"github.com/dmorales/recetario/internal/domain"
)

// Ingredient defines the interface for ingredient catalog persistence
type Ingredient interface {
	CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error
	UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) error
	GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error)
	GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error)
	GetIngredientsByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error)
	GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) error
}
