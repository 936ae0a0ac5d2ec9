package recipe

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
)

// benchCatalog builds a catalog of n recipes drawing ingredients from a
// shared pool, so proximity searches produce a realistic mix of partial
// and full matches.
func benchCatalog(n int) []domain.Recipe {
	recipes := make([]domain.Recipe, 0, n)
	for i := 0; i < n; i++ {
		ingredients := make([]domain.RecipeIngredient, 0, 6)
		for j := 0; j < 6; j++ {
			ingredients = append(ingredients, domain.RecipeIngredient{
				IngredientID: fmt.Sprintf("ing-%d", (i+j*7)%40),
			})
		}
		recipes = append(recipes, domain.Recipe{
			ID:          fmt.Sprintf("recipe-%d", i),
			Title:       fmt.Sprintf("Receta %d", i),
			Type:        domain.TypeEcuatoriana,
			Difficulty:  domain.DifficultyIntermedio,
			Ingredients: ingredients,
		})
	}
	return recipes
}

func BenchmarkService_SearchByProximity(b *testing.B) {
	repo := NewFakeRepository()
	repo.Seed(benchCatalog(200)...)
	svc := NewService(repo, concurrency.NewLockManager())
	ctx := context.Background()

	available := []string{"ing-1", "ing-3", "ing-8", "ing-15", "ing-22", "ing-39"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SearchByProximity(ctx, available); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkService_SearchExact(b *testing.B) {
	repo := NewFakeRepository()
	repo.Seed(benchCatalog(200)...)
	svc := NewService(repo, concurrency.NewLockManager())
	ctx := context.Background()

	// A superset large enough to fully cover some catalog entries
	available := make([]string, 0, 40)
	for i := 0; i < 40; i++ {
		available = append(available, fmt.Sprintf("ing-%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.SearchExact(ctx, available); err != nil {
			b.Fatal(err)
		}
	}
}
