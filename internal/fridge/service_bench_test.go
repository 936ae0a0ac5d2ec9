package fridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
)

func BenchmarkService_MergeAdd(b *testing.B) {
	repo := NewFakeRepository()

	seed := make([]domain.FridgeEntry, 0, 50)
	for i := 0; i < 50; i++ {
		seed = append(seed, domain.FridgeEntry{
			IngredientID: fmt.Sprintf("ing-%d", i),
			Quantity:     100,
			Unit:         "gramo",
		})
	}
	repo.Seed("bench-user", seed)

	svc := NewService(repo, concurrency.NewLockManager())
	ctx := context.Background()

	// Same keys every iteration, so the fridge size stays constant
	entries := make([]EntryInput, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, EntryInput{
			IngredientID: fmt.Sprintf("ing-%d", i),
			Quantity:     1,
			Unit:         "gramo",
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.MergeAdd(ctx, "bench-user", entries); err != nil {
			b.Fatal(err)
		}
	}
}
