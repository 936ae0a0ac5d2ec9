package ingredient

import (
	"context"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for testing.
type FakeRepository struct {
	mu          sync.Mutex
	order       []string
	ingredients map[string]*domain.Ingredient

	GetByIDCalls int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		ingredients: make(map[string]*domain.Ingredient),
	}
}

// Seed installs catalog entries directly, bypassing service validation.
func (f *FakeRepository) Seed(ingredients ...domain.Ingredient) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ing := range ingredients {
		ing := ing
		if _, ok := f.ingredients[ing.ID]; !ok {
			f.order = append(f.order, ing.ID)
		}
		f.ingredients[ing.ID] = &ing
	}
}

func (f *FakeRepository) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ingredients[ingredient.ID]; !ok {
		f.order = append(f.order, ingredient.ID)
	}
	cp := *ingredient
	f.ingredients[ingredient.ID] = &cp
	return nil
}

func (f *FakeRepository) UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ingredients[ingredient.ID]; !ok {
		f.order = append(f.order, ingredient.ID)
	}
	f.ingredients[ingredient.ID] = &ingredient
	return nil
}

func (f *FakeRepository) GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.GetByIDCalls++
	ing, ok := f.ingredients[id]
	if !ok {
		return nil, nil
	}
	cp := *ing
	return &cp, nil
}

func (f *FakeRepository) GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range f.order {
		if f.ingredients[id].Name == name {
			cp := *f.ingredients[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *FakeRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Ingredient, 0, len(ids))
	for _, id := range ids {
		if ing, ok := f.ingredients[id]; ok {
			out = append(out, *ing)
		}
	}
	return out, nil
}

func (f *FakeRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Ingredient, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.ingredients[id])
	}
	return out, nil
}

func (f *FakeRepository) DeleteIngredient(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ingredients[id]; !ok {
		return nil
	}
	delete(f.ingredients, id)
	for i, existing := range f.order {
		if existing == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}
