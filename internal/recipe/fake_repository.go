package recipe

import (
	"context"
	"sort"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for
// testing. It keeps recipes in insertion order so catalog listings are
// deterministic across calls.
type FakeRepository struct {
	mu      sync.Mutex
	order   []string
	recipes map[string]*domain.Recipe
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		recipes: make(map[string]*domain.Recipe),
	}
}

// Seed installs recipes directly, bypassing service validation.
func (f *FakeRepository) Seed(recipes ...domain.Recipe) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range recipes {
		r := r
		if _, ok := f.recipes[r.ID]; !ok {
			f.order = append(f.order, r.ID)
		}
		f.recipes[r.ID] = &r
	}
}

func copyRecipe(r *domain.Recipe) *domain.Recipe {
	cp := *r
	cp.Ratings = append([]domain.RecipeRating(nil), r.Ratings...)
	cp.Ingredients = append([]domain.RecipeIngredient(nil), r.Ingredients...)
	cp.Steps = append([]string(nil), r.Steps...)
	return &cp
}

func (f *FakeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[recipe.ID]; !ok {
		f.order = append(f.order, recipe.ID)
	}
	f.recipes[recipe.ID] = copyRecipe(recipe)
	return nil
}

func (f *FakeRepository) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.recipes[recipe.ID]; !ok {
		f.order = append(f.order, recipe.ID)
	}
	f.recipes[recipe.ID] = copyRecipe(&recipe)
	return nil
}

func (f *FakeRepository) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recipes[recipeID]
	if !ok {
		return nil, nil
	}
	return copyRecipe(r), nil
}

func (f *FakeRepository) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.Recipe, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *copyRecipe(f.recipes[id]))
	}
	return out, nil
}

func (f *FakeRepository) GetRecipesByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Recipe
	for _, id := range f.order {
		if f.recipes[id].Type == recipeType {
			out = append(out, *copyRecipe(f.recipes[id]))
		}
	}
	return out, nil
}

func (f *FakeRepository) GetRecipesByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Recipe
	for _, id := range f.order {
		if f.recipes[id].Difficulty == difficulty {
			out = append(out, *copyRecipe(f.recipes[id]))
		}
	}
	return out, nil
}

func (f *FakeRepository) GetPopularRecipes(ctx context.Context, limit int) ([]domain.Recipe, error) {
	all, err := f.GetAllRecipes(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].Rating > all[j].Rating })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (f *FakeRepository) GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Recipe
	for _, id := range f.order {
		for _, rating := range f.recipes[id].Ratings {
			if rating.UserID == userID {
				out = append(out, *copyRecipe(f.recipes[id]))
				break
			}
		}
	}
	return out, nil
}
