package favorite

import (
	"context"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for testing.
type FakeRepository struct {
	mu        sync.Mutex
	favorites map[string]*domain.Favorites
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{favorites: make(map[string]*domain.Favorites)}
}

// Seed installs a favorites record directly.
func (f *FakeRepository) Seed(userID string, recipeIDs ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites[userID] = &domain.Favorites{UserID: userID, RecipeIDs: recipeIDs}
}

func (f *FakeRepository) GetFavorites(ctx context.Context, userID string) (*domain.Favorites, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fav, ok := f.favorites[userID]
	if !ok {
		return nil, nil
	}
	cp := &domain.Favorites{UserID: fav.UserID, RecipeIDs: append([]string(nil), fav.RecipeIDs...)}
	return cp, nil
}

func (f *FakeRepository) UpdateFavorites(ctx context.Context, userID string, favorites domain.Favorites) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.favorites[userID] = &domain.Favorites{UserID: userID, RecipeIDs: append([]string(nil), favorites.RecipeIDs...)}
	return nil
}

func (f *FakeRepository) DeleteFavorites(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.favorites, userID)
	return nil
}
