package favorite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/recipe"
)

func newTestService(repo *FakeRepository, recipeIDs ...string) Service {
	recipes := recipe.NewFakeRepository()
	for _, id := range recipeIDs {
		recipes.Seed(domain.Recipe{ID: id, Title: id})
	}
	return NewService(repo, recipes)
}

func TestAddFavorite(t *testing.T) {
	t.Run("creates the record on first save", func(t *testing.T) {
		svc := newTestService(NewFakeRepository(), "r-1")

		got, err := svc.AddFavorite(context.Background(), "user-1", "r-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"r-1"}, got)
	})

	t.Run("saving twice keeps one entry", func(t *testing.T) {
		svc := newTestService(NewFakeRepository(), "r-1")

		_, err := svc.AddFavorite(context.Background(), "user-1", "r-1")
		require.NoError(t, err)
		got, err := svc.AddFavorite(context.Background(), "user-1", "r-1")
		require.NoError(t, err)

		assert.Equal(t, []string{"r-1"}, got)
	})

	t.Run("rejects ids missing from the catalog", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.AddFavorite(context.Background(), "user-1", "ghost")

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestRemoveFavorite(t *testing.T) {
	t.Run("removes only the named id", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed("user-1", "r-1", "r-2")
		svc := newTestService(repo, "r-1", "r-2")

		got, err := svc.RemoveFavorite(context.Background(), "user-1", "r-1")

		require.NoError(t, err)
		assert.Equal(t, []string{"r-2"}, got)
	})

	t.Run("unknown id within the set is a no-op", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed("user-1", "r-1")
		svc := newTestService(repo, "r-1")

		got, err := svc.RemoveFavorite(context.Background(), "user-1", "ghost")

		require.NoError(t, err)
		assert.Equal(t, []string{"r-1"}, got)
	})

	t.Run("user without a record", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.RemoveFavorite(context.Background(), "user-1", "r-1")

		assert.ErrorIs(t, err, domain.ErrFavoritesNotFound)
	})
}

func TestGetFavorites(t *testing.T) {
	t.Run("empty for unknown user", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		got, err := svc.GetFavorites(context.Background(), "user-1")

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}
