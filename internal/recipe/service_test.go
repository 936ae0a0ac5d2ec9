package recipe

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
)

func newTestService(repo *FakeRepository) Service {
	return NewService(repo, concurrency.NewLockManager())
}

func TestCreateRecipe(t *testing.T) {
	t.Run("assigns an id and persists", func(t *testing.T) {
		repo := NewFakeRepository()
		svc := newTestService(repo)

		created, err := svc.CreateRecipe(context.Background(), domain.Recipe{
			Title:      "Seco de pollo",
			Type:       domain.TypeEcuatoriana,
			Difficulty: domain.DifficultyIntermedio,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotNil(t, created.Ratings)

		stored, err := repo.GetRecipeByID(context.Background(), created.ID)
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, "Seco de pollo", stored.Title)
	})

	t.Run("forces quick recipes into the Rápida type", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		created, err := svc.CreateRecipe(context.Background(), domain.Recipe{
			Title:        "Huevo frito",
			Type:         domain.TypeEcuatoriana,
			TimeRequired: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.TypeRapida, created.Type)
	})

	t.Run("sixteen minutes keeps the declared type", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		created, err := svc.CreateRecipe(context.Background(), domain.Recipe{
			Title:        "Pasta al pesto",
			Type:         domain.TypeItaliana,
			TimeRequired: 16,
		})

		require.NoError(t, err)
		assert.Equal(t, domain.TypeItaliana, created.Type)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.CreateRecipe(context.Background(), domain.Recipe{
			Title: "Sopa",
			Type:  domain.RecipeType("Francesa"),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRecipeField)
	})

	t.Run("rejects unknown difficulty", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.CreateRecipe(context.Background(), domain.Recipe{
			Title:      "Sopa",
			Type:       domain.TypeEcuatoriana,
			Difficulty: domain.Difficulty("Imposible"),
		})

		assert.ErrorIs(t, err, domain.ErrInvalidRecipeField)
	})
}

func TestUpdateRecipe(t *testing.T) {
	t.Run("updates fields but preserves rating state", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed(domain.Recipe{
			ID:          "r-1",
			Title:       "Encebollado",
			Type:        domain.TypeEcuatoriana,
			Rating:      4.5,
			RatingCount: 2,
			RatingTotal: 9,
			Ratings: []domain.RecipeRating{
				{UserID: "user-1", Value: 4},
				{UserID: "user-2", Value: 5},
			},
		})
		svc := newTestService(repo)

		updated, err := svc.UpdateRecipe(context.Background(), domain.Recipe{
			ID:          "r-1",
			Title:       "Encebollado de albacora",
			Type:        domain.TypeEcuatoriana,
			Rating:      1,
			RatingCount: 0,
		})

		require.NoError(t, err)
		assert.Equal(t, "Encebollado de albacora", updated.Title)
		assert.Equal(t, 4.5, updated.Rating)
		assert.Equal(t, 2, updated.RatingCount)
		assert.Equal(t, 9, updated.RatingTotal)
		assert.Len(t, updated.Ratings, 2)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.UpdateRecipe(context.Background(), domain.Recipe{ID: "nope", Title: "X"})

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestGetRecipes(t *testing.T) {
	repo := NewFakeRepository()
	repo.Seed(
		domain.Recipe{ID: "r-1", Title: "Tiramisú", Type: domain.TypePostres, Difficulty: domain.DifficultyAvanzado, Rating: 4.8},
		domain.Recipe{ID: "r-2", Title: "Tacos", Type: domain.TypeMexicana, Difficulty: domain.DifficultyPrincipiante, Rating: 3.1},
		domain.Recipe{ID: "r-3", Title: "Flan", Type: domain.TypePostres, Difficulty: domain.DifficultyPrincipiante, Rating: 4.2},
	)
	svc := newTestService(repo)

	t.Run("by id", func(t *testing.T) {
		got, err := svc.GetRecipeByID(context.Background(), "r-2")

		require.NoError(t, err)
		assert.Equal(t, "Tacos", got.Title)
	})

	t.Run("by id not found", func(t *testing.T) {
		_, err := svc.GetRecipeByID(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("by type", func(t *testing.T) {
		got, err := svc.GetRecipesByType(context.Background(), domain.TypePostres)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r-1", got[0].ID)
		assert.Equal(t, "r-3", got[1].ID)
	})

	t.Run("by type rejects unknown value", func(t *testing.T) {
		_, err := svc.GetRecipesByType(context.Background(), domain.RecipeType("Marciana"))

		assert.ErrorIs(t, err, domain.ErrInvalidRecipeField)
	})

	t.Run("by difficulty", func(t *testing.T) {
		got, err := svc.GetRecipesByDifficulty(context.Background(), domain.DifficultyPrincipiante)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("popular sorts by rating", func(t *testing.T) {
		got, err := svc.GetPopularRecipes(context.Background())

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "r-1", got[0].ID)
		assert.Equal(t, "r-3", got[1].ID)
		assert.Equal(t, "r-2", got[2].ID)
	})

	t.Run("recommended caps at the limit", func(t *testing.T) {
		big := NewFakeRepository()
		for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			big.Seed(domain.Recipe{ID: id, Title: id, Type: domain.TypeItaliana})
		}

		got, err := newTestService(big).GetRecommendedRecipes(context.Background(), "user-1")

		require.NoError(t, err)
		require.Len(t, got, RecommendedLimit)
		assert.Equal(t, "a", got[0].ID)
		assert.Equal(t, "e", got[4].ID)
	})
}

func TestSearch(t *testing.T) {
	repo := NewFakeRepository()
	repo.Seed(
		domain.Recipe{ID: "r-1", Title: "Arroz blanco", Ingredients: []domain.RecipeIngredient{
			{IngredientID: "arroz"},
		}},
		domain.Recipe{ID: "r-2", Title: "Arroz con pollo", Ingredients: []domain.RecipeIngredient{
			{IngredientID: "arroz"}, {IngredientID: "pollo"},
		}},
	)
	svc := newTestService(repo)

	t.Run("exact", func(t *testing.T) {
		got, err := svc.SearchExact(context.Background(), []string{"arroz"})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "r-1", got[0].ID)
	})

	t.Run("proximity", func(t *testing.T) {
		got, err := svc.SearchByProximity(context.Background(), []string{"arroz"})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "r-1", got[0].Recipe.ID)
		assert.Equal(t, "r-2", got[1].Recipe.ID)
		assert.Equal(t, []string{"pollo"}, got[1].MissingIngredientIDs)
	})
}

func TestRateRecipe(t *testing.T) {
	t.Run("persists the updated aggregate", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed(domain.Recipe{ID: "r-1", Title: "Ceviche", Type: domain.TypeEcuatoriana})
		svc := newTestService(repo)

		rated, err := svc.RateRecipe(context.Background(), "r-1", "user-1", 5)

		require.NoError(t, err)
		assert.Equal(t, 5.0, rated.Rating)

		stored, err := repo.GetRecipeByID(context.Background(), "r-1")
		require.NoError(t, err)
		assert.Equal(t, 1, stored.RatingCount)
		assert.Equal(t, 5, stored.RatingTotal)
	})

	t.Run("re-rating by the same user keeps count stable", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed(domain.Recipe{ID: "r-1", Title: "Ceviche", Type: domain.TypeEcuatoriana})
		svc := newTestService(repo)

		_, err := svc.RateRecipe(context.Background(), "r-1", "user-1", 2)
		require.NoError(t, err)
		rated, err := svc.RateRecipe(context.Background(), "r-1", "user-1", 4)
		require.NoError(t, err)

		assert.Equal(t, 1, rated.RatingCount)
		assert.Equal(t, 4, rated.RatingTotal)
		assert.Equal(t, 4.0, rated.Rating)
	})

	t.Run("invalid value", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed(domain.Recipe{ID: "r-1", Title: "Ceviche", Type: domain.TypeEcuatoriana})
		svc := newTestService(repo)

		_, err := svc.RateRecipe(context.Background(), "r-1", "user-1", 0)

		assert.ErrorIs(t, err, domain.ErrInvalidRating)
	})

	t.Run("unknown recipe", func(t *testing.T) {
		svc := newTestService(NewFakeRepository())

		_, err := svc.RateRecipe(context.Background(), "missing", "user-1", 3)

		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("concurrent raters all land in the entry list", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.Seed(domain.Recipe{ID: "r-1", Title: "Ceviche", Type: domain.TypeEcuatoriana})
		svc := newTestService(repo)

		var wg sync.WaitGroup
		users := []string{"u-1", "u-2", "u-3", "u-4", "u-5", "u-6", "u-7", "u-8"}
		for _, u := range users {
			wg.Add(1)
			go func(userID string) {
				defer wg.Done()
				_, err := svc.RateRecipe(context.Background(), "r-1", userID, 3)
				assert.NoError(t, err)
			}(u)
		}
		wg.Wait()

		stored, err := repo.GetRecipeByID(context.Background(), "r-1")
		require.NoError(t, err)
		assert.Equal(t, len(users), stored.RatingCount)
		assert.Equal(t, 3*len(users), stored.RatingTotal)
		assert.Equal(t, 3.0, stored.Rating)
	})
}
