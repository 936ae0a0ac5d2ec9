package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/domain"
)

func TestCreateUser(t *testing.T) {
	t.Run("assigns an id", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		created, err := svc.CreateUser(context.Background(), domain.User{Username: "dmorales", Name: "Diana"})

		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		repo := NewFakeRepository()
		repo.SeedUser(domain.User{ID: "u-1", Username: "dmorales"})
		svc := NewService(repo)

		_, err := svc.CreateUser(context.Background(), domain.User{Username: "dmorales"})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("rejects a blank username", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		_, err := svc.CreateUser(context.Background(), domain.User{Username: "   "})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestGetUser(t *testing.T) {
	repo := NewFakeRepository()
	repo.SeedUser(domain.User{ID: "u-1", Username: "dmorales"})
	svc := NewService(repo)

	t.Run("by id", func(t *testing.T) {
		got, err := svc.GetUserByID(context.Background(), "u-1")

		require.NoError(t, err)
		assert.Equal(t, "dmorales", got.Username)
	})

	t.Run("by username", func(t *testing.T) {
		got, err := svc.GetUserByUsername(context.Background(), "dmorales")

		require.NoError(t, err)
		assert.Equal(t, "u-1", got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetUserByID(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func seedCascadeFixture(repo *FakeRepository) {
	repo.SeedUser(domain.User{ID: "u-1", Username: "dmorales"})
	repo.Profiles["u-1"] = &domain.Profile{UserID: "u-1"}
	repo.Fridges["u-1"] = &domain.Fridge{UserID: "u-1"}
	repo.Favorites["u-1"] = &domain.Favorites{UserID: "u-1", RecipeIDs: []string{"x"}}
	repo.Histories["u-1"] = &domain.History{UserID: "u-1"}
	repo.SeedRecipe(domain.Recipe{
		ID: "x", Title: "X",
		Rating: 3.5, RatingCount: 2, RatingTotal: 7,
		Ratings: []domain.RecipeRating{
			{UserID: "u-1", Value: 4},
			{UserID: "u-2", Value: 3},
		},
	})
	repo.SeedRecipe(domain.Recipe{
		ID: "y", Title: "Y",
		Rating: 5, RatingCount: 1, RatingTotal: 5,
		Ratings: []domain.RecipeRating{
			{UserID: "u-1", Value: 5},
		},
	})
	repo.SeedRecipe(domain.Recipe{
		ID: "z", Title: "Z",
		Rating: 2, RatingCount: 1, RatingTotal: 2,
		Ratings: []domain.RecipeRating{
			{UserID: "u-3", Value: 2},
		},
	})
}

func TestDeleteUser(t *testing.T) {
	t.Run("cascades across every collection", func(t *testing.T) {
		repo := NewFakeRepository()
		seedCascadeFixture(repo)
		svc := NewService(repo)

		require.NoError(t, svc.DeleteUser(context.Background(), "u-1"))

		got, err := repo.GetUserByID(context.Background(), "u-1")
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.NotContains(t, repo.Profiles, "u-1")
		assert.NotContains(t, repo.Fridges, "u-1")
		assert.NotContains(t, repo.Favorites, "u-1")
		assert.NotContains(t, repo.Histories, "u-1")
	})

	t.Run("strips ratings and recomputes aggregates", func(t *testing.T) {
		repo := NewFakeRepository()
		seedCascadeFixture(repo)
		svc := NewService(repo)

		require.NoError(t, svc.DeleteUser(context.Background(), "u-1"))

		x := repo.Recipes["x"]
		require.Len(t, x.Ratings, 1)
		assert.Equal(t, "u-2", x.Ratings[0].UserID)
		assert.Equal(t, 1, x.RatingCount)
		assert.Equal(t, 3, x.RatingTotal)
		assert.Equal(t, 3.0, x.Rating)

		y := repo.Recipes["y"]
		assert.Empty(t, y.Ratings)
		assert.Zero(t, y.RatingCount)
		assert.Zero(t, y.RatingTotal)
		assert.Zero(t, y.Rating)

		// untouched rater keeps their recipe intact
		z := repo.Recipes["z"]
		assert.Len(t, z.Ratings, 1)
		assert.Equal(t, 2.0, z.Rating)
	})

	t.Run("failed commit leaves everything in place", func(t *testing.T) {
		repo := NewFakeRepository()
		seedCascadeFixture(repo)
		repo.FailCommit = true
		svc := NewService(repo)

		err := svc.DeleteUser(context.Background(), "u-1")

		require.Error(t, err)
		got, gerr := repo.GetUserByID(context.Background(), "u-1")
		require.NoError(t, gerr)
		assert.NotNil(t, got)
		assert.Contains(t, repo.Profiles, "u-1")
		assert.Len(t, repo.Recipes["x"].Ratings, 2)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewService(NewFakeRepository())

		err := svc.DeleteUser(context.Background(), "missing")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
