package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/repository"
)

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		ctx := context.Background()
		testDBConnString, terminate = setupContainer(ctx)
		if testDBConnString != "" {
			pool, err := pgxpool.New(ctx, testDBConnString)
			if err != nil {
				fmt.Printf("WARNING: Failed to create pool: %v\n", err)
			} else {
				testPool = pool
			}
		}
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}

	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

func createTestUser(t *testing.T, repo *UserRepository, username string) *domain.User {
	t.Helper()
	user := &domain.User{ID: uuid.NewString(), Username: username, Name: "Test", Email: username + "@example.com"}
	require.NoError(t, repo.CreateUser(context.Background(), user))
	return user
}

func TestUserRepository_CRUD(t *testing.T) {
	requireDB(t)
	repo := NewUserRepository(testPool)
	ctx := context.Background()

	user := createTestUser(t, repo, "dmorales")

	got, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "dmorales", got.Username)

	byName, err := repo.GetUserByUsername(ctx, "dmorales")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, user.ID, byName.ID)

	got.Name = "Diana"
	require.NoError(t, repo.UpdateUser(ctx, *got))
	updated, err := repo.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Diana", updated.Name)

	missing, err := repo.GetUserByID(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFridgeRepository_RoundTrip(t *testing.T) {
	requireDB(t)
	users := NewUserRepository(testPool)
	repo := NewFridgeRepository(testPool)
	ctx := context.Background()

	user := createTestUser(t, users, "fridge-owner")

	got, err := repo.GetFridge(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	fridge := domain.Fridge{UserID: user.ID, Entries: []domain.FridgeEntry{
		{IngredientID: uuid.NewString(), Quantity: 500, Unit: "gramo", AddedAt: time.Now().UTC().Truncate(time.Second)},
	}}
	require.NoError(t, repo.UpdateFridge(ctx, user.ID, fridge))

	got, err = repo.GetFridge(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, 500.0, got.Entries[0].Quantity)
	assert.Equal(t, "gramo", got.Entries[0].Unit)

	require.NoError(t, repo.DeleteFridge(ctx, user.ID))
	got, err = repo.GetFridge(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIngredientRepository_UniqueName(t *testing.T) {
	requireDB(t)
	repo := NewIngredientRepository(testPool)
	ctx := context.Background()

	ing := &domain.Ingredient{ID: uuid.NewString(), Name: "Tomate", Units: []string{"gramo", "taza"}, DefaultUnit: "gramo"}
	require.NoError(t, repo.CreateIngredient(ctx, ing))

	dup := &domain.Ingredient{ID: uuid.NewString(), Name: "Tomate"}
	err := repo.CreateIngredient(ctx, dup)
	assert.ErrorIs(t, err, domain.ErrIngredientExists)

	got, err := repo.GetIngredientByName(ctx, "Tomate")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"gramo", "taza"}, got.Units)
}

func seedRecipe(t *testing.T, repo *RecipeRepository, recipe domain.Recipe) domain.Recipe {
	t.Helper()
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	require.NoError(t, repo.CreateRecipe(context.Background(), &recipe))
	return recipe
}

func TestRecipeRepository_FiltersAndRatedBy(t *testing.T) {
	requireDB(t)
	repo := NewRecipeRepository(testPool)
	ctx := context.Background()

	rater := uuid.NewString()
	seedRecipe(t, repo, domain.Recipe{
		Title: "Tiramisú", Type: domain.TypePostres, Difficulty: domain.DifficultyAvanzado,
		Rating: 4.5, RatingCount: 1, RatingTotal: 5,
		Ratings: []domain.RecipeRating{{UserID: rater, Value: 5}},
	})
	seedRecipe(t, repo, domain.Recipe{
		Title: "Tacos", Type: domain.TypeMexicana, Difficulty: domain.DifficultyPrincipiante, Rating: 3,
		Ratings: []domain.RecipeRating{},
	})

	byType, err := repo.GetRecipesByType(ctx, domain.TypePostres)
	require.NoError(t, err)
	require.Len(t, byType, 1)
	assert.Equal(t, "Tiramisú", byType[0].Title)

	byDifficulty, err := repo.GetRecipesByDifficulty(ctx, domain.DifficultyPrincipiante)
	require.NoError(t, err)
	require.Len(t, byDifficulty, 1)
	assert.Equal(t, "Tacos", byDifficulty[0].Title)

	popular, err := repo.GetPopularRecipes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular, 1)
	assert.Equal(t, "Tiramisú", popular[0].Title)

	rated, err := repo.GetRecipesRatedBy(ctx, rater)
	require.NoError(t, err)
	require.Len(t, rated, 1)
	assert.Equal(t, "Tiramisú", rated[0].Title)

	rated, err = repo.GetRecipesRatedBy(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, rated)
}

func TestUserTx_DeletionCascade(t *testing.T) {
	requireDB(t)
	users := NewUserRepository(testPool)
	fridges := NewFridgeRepository(testPool)
	favorites := NewFavoriteRepository(testPool)
	recipes := NewRecipeRepository(testPool)
	ctx := context.Background()

	user := createTestUser(t, users, "leaving")
	require.NoError(t, fridges.UpdateFridge(ctx, user.ID, domain.Fridge{UserID: user.ID}))
	require.NoError(t, favorites.UpdateFavorites(ctx, user.ID, domain.Favorites{UserID: user.ID, RecipeIDs: []string{"x"}}))
	rated := seedRecipe(t, recipes, domain.Recipe{
		Title: "X", Type: domain.TypeItaliana,
		Rating: 4, RatingCount: 1, RatingTotal: 4,
		Ratings: []domain.RecipeRating{{UserID: user.ID, Value: 4}},
	})

	tx, err := users.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	stripped := rated
	stripped.Ratings = []domain.RecipeRating{}
	stripped.Rating, stripped.RatingCount, stripped.RatingTotal = 0, 0, 0
	require.NoError(t, tx.UpdateRecipe(ctx, stripped))
	require.NoError(t, tx.DeleteFridge(ctx, user.ID))
	require.NoError(t, tx.DeleteFavorites(ctx, user.ID))
	require.NoError(t, tx.DeleteProfile(ctx, user.ID))
	require.NoError(t, tx.DeleteHistory(ctx, user.ID))
	require.NoError(t, tx.DeleteUser(ctx, user.ID))
	require.NoError(t, tx.Commit(ctx))

	gone, err := users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	fridge, err := fridges.GetFridge(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, fridge)

	got, err := recipes.GetRecipeByID(ctx, rated.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Ratings)
	assert.Zero(t, got.RatingCount)
}

func TestUserTx_RollbackLeavesState(t *testing.T) {
	requireDB(t)
	users := NewUserRepository(testPool)
	ctx := context.Background()

	user := createTestUser(t, users, "staying")

	tx, err := users.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.DeleteUser(ctx, user.ID))
	require.NoError(t, tx.Rollback(ctx))

	still, err := users.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, still)
}
