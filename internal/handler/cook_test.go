package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/cook"
	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/fridge"
	"github.com/dmorales/recetario/internal/ingredient"
	"github.com/dmorales/recetario/internal/recipe"
)

func newCookTestRouter(fridges *fridge.FakeRepository, recipes *recipe.FakeRepository) *chi.Mux {
	svc := cook.NewService(fridges, recipes, ingredient.NewFakeRepository(), concurrency.NewLockManager())

	r := chi.NewRouter()
	r.Post("/users/{userID}/cook", HandleCookRecipe(svc))
	return r
}

func TestHandleCookRecipe(t *testing.T) {
	InitValidator()

	quantity := 2.0
	unit := "taza"
	seedRecipe := domain.Recipe{
		ID:    "r-1",
		Title: "Arroz blanco",
		Type:  domain.TypeRapida, Difficulty: domain.DifficultyPrincipiante,
		Ingredients: []domain.RecipeIngredient{
			{IngredientID: "ing-arroz", Quantity: &quantity, Unit: &unit},
		},
	}

	t.Run("Success", func(t *testing.T) {
		fridges := fridge.NewFakeRepository()
		fridges.Seed("user-1", []domain.FridgeEntry{
			{IngredientID: "ing-arroz", Quantity: 5, Unit: "taza"},
		})
		recipes := recipe.NewFakeRepository()
		recipes.Seed(seedRecipe)
		router := newCookTestRouter(fridges, recipes)

		body, _ := json.Marshal(CookRecipeRequest{RecipeID: "r-1"})
		req := httptest.NewRequest("POST", "/users/user-1/cook", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp FridgeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 3.0, resp.Items[0].Quantity)
	})

	t.Run("Unknown Recipe", func(t *testing.T) {
		fridges := fridge.NewFakeRepository()
		fridges.Seed("user-1", []domain.FridgeEntry{})
		router := newCookTestRouter(fridges, recipe.NewFakeRepository())

		body, _ := json.Marshal(CookRecipeRequest{RecipeID: "nope"})
		req := httptest.NewRequest("POST", "/users/user-1/cook", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgRecipeNotFoundError)
	})

	t.Run("Missing Fridge", func(t *testing.T) {
		recipes := recipe.NewFakeRepository()
		recipes.Seed(seedRecipe)
		router := newCookTestRouter(fridge.NewFakeRepository(), recipes)

		body, _ := json.Marshal(CookRecipeRequest{RecipeID: "r-1"})
		req := httptest.NewRequest("POST", "/users/user-1/cook", bytes.NewBuffer(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgFridgeNotFoundError)
	})

	t.Run("Missing Recipe ID", func(t *testing.T) {
		router := newCookTestRouter(fridge.NewFakeRepository(), recipe.NewFakeRepository())

		req := httptest.NewRequest("POST", "/users/user-1/cook", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
