package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
	"github.com/dmorales/recetario/internal/recipe"
)

// RecipeIngredientRequest is one ingredient line of a recipe request.
// Quantity and unit are optional so "al gusto" lines carry neither.
type RecipeIngredientRequest struct {
	IngredientID string   `json:"ingredient" validate:"required"`
	Quantity     *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit         *string  `json:"unit" validate:"omitempty,unit"`
}

type CreateRecipeRequest struct {
	Title        string                    `json:"title" validate:"required,max=200"`
	ImageURL     string                    `json:"imageUrl" validate:"omitempty,url"`
	Description  string                    `json:"description" validate:"omitempty,max=2000"`
	TimeRequired int                       `json:"timeRequired" validate:"omitempty,min=1"`
	Servings     int                       `json:"servings" validate:"omitempty,min=1"`
	Type         string                    `json:"type" validate:"required"`
	Difficulty   string                    `json:"difficulty" validate:"required"`
	Ingredients  []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
	Steps        []string                  `json:"steps" validate:"omitempty,dive,max=2000"`
}

func (r CreateRecipeRequest) toDomain() domain.Recipe {
	ingredients := make([]domain.RecipeIngredient, len(r.Ingredients))
	for i, line := range r.Ingredients {
		ingredients[i] = domain.RecipeIngredient{
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			Unit:         line.Unit,
		}
	}
	return domain.Recipe{
		Title:        r.Title,
		ImageURL:     r.ImageURL,
		Description:  r.Description,
		TimeRequired: r.TimeRequired,
		Servings:     r.Servings,
		Type:         domain.RecipeType(r.Type),
		Difficulty:   domain.Difficulty(r.Difficulty),
		Ingredients:  ingredients,
		Steps:        r.Steps,
	}
}

// HandleCreateRecipe adds a recipe to the catalog
// @Summary Create recipe
// @Description Create a new recipe. Recipes taking 15 minutes or less are classified as "Rápida" regardless of the declared type.
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body CreateRecipeRequest true "Recipe details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [post]
func HandleCreateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create recipe"); err != nil {
			return
		}

		created, err := svc.CreateRecipe(r.Context(), req.toDomain())
		if err != nil {
			log.Error("Failed to create recipe", "error", err, "title", req.Title)
			respondServiceError(w, err)
			return
		}

		metrics.RecipesCreated.WithLabelValues(string(created.Type)).Inc()
		log.Info("Recipe created", "recipeID", created.ID, "title", created.Title, "type", created.Type)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgRecipeCreatedSuccess, Data: created})
	}
}

// HandleGetRecipes lists recipes, optionally filtered by type or difficulty
// @Summary List recipes
// @Description Retrieve the recipe catalog. Supports optional type and difficulty query filters.
// @Tags recipes
// @Produce json
// @Param type query string false "Recipe type filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {array} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes [get]
func HandleGetRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var (
			recipes []domain.Recipe
			err     error
		)

		switch {
		case r.URL.Query().Get("type") != "":
			recipes, err = svc.GetRecipesByType(r.Context(), domain.RecipeType(r.URL.Query().Get("type")))
		case r.URL.Query().Get("difficulty") != "":
			recipes, err = svc.GetRecipesByDifficulty(r.Context(), domain.Difficulty(r.URL.Query().Get("difficulty")))
		default:
			recipes, err = svc.GetAllRecipes(r.Context())
		}

		if err != nil {
			log.Error("Failed to get recipes", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecipe returns one recipe by id
// @Summary Get recipe
// @Description Retrieve a single recipe with its ingredients, steps and rating state
// @Tags recipes
// @Produce json
// @Param recipeID path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{recipeID} [get]
func HandleGetRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		recipeID := chi.URLParam(r, "recipeID")

		rec, err := svc.GetRecipeByID(r.Context(), recipeID)
		if err != nil {
			log.Error("Failed to get recipe", "error", err, "recipeID", recipeID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, rec)
	}
}

// HandleUpdateRecipe updates a recipe's content fields
// @Summary Update recipe
// @Description Update a recipe. Rating state is preserved; the quick-recipe rule is re-applied to the new time.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeID path string true "Recipe ID"
// @Param request body CreateRecipeRequest true "Updated recipe"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{recipeID} [put]
func HandleUpdateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		recipeID := chi.URLParam(r, "recipeID")

		var req CreateRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update recipe"); err != nil {
			return
		}

		rec := req.toDomain()
		rec.ID = recipeID

		updated, err := svc.UpdateRecipe(r.Context(), rec)
		if err != nil {
			log.Error("Failed to update recipe", "error", err, "recipeID", recipeID)
			respondServiceError(w, err)
			return
		}

		log.Info("Recipe updated", "recipeID", recipeID)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRecipeUpdatedSuccess, Data: updated})
	}
}

// HandleGetPopularRecipes returns the highest-rated recipes
// @Summary Popular recipes
// @Description Retrieve the top recipes ordered by average rating
// @Tags recipes
// @Produce json
// @Success 200 {array} domain.Recipe
// @Failure 500 {object} ErrorResponse
// @Router /recipes/popular [get]
func HandleGetPopularRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		recipes, err := svc.GetPopularRecipes(r.Context())
		if err != nil {
			log.Error("Failed to get popular recipes", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleGetRecommendedRecipes returns recipe suggestions for a user
// @Summary Recommended recipes
// @Description Retrieve recipe suggestions for the given user
// @Tags recipes
// @Produce json
// @Param userID query string true "User ID"
// @Success 200 {array} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/recommended [get]
func HandleGetRecommendedRecipes(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, ok := GetQueryParam(r, w, "userID")
		if !ok {
			return
		}

		recipes, err := svc.GetRecommendedRecipes(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get recommended recipes", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, recipes)
	}
}

type SearchRecipesRequest struct {
	IngredientIDs []string `json:"ingredients" validate:"required,min=1"`
}

// HandleSearchExact finds recipes fully covered by the given ingredients
// @Summary Exact recipe search
// @Description Find every recipe whose ingredients are all contained in the given list
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body SearchRecipesRequest true "Available ingredient ids"
// @Success 200 {array} domain.Recipe
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/search/exact [post]
func HandleSearchExact(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SearchRecipesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Exact search"); err != nil {
			return
		}

		recipes, err := svc.SearchExact(r.Context(), req.IngredientIDs)
		if err != nil {
			log.Error("Failed to perform search", "error", err, "mode", metrics.SearchModeExact)
			respondServiceError(w, err)
			return
		}

		metrics.SearchesPerformed.WithLabelValues(metrics.SearchModeExact).Inc()
		respondJSON(w, http.StatusOK, recipes)
	}
}

// HandleSearchByProximity ranks recipes by ingredient coverage
// @Summary Proximity recipe search
// @Description Rank recipes that share at least one ingredient with the given list, closest match first
// @Tags recipes
// @Accept json
// @Produce json
// @Param request body SearchRecipesRequest true "Available ingredient ids"
// @Success 200 {array} recipe.ProximityMatch
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/search/proximity [post]
func HandleSearchByProximity(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SearchRecipesRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Proximity search"); err != nil {
			return
		}

		matches, err := svc.SearchByProximity(r.Context(), req.IngredientIDs)
		if err != nil {
			log.Error("Failed to perform search", "error", err, "mode", metrics.SearchModeProximity)
			respondServiceError(w, err)
			return
		}

		metrics.SearchesPerformed.WithLabelValues(metrics.SearchModeProximity).Inc()
		respondJSON(w, http.StatusOK, matches)
	}
}

type RateRecipeRequest struct {
	UserID string `json:"userId" validate:"required"`
	Value  int    `json:"value" validate:"required,min=1,max=5"`
}

// HandleRateRecipe records a user's rating for a recipe
// @Summary Rate recipe
// @Description Record a rating between 1 and 5. A user's repeat rating replaces their previous one.
// @Tags recipes
// @Accept json
// @Produce json
// @Param recipeID path string true "Recipe ID"
// @Param request body RateRecipeRequest true "Rating"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{recipeID}/rate [post]
func HandleRateRecipe(svc recipe.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		recipeID := chi.URLParam(r, "recipeID")

		var req RateRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rate recipe"); err != nil {
			return
		}

		rated, err := svc.RateRecipe(r.Context(), recipeID, req.UserID, req.Value)
		if err != nil {
			log.Error("Failed to rate recipe", "error", err, "recipeID", recipeID, "userID", req.UserID)
			respondServiceError(w, err)
			return
		}

		metrics.RecipesRated.Inc()
		log.Info("Recipe rated", "recipeID", recipeID, "userID", req.UserID, "value", req.Value)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgRecipeRatedSuccess, Data: rated})
	}
}
