package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/favorite"
	"github.com/dmorales/recetario/internal/logger"
)

// FavoritesResponse carries a user's saved recipe ids
type FavoritesResponse struct {
	UserID  string   `json:"userId"`
	Recipes []string `json:"recipes"`
}

// HandleGetFavorites returns a user's saved recipes
// @Summary Get favorites
// @Description Retrieve the user's saved recipe ids in insertion order
// @Tags favorites
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} FavoritesResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/favorites [get]
func HandleGetFavorites(svc favorite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		recipes, err := svc.GetFavorites(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get favorites", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, FavoritesResponse{UserID: userID, Recipes: recipes})
	}
}

type FavoriteRequest struct {
	RecipeID string `json:"recipe" validate:"required"`
}

// HandleAddFavorite saves a recipe to a user's favorites
// @Summary Add favorite
// @Description Save a recipe to the user's favorites. Re-saving an already saved recipe is a no-op.
// @Tags favorites
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body FavoriteRequest true "Recipe to save"
// @Success 200 {object} FavoritesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/favorites [post]
func HandleAddFavorite(svc favorite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req FavoriteRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add favorite"); err != nil {
			return
		}

		recipes, err := svc.AddFavorite(r.Context(), userID, req.RecipeID)
		if err != nil {
			log.Error("Failed to add favorite", "error", err, "userID", userID, "recipeID", req.RecipeID)
			respondServiceError(w, err)
			return
		}

		log.Info("Favorite added", "userID", userID, "recipeID", req.RecipeID)
		respondJSON(w, http.StatusOK, FavoritesResponse{UserID: userID, Recipes: recipes})
	}
}

// HandleRemoveFavorite removes a recipe from a user's favorites
// @Summary Remove favorite
// @Description Remove a recipe from the user's favorites
// @Tags favorites
// @Produce json
// @Param userID path string true "User ID"
// @Param recipeID path string true "Recipe ID"
// @Success 200 {object} FavoritesResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/favorites/{recipeID} [delete]
func HandleRemoveFavorite(svc favorite.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")
		recipeID := chi.URLParam(r, "recipeID")

		recipes, err := svc.RemoveFavorite(r.Context(), userID, recipeID)
		if err != nil {
			log.Error("Failed to remove favorite", "error", err, "userID", userID, "recipeID", recipeID)
			respondServiceError(w, err)
			return
		}

		log.Info("Favorite removed", "userID", userID, "recipeID", recipeID)
		respondJSON(w, http.StatusOK, FavoritesResponse{UserID: userID, Recipes: recipes})
	}
}
