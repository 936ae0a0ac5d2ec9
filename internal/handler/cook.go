package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/cook"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
)

type CookRecipeRequest struct {
	RecipeID string `json:"recipe" validate:"required"`
}

// HandleCookRecipe deducts a recipe's ingredients from a user's fridge
// @Summary Cook recipe
// @Description Deduct the recipe's ingredient quantities from the user's fridge. Lines without a matching fridge entry are skipped.
// @Tags cook
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body CookRecipeRequest true "Recipe to cook"
// @Success 200 {object} FridgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/cook [post]
func HandleCookRecipe(svc cook.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req CookRecipeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Cook recipe"); err != nil {
			return
		}

		entries, err := svc.Cook(r.Context(), userID, req.RecipeID)
		if err != nil {
			log.Error("Failed to cook recipe", "error", err, "userID", userID, "recipeID", req.RecipeID)
			respondServiceError(w, err)
			return
		}

		metrics.FridgeUpdates.WithLabelValues(metrics.FridgeOpCook).Inc()
		log.Info("Recipe cooked", "userID", userID, "recipeID", req.RecipeID)
		respondJSON(w, http.StatusOK, FridgeResponse{UserID: userID, Items: entries})
	}
}
