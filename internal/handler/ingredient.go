package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/ingredient"
	"github.com/dmorales/recetario/internal/logger"
)

type CreateIngredientRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Units       []string `json:"units" validate:"omitempty,dive,unit"`
	DefaultUnit string   `json:"defaultUnit" validate:"omitempty,unit"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
}

// HandleCreateIngredient adds an ingredient to the catalog
// @Summary Create ingredient
// @Description Add a new ingredient to the catalog. Names are unique.
// @Tags ingredients
// @Accept json
// @Produce json
// @Param request body CreateIngredientRequest true "Ingredient details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /ingredients [post]
func HandleCreateIngredient(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create ingredient"); err != nil {
			return
		}

		created, err := svc.CreateIngredient(r.Context(), domain.Ingredient{
			Name:        req.Name,
			Units:       req.Units,
			DefaultUnit: req.DefaultUnit,
			Category:    req.Category,
		})
		if err != nil {
			log.Error("Failed to create ingredient", "error", err, "name", req.Name)
			respondServiceError(w, err)
			return
		}

		log.Info("Ingredient created", "ingredientID", created.ID, "name", created.Name)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgIngredientCreatedSuccess, Data: created})
	}
}

// HandleGetIngredients lists the ingredient catalog
// @Summary List ingredients
// @Description Retrieve the full ingredient catalog
// @Tags ingredients
// @Produce json
// @Success 200 {array} domain.Ingredient
// @Failure 500 {object} ErrorResponse
// @Router /ingredients [get]
func HandleGetIngredients(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Optional name filter resolves a single ingredient
		if name := r.URL.Query().Get("name"); name != "" {
			ing, err := svc.GetIngredientByName(r.Context(), name)
			if err != nil {
				log.Error("Failed to get ingredient by name", "error", err, "name", name)
				respondServiceError(w, err)
				return
			}
			respondJSON(w, http.StatusOK, []domain.Ingredient{*ing})
			return
		}

		ingredients, err := svc.GetAllIngredients(r.Context())
		if err != nil {
			log.Error("Failed to get ingredients", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ingredients)
	}
}

// HandleGetIngredient returns a single catalog entry by id
// @Summary Get ingredient
// @Description Retrieve one ingredient by id
// @Tags ingredients
// @Produce json
// @Param ingredientID path string true "Ingredient ID"
// @Success 200 {object} domain.Ingredient
// @Failure 404 {object} ErrorResponse
// @Router /ingredients/{ingredientID} [get]
func HandleGetIngredient(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		ingredientID := chi.URLParam(r, "ingredientID")

		ing, err := svc.GetIngredientByID(r.Context(), ingredientID)
		if err != nil {
			log.Error("Failed to get ingredient", "error", err, "ingredientID", ingredientID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ing)
	}
}

type UpdateIngredientRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Units       []string `json:"units" validate:"omitempty,dive,unit"`
	DefaultUnit string   `json:"defaultUnit" validate:"omitempty,unit"`
	Category    string   `json:"category" validate:"omitempty,max=100"`
}

// HandleUpdateIngredient updates a catalog entry
// @Summary Update ingredient
// @Description Update an ingredient's name, units and category
// @Tags ingredients
// @Accept json
// @Produce json
// @Param ingredientID path string true "Ingredient ID"
// @Param request body UpdateIngredientRequest true "Updated fields"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /ingredients/{ingredientID} [put]
func HandleUpdateIngredient(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		ingredientID := chi.URLParam(r, "ingredientID")

		var req UpdateIngredientRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update ingredient"); err != nil {
			return
		}

		updated, err := svc.UpdateIngredient(r.Context(), domain.Ingredient{
			ID:          ingredientID,
			Name:        req.Name,
			Units:       req.Units,
			DefaultUnit: req.DefaultUnit,
			Category:    req.Category,
		})
		if err != nil {
			log.Error("Failed to update ingredient", "error", err, "ingredientID", ingredientID)
			respondServiceError(w, err)
			return
		}

		log.Info("Ingredient updated", "ingredientID", ingredientID)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgIngredientUpdatedSuccess, Data: updated})
	}
}

// HandleDeleteIngredient removes a catalog entry
// @Summary Delete ingredient
// @Description Remove an ingredient from the catalog
// @Tags ingredients
// @Produce json
// @Param ingredientID path string true "Ingredient ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /ingredients/{ingredientID} [delete]
func HandleDeleteIngredient(svc ingredient.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		ingredientID := chi.URLParam(r, "ingredientID")

		if err := svc.DeleteIngredient(r.Context(), ingredientID); err != nil {
			log.Error("Failed to delete ingredient", "error", err, "ingredientID", ingredientID)
			respondServiceError(w, err)
			return
		}

		log.Info("Ingredient deleted", "ingredientID", ingredientID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgIngredientDeletedSuccess})
	}
}
