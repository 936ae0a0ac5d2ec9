package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/fridge"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
)

// FridgeEntryRequest is one ingredient line in a fridge mutation request
type FridgeEntryRequest struct {
	IngredientID string  `json:"ingredient" validate:"required"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit" validate:"required,unit"`
}

type AddToFridgeRequest struct {
	Entries []FridgeEntryRequest `json:"items" validate:"required,min=1,dive"`
}

// FridgeResponse carries the fridge contents after an operation
type FridgeResponse struct {
	UserID string               `json:"userId"`
	Items  []domain.FridgeEntry `json:"items"`
}

// HandleGetFridge returns a user's fridge contents
// @Summary Get fridge
// @Description Retrieve the contents of a user's fridge in storage order
// @Tags fridge
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} FridgeResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/fridge [get]
func HandleGetFridge(svc fridge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		entries, err := svc.GetFridge(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get fridge", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, FridgeResponse{UserID: userID, Items: entries})
	}
}

// HandleAddToFridge merges ingredient quantities into a user's fridge
// @Summary Add ingredients to fridge
// @Description Merge ingredient quantities into the fridge. Lines with the same ingredient and unit accumulate; negative quantities decrement.
// @Tags fridge
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body AddToFridgeRequest true "Ingredient lines"
// @Success 200 {object} FridgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/fridge [post]
func HandleAddToFridge(svc fridge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req AddToFridgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add to fridge"); err != nil {
			return
		}

		inputs := make([]fridge.EntryInput, len(req.Entries))
		for i, e := range req.Entries {
			inputs[i] = fridge.EntryInput{
				IngredientID: e.IngredientID,
				Quantity:     e.Quantity,
				Unit:         e.Unit,
			}
		}

		entries, err := svc.MergeAdd(r.Context(), userID, inputs)
		if err != nil {
			log.Error("Failed to add ingredient to fridge", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		metrics.FridgeUpdates.WithLabelValues(metrics.FridgeOpAdd).Inc()
		log.Info("Fridge updated", "userID", userID, "lines", len(req.Entries))
		respondJSON(w, http.StatusOK, FridgeResponse{UserID: userID, Items: entries})
	}
}

type RemoveFromFridgeRequest struct {
	IngredientIDs []string `json:"ingredients" validate:"required,min=1"`
}

// HandleRemoveFromFridge removes ingredients from a user's fridge
// @Summary Remove ingredients from fridge
// @Description Remove every entry of the listed ingredients regardless of unit. Unknown ids are ignored.
// @Tags fridge
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body RemoveFromFridgeRequest true "Ingredient ids"
// @Success 200 {object} FridgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/fridge [delete]
func HandleRemoveFromFridge(svc fridge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req RemoveFromFridgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Remove from fridge"); err != nil {
			return
		}

		entries, err := svc.RemoveByIngredientIDs(r.Context(), userID, req.IngredientIDs)
		if err != nil {
			log.Error("Failed to remove ingredient from fridge", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		metrics.FridgeUpdates.WithLabelValues(metrics.FridgeOpRemove).Inc()
		log.Info("Fridge entries removed", "userID", userID, "ingredients", len(req.IngredientIDs))
		respondJSON(w, http.StatusOK, FridgeResponse{UserID: userID, Items: entries})
	}
}

type OverwriteFridgeRequest struct {
	Entries []FridgeEntryRequest `json:"items" validate:"dive"`
}

// HandleOverwriteFridge replaces a user's fridge contents
// @Summary Overwrite fridge
// @Description Replace the entire fridge contents with the given entries. An empty list clears the fridge.
// @Tags fridge
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body OverwriteFridgeRequest true "New contents"
// @Success 200 {object} FridgeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/fridge [put]
func HandleOverwriteFridge(svc fridge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req OverwriteFridgeRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Overwrite fridge"); err != nil {
			return
		}

		entries := make([]domain.FridgeEntry, len(req.Entries))
		for i, e := range req.Entries {
			entries[i] = domain.FridgeEntry{
				IngredientID: e.IngredientID,
				Quantity:     e.Quantity,
				Unit:         e.Unit,
			}
		}

		result, err := svc.Overwrite(r.Context(), userID, entries)
		if err != nil {
			log.Error("Failed to clear fridge", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		metrics.FridgeUpdates.WithLabelValues(metrics.FridgeOpOverwrite).Inc()
		log.Info("Fridge overwritten", "userID", userID, "entries", len(entries))
		respondJSON(w, http.StatusOK, FridgeResponse{UserID: userID, Items: result})
	}
}
