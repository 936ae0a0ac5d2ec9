package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/history"
	"github.com/dmorales/recetario/internal/logger"
)

// HistoryResponse carries a user's view log, newest first
type HistoryResponse struct {
	UserID string                `json:"userId"`
	Items  []domain.HistoryEntry `json:"items"`
}

// HandleGetHistory returns a user's recipe view history
// @Summary Get history
// @Description Retrieve the user's recipe view log, newest first
// @Tags history
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} HistoryResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/history [get]
func HandleGetHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		entries, err := svc.GetHistory(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get history", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{UserID: userID, Items: entries})
	}
}

type RecordViewRequest struct {
	RecipeID string `json:"recipe" validate:"required"`
}

// HandleRecordView records a recipe view in a user's history
// @Summary Record recipe view
// @Description Record that the user viewed a recipe. Re-viewing moves the entry to the front with a fresh timestamp.
// @Tags history
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body RecordViewRequest true "Viewed recipe"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/history [post]
func HandleRecordView(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req RecordViewRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Record view"); err != nil {
			return
		}

		entries, err := svc.RecordView(r.Context(), userID, req.RecipeID)
		if err != nil {
			log.Error("Failed to record recipe view", "error", err, "userID", userID, "recipeID", req.RecipeID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, HistoryResponse{UserID: userID, Items: entries})
	}
}

// HandleClearHistory wipes a user's view history
// @Summary Clear history
// @Description Remove every entry from the user's view log
// @Tags history
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/history [delete]
func HandleClearHistory(svc history.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		if err := svc.ClearHistory(r.Context(), userID); err != nil {
			log.Error("Failed to clear history", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		log.Info("History cleared", "userID", userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgHistoryClearedSuccess})
	}
}
