package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/profile"
)

type SaveProfileRequest struct {
	Preferences      []string `json:"preferences" validate:"omitempty,dive,max=100"`
	TimeAvailable    string   `json:"timeAvailable" validate:"omitempty,max=100"`
	CookingSkill     string   `json:"cookingSkill" validate:"omitempty,max=100"`
	PeopleServed     string   `json:"peopleServed" validate:"omitempty,max=100"`
	CookingFrequency string   `json:"cookingFrequency" validate:"omitempty,max=100"`
}

// HandleGetProfile returns a user's cooking preferences
// @Summary Get profile
// @Description Retrieve the user's cooking preference profile
// @Tags profile
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/profile [get]
func HandleGetProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		p, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get profile", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleSaveProfile creates or replaces a user's profile
// @Summary Save profile
// @Description Create or replace the user's cooking preference profile
// @Tags profile
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body SaveProfileRequest true "Profile fields"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/profile [put]
func HandleSaveProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req SaveProfileRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save profile"); err != nil {
			return
		}

		saved, err := svc.SaveProfile(r.Context(), domain.Profile{
			UserID:           userID,
			Preferences:      req.Preferences,
			TimeAvailable:    req.TimeAvailable,
			CookingSkill:     req.CookingSkill,
			PeopleServed:     req.PeopleServed,
			CookingFrequency: req.CookingFrequency,
		})
		if err != nil {
			log.Error("Failed to save profile", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		log.Info("Profile saved", "userID", userID)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgProfileSavedSuccess, Data: saved})
	}
}

// HandleDeleteProfile removes a user's profile
// @Summary Delete profile
// @Description Remove the user's cooking preference profile
// @Tags profile
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID}/profile [delete]
func HandleDeleteProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		if err := svc.DeleteProfile(r.Context(), userID); err != nil {
			log.Error("Failed to delete profile", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		log.Info("Profile deleted", "userID", userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgProfileDeletedSuccess})
	}
}
