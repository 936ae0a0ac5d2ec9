package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/metrics"
	"github.com/dmorales/recetario/internal/user"
)

type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Username string `json:"username" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// HandleRegisterUser registers a new user account
// @Summary Register user
// @Description Create a new user account with a unique username
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "User details"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		created, err := svc.CreateUser(r.Context(), domain.User{
			Name:     req.Name,
			Username: req.Username,
			Email:    req.Email,
		})
		if err != nil {
			log.Error("Failed to register user", "error", err, "username", req.Username)
			respondServiceError(w, err)
			return
		}

		log.Info("User registered", "userID", created.ID, "username", created.Username)
		respondJSON(w, http.StatusCreated, DataResponse{Message: MsgUserRegisteredSuccess, Data: created})
	}
}

// HandleGetUser returns a user by id
// @Summary Get user
// @Description Retrieve a user account by id
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		u, err := svc.GetUserByID(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get user", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleGetUserByUsername returns a user by username query parameter
// @Summary Look up user by username
// @Description Retrieve a user account by its unique username
// @Tags users
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/lookup [get]
func HandleGetUserByUsername(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		username, ok := GetQueryParam(r, w, "username")
		if !ok {
			return
		}

		u, err := svc.GetUserByUsername(r.Context(), username)
		if err != nil {
			log.Error("Failed to get user by username", "error", err, "username", username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

// HandleUpdateUser updates a user's mutable fields
// @Summary Update user
// @Description Update a user's name and email. Username is immutable.
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param request body UpdateUserRequest true "Updated fields"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [put]
func HandleUpdateUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		var req UpdateUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update user"); err != nil {
			return
		}

		existing, err := svc.GetUserByID(r.Context(), userID)
		if err != nil {
			log.Error("Failed to get user for update", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		existing.Name = req.Name
		existing.Email = req.Email

		updated, err := svc.UpdateUser(r.Context(), *existing)
		if err != nil {
			log.Error("Failed to update user", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		log.Info("User updated", "userID", userID)
		respondJSON(w, http.StatusOK, DataResponse{Message: MsgUserUpdatedSuccess, Data: updated})
	}
}

// HandleDeleteUser deletes a user and all associated data
// @Summary Delete user
// @Description Delete a user account together with its fridge, favorites, history, profile and rating entries. The cascade is atomic.
// @Tags users
// @Produce json
// @Param userID path string true "User ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID} [delete]
func HandleDeleteUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		userID := chi.URLParam(r, "userID")

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			log.Error("Failed to delete user", "error", err, "userID", userID)
			respondServiceError(w, err)
			return
		}

		metrics.UsersDeleted.Inc()
		log.Info("User deleted", "userID", userID)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserDeletedSuccess})
	}
}
