package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmorales/recetario/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgServerError         = "Server error occurred. Please try again."
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgUserNotFoundError   = "User not found"
	ErrMsgIngredientNotFound  = "Ingredient not found"
	ErrMsgIngredientExistsErr = "An ingredient with that name already exists"
	ErrMsgFridgeNotFoundError = "Fridge not found"
	ErrMsgRecipeNotFoundError = "Recipe not found"
	ErrMsgInvalidRecipeField  = "Invalid recipe type or difficulty"
	ErrMsgInvalidRatingError  = "Rating must be between 1 and 5"
	ErrMsgConversionError     = "Cannot convert between those units"
	ErrMsgFavoritesNotFound   = "Favorites not found"
	ErrMsgHistoryNotFound     = "History not found"
	ErrMsgProfileNotFound     = "Profile not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrIngredientNotFound):
		return http.StatusNotFound, ErrMsgIngredientNotFound
	case errors.Is(err, domain.ErrIngredientExists):
		return http.StatusConflict, ErrMsgIngredientExistsErr
	case errors.Is(err, domain.ErrFridgeNotFound):
		return http.StatusNotFound, ErrMsgFridgeNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrInvalidRecipeField):
		return http.StatusBadRequest, ErrMsgInvalidRecipeField
	case errors.Is(err, domain.ErrInvalidRating):
		return http.StatusBadRequest, ErrMsgInvalidRatingError
	case errors.Is(err, domain.ErrConversion):
		return http.StatusUnprocessableEntity, ErrMsgConversionError
	case errors.Is(err, domain.ErrFavoritesNotFound):
		return http.StatusNotFound, ErrMsgFavoritesNotFound
	case errors.Is(err, domain.ErrHistoryNotFound):
		return http.StatusNotFound, ErrMsgHistoryNotFound
	case errors.Is(err, domain.ErrProfileNotFound):
		return http.StatusNotFound, ErrMsgProfileNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	default:
		return http.StatusInternalServerError, ErrMsgServerError
	}
}

// respondServiceError maps a service error and writes the response
func respondServiceError(w http.ResponseWriter, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}
