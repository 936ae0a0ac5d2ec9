package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// User errors
	ErrMsgUserNotFound = "user not found"

	// Ingredient errors
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgIngredientExists   = "ingredient already exists"

	// Fridge errors
	ErrMsgFridgeNotFound = "fridge not found"

	// Recipe errors
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgInvalidRecipeField = "invalid recipe field"
	ErrMsgInvalidRating      = "rating value must be between 1 and 5"
	ErrMsgConversionNotFound = "no conversion rate"

	// Favorites/History errors
	ErrMsgFavoritesNotFound = "favorites not found"
	ErrMsgHistoryNotFound   = "history not found"

	// Profile errors
	ErrMsgProfileNotFound = "profile not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors.
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Ingredient errors
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrIngredientExists   = errors.New(ErrMsgIngredientExists)

	// Fridge errors
	ErrFridgeNotFound = errors.New(ErrMsgFridgeNotFound)

	// Recipe errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrInvalidRecipeField = errors.New(ErrMsgInvalidRecipeField)
	ErrInvalidRating      = errors.New(ErrMsgInvalidRating)
	ErrConversion         = errors.New(ErrMsgConversionNotFound)

	// Favorites/History errors
	ErrFavoritesNotFound = errors.New(ErrMsgFavoritesNotFound)
	ErrHistoryNotFound   = errors.New(ErrMsgHistoryNotFound)

	// Profile errors
	ErrProfileNotFound = errors.New(ErrMsgProfileNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
