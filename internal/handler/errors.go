package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// User management error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetUserFailed      = "Failed to get user"
	ErrMsgUpdateUserFailed   = "Failed to update user"
	ErrMsgDeleteUserFailed   = "Failed to delete user"

	// Ingredient operation error messages
	ErrMsgCreateIngredientFailed = "Failed to create ingredient"
	ErrMsgGetIngredientFailed    = "Failed to get ingredient"
	ErrMsgUpdateIngredientFailed = "Failed to update ingredient"
	ErrMsgDeleteIngredientFailed = "Failed to delete ingredient"

	// Fridge operation error messages
	ErrMsgGetFridgeFailed        = "Failed to get fridge"
	ErrMsgAddToFridgeFailed      = "Failed to add ingredient to fridge"
	ErrMsgRemoveFromFridgeFailed = "Failed to remove ingredient from fridge"
	ErrMsgClearFridgeFailed      = "Failed to clear fridge"

	// Recipe operation error messages
	ErrMsgCreateRecipeFailed = "Failed to create recipe"
	ErrMsgGetRecipesFailed   = "Failed to get recipes"
	ErrMsgUpdateRecipeFailed = "Failed to update recipe"
	ErrMsgRateRecipeFailed   = "Failed to rate recipe"
	ErrMsgSearchFailed       = "Failed to perform search"

	// Cook operation error messages
	ErrMsgCookRecipeFailed = "Failed to cook recipe"

	// Conversion error messages
	ErrMsgConvertFailed     = "Failed to convert quantity"
	ErrMsgInvalidQuantity   = "Invalid quantity parameter"
	ErrMsgQuantityMustBePos = "quantity must be positive"
	ErrMsgUnknownUnit       = "Unknown unit '%s'. Valid options: gramo, mililitro, cucharadita, cucharada, taza"

	// Favorites/history/profile error messages
	ErrMsgGetFavoritesFailed   = "Failed to get favorites"
	ErrMsgAddFavoriteFailed    = "Failed to add favorite"
	ErrMsgRemoveFavoriteFailed = "Failed to remove favorite"
	ErrMsgGetHistoryFailed     = "Failed to get history"
	ErrMsgRecordViewFailed     = "Failed to record recipe view"
	ErrMsgClearHistoryFailed   = "Failed to clear history"
	ErrMsgGetProfileFailed     = "Failed to get profile"
	ErrMsgSaveProfileFailed    = "Failed to save profile"
	ErrMsgDeleteProfileFailed  = "Failed to delete profile"
)

// Success messages for API responses.
// These are user-facing success messages returned in JSON responses.
const (
	MsgUserRegisteredSuccess = "User registered successfully"
	MsgUserUpdatedSuccess    = "User updated successfully"
	MsgUserDeletedSuccess    = "User and all associated data deleted"

	MsgIngredientCreatedSuccess = "Ingredient created successfully"
	MsgIngredientUpdatedSuccess = "Ingredient updated successfully"
	MsgIngredientDeletedSuccess = "Ingredient deleted successfully"

	MsgFridgeUpdatedSuccess = "Fridge updated successfully"
	MsgFridgeClearedSuccess = "Fridge cleared successfully"

	MsgRecipeCreatedSuccess = "Recipe created successfully"
	MsgRecipeUpdatedSuccess = "Recipe updated successfully"
	MsgRecipeRatedSuccess   = "Rating recorded successfully"
	MsgRecipeCookedSuccess  = "Recipe cooked - fridge updated"

	MsgFavoriteAddedSuccess   = "Recipe added to favorites"
	MsgFavoriteRemovedSuccess = "Recipe removed from favorites"
	MsgHistoryClearedSuccess  = "History cleared successfully"
	MsgProfileSavedSuccess    = "Profile saved successfully"
	MsgProfileDeletedSuccess  = "Profile deleted successfully"
)
