package domain

import "time"

// HistoryEntry records a single recipe view
type HistoryEntry struct {
	RecipeID string    `json:"recipe"`
	ViewedAt time.Time `json:"viewedAt"`
}

// History is a user's view log, newest first, one entry per recipe.
// Re-viewing a recipe moves its entry to the front.
type History struct {
	UserID  string         `json:"userId"`
	Entries []HistoryEntry `json:"items"`
}

// Favorites is a user's saved recipe set, addressed by recipe id
type Favorites struct {
	UserID    string   `json:"userId"`
	RecipeIDs []string `json:"recipes"`
}

// Contains reports whether recipeID is already saved.
func (f *Favorites) Contains(recipeID string) bool {
	for _, id := range f.RecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}
