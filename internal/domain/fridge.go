package domain

import (
	"strings"
	"time"
)

// FridgeEntry is one owned quantity of an ingredient in a user's fridge.
// At most one entry exists per (IngredientID, normalized Unit) pair.
type FridgeEntry struct {
	IngredientID string    `json:"ingredient"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	AddedAt      time.Time `json:"addedAt,omitempty"`
}

// Ref returns the ingredient reference for this entry.
func (e FridgeEntry) Ref() IngredientRef {
	return RefFromID(e.IngredientID)
}

// Fridge is the per-user inventory document stored in the JSONB column
type Fridge struct {
	UserID  string        `json:"userId"`
	Entries []FridgeEntry `json:"items"`
}

// NormalizeUnit is the canonical unit normalization: trim + lowercase.
// Merge keys and deduction matching both use it.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// FindEntry locates the entry matching ingredient id and normalized unit.
// Returns the index or -1.
func (f *Fridge) FindEntry(ingredientID, unit string) int {
	normalized := NormalizeUnit(unit)
	for i, e := range f.Entries {
		if e.IngredientID == ingredientID && NormalizeUnit(e.Unit) == normalized {
			return i
		}
	}
	return -1
}

// RemoveEntry deletes the entry at index i, preserving order of the rest.
func (f *Fridge) RemoveEntry(i int) {
	f.Entries = append(f.Entries[:i], f.Entries[i+1:]...)
}
