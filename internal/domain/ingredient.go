package domain

// Ingredient is a catalog entry referenced by recipes and fridge entries.
// Identity is immutable; name and units may change through an admin update.
type Ingredient struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Units       []string `json:"units,omitempty"`
	DefaultUnit string   `json:"defaultUnit,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// IngredientRef is the single way the core refers to an ingredient.
// Callers may hold raw ids or populated Ingredient values; both resolve
// through here so matching and cooking never re-derive ids ad hoc.
type IngredientRef struct {
	id string
}

// RefFromID wraps a raw ingredient id.
func RefFromID(id string) IngredientRef {
	return IngredientRef{id: id}
}

// RefFromIngredient wraps a populated catalog entry.
func RefFromIngredient(ing Ingredient) IngredientRef {
	return IngredientRef{id: ing.ID}
}

// ID returns the resolved ingredient id, empty when the reference is unset.
func (r IngredientRef) ID() string {
	return r.id
}

// IsZero reports whether the reference carries no id.
func (r IngredientRef) IsZero() bool {
	return r.id == ""
}
