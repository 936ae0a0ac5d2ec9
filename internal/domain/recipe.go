package domain

import "time"

// RecipeType is the cuisine category of a recipe
type RecipeType string

const (
	TypeEcuatoriana RecipeType = "Ecuatoriana"
	TypeItaliana    RecipeType = "Italiana"
	TypeMexicana    RecipeType = "Mexicana"
	TypeAsiatica    RecipeType = "Asiática"
	TypePostres     RecipeType = "Postres"
	TypeRapida      RecipeType = "Rápida"
)

// Difficulty is the skill level required by a recipe
type Difficulty string

const (
	DifficultyPrincipiante Difficulty = "Principiante"
	DifficultyIntermedio   Difficulty = "Intermedio"
	DifficultyAvanzado     Difficulty = "Avanzado"
)

// QuickRecipeMaxMinutes is the timeRequired threshold at or below which a
// recipe is forced into the "Rápida" type on create and update.
const QuickRecipeMaxMinutes = 15

// ValidRecipeTypes enumerates the allowed cuisine categories
var ValidRecipeTypes = map[RecipeType]bool{
	TypeEcuatoriana: true,
	TypeItaliana:    true,
	TypeMexicana:    true,
	TypeAsiatica:    true,
	TypePostres:     true,
	TypeRapida:      true,
}

// ValidDifficulties enumerates the allowed difficulty levels
var ValidDifficulties = map[Difficulty]bool{
	DifficultyPrincipiante: true,
	DifficultyIntermedio:   true,
	DifficultyAvanzado:     true,
}

// RecipeIngredient is one ingredient line of a recipe.
// Quantity and unit are optional ("al gusto" lines carry neither).
type RecipeIngredient struct {
	IngredientID string   `json:"ingredient"`
	Quantity     *float64 `json:"quantity"`
	Unit         *string  `json:"unit"`
}

// Ref returns the ingredient reference for this line.
func (ri RecipeIngredient) Ref() IngredientRef {
	return RefFromID(ri.IngredientID)
}

// RecipeRating is a single user's rating entry, unique per user within a recipe
type RecipeRating struct {
	UserID string `json:"userId"`
	Value  int    `json:"value"`
}

// Recipe is a catalog entry with its aggregate rating state.
// Invariant: Rating == RatingTotal/RatingCount whenever RatingCount > 0,
// else Rating == 0.
type Recipe struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	ImageURL     string             `json:"imageUrl,omitempty"`
	Description  string             `json:"description,omitempty"`
	TimeRequired int                `json:"timeRequired,omitempty"`
	Servings     int                `json:"servings,omitempty"`
	Type         RecipeType         `json:"type"`
	Difficulty   Difficulty         `json:"difficulty"`
	Rating       float64            `json:"rating"`
	RatingCount  int                `json:"ratingCount"`
	RatingTotal  int                `json:"ratingTotal"`
	Ratings      []RecipeRating     `json:"ratings"`
	Ingredients  []RecipeIngredient `json:"ingredients"`
	Steps        []string           `json:"steps,omitempty"`
	CreatedAt    time.Time          `json:"createdAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty"`
}

// IngredientIDSet returns the recipe's ingredient ids with set semantics:
// duplicate lines count once, order of first appearance preserved.
func (r *Recipe) IngredientIDSet() []string {
	seen := make(map[string]bool, len(r.Ingredients))
	ids := make([]string, 0, len(r.Ingredients))
	for _, line := range r.Ingredients {
		id := line.Ref().ID()
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
