package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/domain"
)

func recipeWith(id string, ingredientIDs ...string) domain.Recipe {
	lines := make([]domain.RecipeIngredient, 0, len(ingredientIDs))
	for _, ingID := range ingredientIDs {
		lines = append(lines, domain.RecipeIngredient{IngredientID: ingID})
	}
	return domain.Recipe{ID: id, Title: id, Ingredients: lines}
}

func matchIDs(matches []ProximityMatch) []string {
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.Recipe.ID)
	}
	return ids
}

func TestFindExact(t *testing.T) {
	catalog := []domain.Recipe{
		recipeWith("arroz-con-pollo", "arroz", "pollo", "cebolla"),
		recipeWith("arroz-blanco", "arroz"),
		recipeWith("agua-aromatica"),
	}

	t.Run("includes only fully covered recipes", func(t *testing.T) {
		got := FindExact(catalog, []string{"arroz", "pollo"})

		require.Len(t, got, 2)
		assert.Equal(t, "arroz-blanco", got[0].ID)
		assert.Equal(t, "agua-aromatica", got[1].ID)
	})

	t.Run("extra available ingredients do not hurt", func(t *testing.T) {
		got := FindExact(catalog, []string{"arroz", "pollo", "cebolla", "ajo", "sal"})

		assert.Len(t, got, 3)
	})

	t.Run("recipe with no ingredients always matches", func(t *testing.T) {
		got := FindExact(catalog, nil)

		require.Len(t, got, 1)
		assert.Equal(t, "agua-aromatica", got[0].ID)
	})

	t.Run("duplicate ingredient lines count once", func(t *testing.T) {
		dup := recipeWith("doble-arroz", "arroz", "arroz")

		got := FindExact([]domain.Recipe{dup}, []string{"arroz"})

		assert.Len(t, got, 1)
	})
}

func TestFindByProximity(t *testing.T) {
	t.Run("discards recipes with no overlap", func(t *testing.T) {
		catalog := []domain.Recipe{
			recipeWith("ceviche", "camaron", "limon"),
			recipeWith("tiramisu", "cafe", "mascarpone"),
		}

		got := FindByProximity(catalog, []string{"camaron"})

		assert.Equal(t, []string{"ceviche"}, matchIDs(got))
	})

	t.Run("reports matched and missing ids in recipe order", func(t *testing.T) {
		catalog := []domain.Recipe{recipeWith("locro", "papa", "queso", "leche")}

		got := FindByProximity(catalog, []string{"queso", "papa"})

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Matched)
		assert.Equal(t, 3, got[0].Total)
		assert.Equal(t, 1, got[0].Missing)
		assert.Equal(t, []string{"papa", "queso"}, got[0].MatchedIngredientIDs)
		assert.Equal(t, []string{"leche"}, got[0].MissingIngredientIDs)
		assert.InDelta(t, 2.0/3.0, got[0].Percentage, 1e-9)
	})

	t.Run("orders by total asc then percentage desc then missing asc", func(t *testing.T) {
		catalog := []domain.Recipe{
			recipeWith("grande", "a", "b", "c", "d"), // total 4, 1/4
			recipeWith("completa", "a", "b"),         // total 2, 2/2
			recipeWith("parcial", "a", "x"),          // total 2, 1/2
			recipeWith("mediana", "a", "b", "y"),     // total 3, 2/3
		}

		got := FindByProximity(catalog, []string{"a", "b"})

		assert.Equal(t, []string{"completa", "parcial", "mediana", "grande"}, matchIDs(got))
	})

	t.Run("ties keep catalog order", func(t *testing.T) {
		catalog := []domain.Recipe{
			recipeWith("primera", "a", "x"),
			recipeWith("segunda", "a", "y"),
		}

		got := FindByProximity(catalog, []string{"a"})

		assert.Equal(t, []string{"primera", "segunda"}, matchIDs(got))
	})

	t.Run("percentage never exceeds one", func(t *testing.T) {
		catalog := []domain.Recipe{
			recipeWith("uno", "a"),
			recipeWith("dos", "a", "b"),
			recipeWith("tres", "a", "b", "c"),
		}

		got := FindByProximity(catalog, []string{"a", "b", "c", "d"})

		for _, m := range got {
			assert.LessOrEqual(t, m.Percentage, 1.0)
			assert.Greater(t, m.Percentage, 0.0)
			assert.Equal(t, m.Total, m.Matched+m.Missing)
		}
	})
}
