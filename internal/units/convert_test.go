package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmorales/recetario/internal/domain"
)

// TestConvert_Identity verifies same-unit conversion returns the quantity
// unchanged for every unit in the closed set
func TestConvert_Identity(t *testing.T) {
	quantities := []float64{0.5, 1, 3, 250, 999.25}

	for unit := range ValidUnits {
		for _, q := range quantities {
			got, err := Convert("harina", q, unit, unit)
			require.NoError(t, err)
			assert.Equal(t, q, got, "identity conversion for %s", unit)
		}
	}
}

// TestConvert_FixedRates verifies the empirical rate table
func TestConvert_FixedRates(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		from     Unit
		to       Unit
		want     float64
	}{
		{"cucharada to cucharadita", 2, Cucharada, Cucharadita, 6},
		{"taza to cucharadita", 1, Taza, Cucharadita, 20},
		{"cucharadita to taza", 1, Cucharadita, Taza, 0.2},
		{"gramo to taza", 1, Gramo, Taza, 200},
		{"taza to gramo", 1, Taza, Gramo, 200},
		{"gramo to mililitro", 50, Gramo, Mililitro, 50},
		{"cucharada to taza", 2, Cucharada, Taza, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert("x", tt.quantity, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

// TestConvert_NotReciprocal documents that the table is fixed per pair,
// not mathematically symmetric
func TestConvert_NotReciprocal(t *testing.T) {
	down, err := Convert("azúcar", 1, Cucharadita, Taza)
	require.NoError(t, err)
	up, err := Convert("azúcar", 1, Taza, Cucharadita)
	require.NoError(t, err)

	assert.Equal(t, 0.2, down)
	assert.Equal(t, 20.0, up)
	assert.NotEqual(t, 1.0, down*up, "rates are empirical, not reciprocal")
}

// TestConvert_UnknownPair verifies the error for units outside the table
func TestConvert_UnknownPair(t *testing.T) {
	_, err := Convert("sal", 2, Unit("pizca"), Gramo)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConversion)
	assert.Contains(t, err.Error(), "sal")
}
