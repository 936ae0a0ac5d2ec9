package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUnit(t *testing.T) {
	InitValidator()

	type payload struct {
		Unit string `validate:"required,unit"`
	}

	t.Run("Valid Units", func(t *testing.T) {
		for _, u := range []string{"gramo", "mililitro", "cucharadita", "cucharada", "taza"} {
			assert.NoError(t, GetValidator().ValidateStruct(payload{Unit: u}), u)
		}
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		assert.NoError(t, GetValidator().ValidateStruct(payload{Unit: "Taza"}))
		assert.NoError(t, GetValidator().ValidateStruct(payload{Unit: "GRAMO"}))
	})

	t.Run("Invalid Unit", func(t *testing.T) {
		err := GetValidator().ValidateStruct(payload{Unit: "litro"})
		assert.Error(t, err)

		fields := FormatValidationError(err)
		assert.Equal(t, "Invalid measurement unit", fields["unit"])
	})
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	type payload struct {
		Name  string `validate:"required,max=10"`
		Email string `validate:"omitempty,email"`
	}

	t.Run("Nil Error", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("Required Field", func(t *testing.T) {
		err := GetValidator().ValidateStruct(payload{})
		fields := FormatValidationError(err)
		assert.Equal(t, "This field is required", fields["name"])
	})

	t.Run("Email Format", func(t *testing.T) {
		err := GetValidator().ValidateStruct(payload{Name: "ok", Email: "bad"})
		fields := FormatValidationError(err)
		assert.Equal(t, "Invalid email format", fields["email"])
	})

	t.Run("Non Validation Error", func(t *testing.T) {
		fields := FormatValidationError(assert.AnError)
		assert.Equal(t, "Invalid request format", fields["error"])
	})
}
