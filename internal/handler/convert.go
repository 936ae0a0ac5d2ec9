package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/units"
)

// ConvertResponse carries the result of a unit conversion
type ConvertResponse struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	FromUnit   string  `json:"fromUnit"`
	ToUnit     string  `json:"toUnit"`
	Result     float64 `json:"result"`
}

// HandleConvert converts an ingredient quantity between measurement units
// @Summary Convert units
// @Description Convert a quantity between kitchen measurement units using the fixed rate table
// @Tags units
// @Produce json
// @Param ingredient query string true "Ingredient name"
// @Param quantity query number true "Quantity to convert"
// @Param from query string true "Source unit"
// @Param to query string true "Target unit"
// @Success 200 {object} ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /convert [get]
func HandleConvert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ingredientName, ok := GetQueryParam(r, w, "ingredient")
		if !ok {
			return
		}
		rawQuantity, ok := GetQueryParam(r, w, "quantity")
		if !ok {
			return
		}
		from, ok := GetQueryParam(r, w, "from")
		if !ok {
			return
		}
		to, ok := GetQueryParam(r, w, "to")
		if !ok {
			return
		}

		quantity, err := strconv.ParseFloat(rawQuantity, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidQuantity)
			return
		}
		if quantity <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgQuantityMustBePos)
			return
		}

		fromUnit := units.Unit(strings.ToLower(strings.TrimSpace(from)))
		toUnit := units.Unit(strings.ToLower(strings.TrimSpace(to)))
		if !units.ValidUnits[fromUnit] {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownUnit, from))
			return
		}
		if !units.ValidUnits[toUnit] {
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgUnknownUnit, to))
			return
		}

		result, err := units.Convert(ingredientName, quantity, fromUnit, toUnit)
		if err != nil {
			log.Error("Failed to convert quantity", "error", err,
				"ingredient", ingredientName, "from", fromUnit, "to", toUnit)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, ConvertResponse{
			Ingredient: ingredientName,
			Quantity:   quantity,
			FromUnit:   string(fromUnit),
			ToUnit:     string(toUnit),
			Result:     result,
		})
	}
}
