package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleConvert(t *testing.T) {
	handler := HandleConvert()

	doConvert := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("GET", "/convert?"+query, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	t.Run("Taza To Gramo", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=2&from=taza&to=gramo")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 400.0, resp.Result)
		assert.Equal(t, "taza", resp.FromUnit)
		assert.Equal(t, "gramo", resp.ToUnit)
	})

	t.Run("Unit Input Is Case Insensitive", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=1&from=Cucharada&to=GRAMO")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 15.0, resp.Result)
	})

	t.Run("Same Unit Returns Quantity", func(t *testing.T) {
		w := doConvert("ingredient=sal&quantity=3.5&from=gramo&to=gramo")
		assert.Equal(t, http.StatusOK, w.Code)

		var resp ConvertResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 3.5, resp.Result)
	})

	t.Run("Unknown Unit", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=2&from=litro&to=gramo")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "litro")
	})

	t.Run("Missing Parameter", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=2&from=taza")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), fmt.Sprintf(ErrMsgMissingQueryParam, "to"))
	})

	t.Run("Non Numeric Quantity", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=dos&from=taza&to=gramo")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidQuantity)
	})

	t.Run("Negative Quantity", func(t *testing.T) {
		w := doConvert("ingredient=harina&quantity=-1&from=taza&to=gramo")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgQuantityMustBePos)
	})
}
