//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestUserLifecycle walks the main flows end to end: register a user, stock
// the fridge, create a recipe, cook it, and finally delete the account.
func TestUserLifecycle(t *testing.T) {
	username := fmt.Sprintf("smoke-%d", time.Now().UnixNano())

	// Register
	resp, body := makeRequest(t, "POST", "/api/v1/users", map[string]interface{}{
		"name":     "Smoke Test",
		"username": username,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 registering user, got %d: %s", resp.StatusCode, body)
	}

	var registered struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &registered); err != nil {
		t.Fatalf("Failed to unmarshal register response: %v", err)
	}
	userID := registered.Data.ID
	if userID == "" {
		t.Fatal("Expected a user id in register response")
	}

	// Create an ingredient for the flow
	ingName := fmt.Sprintf("ingrediente-%d", time.Now().UnixNano())
	resp, body = makeRequest(t, "POST", "/api/v1/ingredients", map[string]interface{}{
		"name":        ingName,
		"units":       []string{"gramo", "taza"},
		"defaultUnit": "gramo",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating ingredient, got %d: %s", resp.StatusCode, body)
	}

	var ingredient struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &ingredient); err != nil {
		t.Fatalf("Failed to unmarshal ingredient response: %v", err)
	}

	// Stock the fridge
	resp, body = makeRequest(t, "POST", fmt.Sprintf("/api/v1/users/%s/fridge", userID), map[string]interface{}{
		"items": []map[string]interface{}{
			{"ingredient": ingredient.Data.ID, "quantity": 500, "unit": "gramo"},
		},
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 stocking fridge, got %d: %s", resp.StatusCode, body)
	}

	// Create a recipe using the ingredient
	resp, body = makeRequest(t, "POST", "/api/v1/recipes", map[string]interface{}{
		"title":      "Receta de humo",
		"type":       "Ecuatoriana",
		"difficulty": "Principiante",
		"ingredients": []map[string]interface{}{
			{"ingredient": ingredient.Data.ID, "quantity": 100, "unit": "gramo"},
		},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201 creating recipe, got %d: %s", resp.StatusCode, body)
	}

	var recipe struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &recipe); err != nil {
		t.Fatalf("Failed to unmarshal recipe response: %v", err)
	}

	// Cook it
	resp, body = makeRequest(t, "POST", fmt.Sprintf("/api/v1/users/%s/cook", userID), map[string]interface{}{
		"recipe": recipe.Data.ID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 cooking recipe, got %d: %s", resp.StatusCode, body)
	}

	// Delete the account, cascade included
	resp, body = makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/users/%s", userID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 deleting user, got %d: %s", resp.StatusCode, body)
	}

	resp, _ = makeRequest(t, "GET", fmt.Sprintf("/api/v1/users/%s", userID), nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", resp.StatusCode)
	}
}

func TestConvertEndpoint(t *testing.T) {
	resp, body := makeRequest(t, "GET", "/api/v1/convert?ingredient=harina&quantity=2&from=taza&to=gramo", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", resp.StatusCode, body)
	}

	var converted struct {
		Result float64 `json:"result"`
	}
	if err := json.Unmarshal(body, &converted); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if converted.Result != 400 {
		t.Errorf("Expected 2 tazas = 400 gramos, got %v", converted.Result)
	}
}
