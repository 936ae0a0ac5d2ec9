//go:build staging

package staging

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestHealthEndpoints(t *testing.T) {
	resp, _ := makeRequest(t, "GET", "/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 from /healthz, got %d", resp.StatusCode)
	}

	resp, body := makeRequest(t, "GET", "/readyz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected status 200 from /readyz, got %d: %s", resp.StatusCode, body)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &health); err != nil {
		t.Fatalf("Failed to unmarshal readiness response: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("Expected readiness status \"ok\", got %q", health.Status)
	}
}
