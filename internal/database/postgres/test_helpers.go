package postgres

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/database/schema"
)

var (
	testDBConnString string
	testPool         *pgxpool.Pool
	schemaApplied    bool
	schemaMux        sync.Mutex
)

// ensureSchema applies the schema once for all tests in the package
func ensureSchema(t *testing.T) {
	t.Helper()

	schemaMux.Lock()
	defer schemaMux.Unlock()

	if schemaApplied {
		return
	}

	if _, err := testPool.Exec(context.Background(), schema.SchemaSQL); err != nil {
		t.Fatalf("failed to apply schema: %v", err)
	}
	schemaApplied = true
}

// truncateAll wipes every table between tests so cases stay independent
func truncateAll(t *testing.T) {
	t.Helper()

	tables := []string{"user_profiles", "user_history", "user_favorites", "user_fridges", "recipes", "ingredients", "users"}
	for _, table := range tables {
		if _, err := testPool.Exec(context.Background(), fmt.Sprintf("TRUNCATE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate %s: %v", table, err)
		}
	}
}

// requireDB skips the test when no container is available or -short is set
func requireDB(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" || testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	ensureSchema(t)
	truncateAll(t)
}
