package concurrency

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockManager_SameKeySameLock(t *testing.T) {
	lm := NewLockManager()

	a := lm.GetLock(FridgeKey("user-1"))
	b := lm.GetLock(FridgeKey("user-1"))
	c := lm.GetLock(FridgeKey("user-2"))

	assert.Same(t, a, b, "same key must return the same mutex")
	assert.NotSame(t, a, c, "different keys must return different mutexes")
}

func TestLockManager_WithLockSerializes(t *testing.T) {
	lm := NewLockManager()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			err := lm.WithLock(RecipeKey("recipe-1"), func() error {
				counter++
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestLockManager_KeyNamespaces(t *testing.T) {
	// A user id and a recipe id that collide as raw strings must not share a lock
	lm := NewLockManager()
	assert.NotSame(t, lm.GetLock(FridgeKey("abc")), lm.GetLock(RecipeKey("abc")))
}
