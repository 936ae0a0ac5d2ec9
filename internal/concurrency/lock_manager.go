// Package concurrency serializes read-modify-write cycles on per-user and
// per-recipe state. Fridge merges, rating upserts and cooking all load the
// current document, mutate it and write it back; without a lock per key,
// concurrent requests for the same user or recipe lose updates.
package concurrency

import "sync"

// LockManager hands out named mutexes, one per key, created on first use.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// WithLock runs fn while holding the key's mutex.
func (lm *LockManager) WithLock(key string, fn func() error) error {
	mu := lm.GetLock(key)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

// FridgeKey names the lock guarding a user's fridge document.
func FridgeKey(userID string) string {
	return "fridge:" + userID
}

// RecipeKey names the lock guarding a recipe's rating entries.
func RecipeKey(recipeID string) string {
	return "recipe:" + recipeID
}
