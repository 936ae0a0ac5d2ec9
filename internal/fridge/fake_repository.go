package fridge

import (
	"context"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for
// testing. It stores fridge documents in a map to enable integration-style
// unit tests without a database.
type FakeRepository struct {
	mu      sync.Mutex
	fridges map[string]*domain.Fridge
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		fridges: make(map[string]*domain.Fridge),
	}
}

// Seed installs a fridge document for a user, creating the record.
func (f *FakeRepository) Seed(userID string, entries []domain.FridgeEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fridges[userID] = &domain.Fridge{UserID: userID, Entries: entries}
}

func (f *FakeRepository) GetFridge(ctx context.Context, userID string) (*domain.Fridge, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fridge, ok := f.fridges[userID]
	if !ok {
		return nil, nil
	}
	// Copy so callers mutate their own snapshot, like a row scan would
	cp := &domain.Fridge{UserID: fridge.UserID, Entries: append([]domain.FridgeEntry(nil), fridge.Entries...)}
	return cp, nil
}

func (f *FakeRepository) UpdateFridge(ctx context.Context, userID string, fridge domain.Fridge) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fridges[userID] = &domain.Fridge{UserID: userID, Entries: append([]domain.FridgeEntry(nil), fridge.Entries...)}
	return nil
}

func (f *FakeRepository) DeleteFridge(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.fridges, userID)
	return nil
}
