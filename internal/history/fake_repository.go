package history

import (
	"context"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for testing.
type FakeRepository struct {
	mu        sync.Mutex
	histories map[string]*domain.History
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{histories: make(map[string]*domain.History)}
}

// Seed installs a history record directly.
func (f *FakeRepository) Seed(userID string, entries []domain.HistoryEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histories[userID] = &domain.History{UserID: userID, Entries: entries}
}

func (f *FakeRepository) GetHistory(ctx context.Context, userID string) (*domain.History, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.histories[userID]
	if !ok {
		return nil, nil
	}
	cp := &domain.History{UserID: h.UserID, Entries: append([]domain.HistoryEntry(nil), h.Entries...)}
	return cp, nil
}

func (f *FakeRepository) UpdateHistory(ctx context.Context, userID string, history domain.History) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.histories[userID] = &domain.History{UserID: userID, Entries: append([]domain.HistoryEntry(nil), history.Entries...)}
	return nil
}

func (f *FakeRepository) DeleteHistory(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.histories, userID)
	return nil
}
