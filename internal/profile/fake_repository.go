package profile

import (
	"context"
	"sync"

	"github.com/dmorales/recetario/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of Repository for testing.
type FakeRepository struct {
	mu       sync.Mutex
	profiles map[string]*domain.Profile
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{profiles: make(map[string]*domain.Profile)}
}

func (f *FakeRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *FakeRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[profile.UserID] = &profile
	return nil
}

func (f *FakeRepository) DeleteProfile(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.profiles, userID)
	return nil
}
