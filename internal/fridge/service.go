// Package fridge manages each user's ingredient inventory.
package fridge

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorales/recetario/internal/concurrency"
	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the fridge service
type Repository interface {
	repository.Fridge
}

// EntryInput is one ingredient line of a merge request. Quantity may be
// negative to request a decrement.
type EntryInput struct {
	IngredientID string
	Quantity     float64
	Unit         string
}

// Service defines the interface for fridge operations
type Service interface {
	GetFridge(ctx context.Context, userID string) ([]domain.FridgeEntry, error)
	MergeAdd(ctx context.Context, userID string, entries []EntryInput) ([]domain.FridgeEntry, error)
	RemoveByIngredientIDs(ctx context.Context, userID string, ingredientIDs []string) ([]domain.FridgeEntry, error)
	Overwrite(ctx context.Context, userID string, entries []domain.FridgeEntry) ([]domain.FridgeEntry, error)
}

type service struct {
	repo        Repository
	lockManager *concurrency.LockManager
	now         func() time.Time
}

// NewService creates a new fridge service
func NewService(repo Repository, lockManager *concurrency.LockManager) Service {
	return &service{
		repo:        repo,
		lockManager: lockManager,
		now:         time.Now,
	}
}

// GetFridge returns the user's entries in storage order, empty when the user
// has no fridge record yet.
func (s *service) GetFridge(ctx context.Context, userID string) ([]domain.FridgeEntry, error) {
	fridge, err := s.repo.GetFridge(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get fridge: %w", err)
	}
	if fridge == nil {
		return []domain.FridgeEntry{}, nil
	}
	return fridge.Entries, nil
}

// MergeAdd merges entries into the user's fridge. Each input is keyed by
// (ingredient id, normalized unit); an existing entry absorbs the quantity
// and is removed when the sum drops to zero or below. Unknown keys insert a
// fresh entry only for positive quantities.
func (s *service) MergeAdd(ctx context.Context, userID string, entries []EntryInput) ([]domain.FridgeEntry, error) {
	log := logger.FromContext(ctx)

	var result []domain.FridgeEntry
	err := s.lockManager.WithLock(concurrency.FridgeKey(userID), func() error {
		fridge, err := s.repo.GetFridge(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get fridge: %w", err)
		}
		if fridge == nil {
			fridge = &domain.Fridge{UserID: userID}
		}

		for _, in := range entries {
			normalizedUnit := domain.NormalizeUnit(in.Unit)
			idx := fridge.FindEntry(in.IngredientID, normalizedUnit)
			if idx != -1 {
				fridge.Entries[idx].Quantity += in.Quantity
				if fridge.Entries[idx].Quantity <= 0 {
					fridge.RemoveEntry(idx)
				}
				continue
			}
			if in.Quantity > 0 {
				fridge.Entries = append(fridge.Entries, domain.FridgeEntry{
					IngredientID: in.IngredientID,
					Quantity:     in.Quantity,
					Unit:         normalizedUnit,
					AddedAt:      s.now(),
				})
			}
			// Negative quantity against a missing entry is a no-op
		}

		if err := s.repo.UpdateFridge(ctx, userID, *fridge); err != nil {
			log.Error("Failed to update fridge", "error", err, "userID", userID)
			return fmt.Errorf("failed to update fridge: %w", err)
		}
		result = fridge.Entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []domain.FridgeEntry{}
	}
	return result, nil
}

// RemoveByIngredientIDs drops every entry whose ingredient id is in the set,
// regardless of unit. Fails when the user has no fridge record.
func (s *service) RemoveByIngredientIDs(ctx context.Context, userID string, ingredientIDs []string) ([]domain.FridgeEntry, error) {
	log := logger.FromContext(ctx)

	remove := make(map[string]bool, len(ingredientIDs))
	for _, id := range ingredientIDs {
		remove[id] = true
	}

	var result []domain.FridgeEntry
	err := s.lockManager.WithLock(concurrency.FridgeKey(userID), func() error {
		fridge, err := s.repo.GetFridge(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get fridge: %w", err)
		}
		if fridge == nil {
			log.Warn("Fridge not found", "userID", userID)
			return domain.ErrFridgeNotFound
		}

		kept := fridge.Entries[:0]
		for _, e := range fridge.Entries {
			if !remove[e.IngredientID] {
				kept = append(kept, e)
			}
		}
		fridge.Entries = kept

		if err := s.repo.UpdateFridge(ctx, userID, *fridge); err != nil {
			log.Error("Failed to update fridge", "error", err, "userID", userID)
			return fmt.Errorf("failed to update fridge: %w", err)
		}
		result = fridge.Entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []domain.FridgeEntry{}
	}
	return result, nil
}

// Overwrite replaces the whole fridge with the given entries verbatim.
// No merging, no unit normalization: bulk edits from the client arrive
// already shaped. Fails when the user has no fridge record.
func (s *service) Overwrite(ctx context.Context, userID string, entries []domain.FridgeEntry) ([]domain.FridgeEntry, error) {
	log := logger.FromContext(ctx)

	var result []domain.FridgeEntry
	err := s.lockManager.WithLock(concurrency.FridgeKey(userID), func() error {
		fridge, err := s.repo.GetFridge(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to get fridge: %w", err)
		}
		if fridge == nil {
			log.Warn("Fridge not found", "userID", userID)
			return domain.ErrFridgeNotFound
		}

		fridge.Entries = entries

		if err := s.repo.UpdateFridge(ctx, userID, *fridge); err != nil {
			log.Error("Failed to update fridge", "error", err, "userID", userID)
			return fmt.Errorf("failed to update fridge: %w", err)
		}
		result = fridge.Entries
		return nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []domain.FridgeEntry{}
	}
	return result, nil
}
