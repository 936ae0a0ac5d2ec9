// Package history tracks each user's recipe view log, newest first with one
// entry per recipe.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the history service
type Repository interface {
	repository.History
}

// Service defines the interface for view-history operations
type Service interface {
	GetHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error)
	RecordView(ctx context.Context, userID, recipeID string) ([]domain.HistoryEntry, error)
	ClearHistory(ctx context.Context, userID string) error
}

type service struct {
	repo    Repository
	recipes repository.Recipe
	now     func() time.Time
}

// NewService creates a new history service
func NewService(repo Repository, recipes repository.Recipe) Service {
	return &service{
		repo:    repo,
		recipes: recipes,
		now:     time.Now,
	}
}

func (s *service) GetHistory(ctx context.Context, userID string) ([]domain.HistoryEntry, error) {
	history, err := s.repo.GetHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if history == nil {
		return []domain.HistoryEntry{}, nil
	}
	return history.Entries, nil
}

// RecordView pushes the recipe to the front of the log. A re-view moves the
// existing entry forward and refreshes its timestamp instead of adding a
// duplicate.
func (s *service) RecordView(ctx context.Context, userID, recipeID string) ([]domain.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}

	history, err := s.repo.GetHistory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	if history == nil {
		history = &domain.History{UserID: userID}
	}

	for i, entry := range history.Entries {
		if entry.RecipeID == recipeID {
			history.Entries = append(history.Entries[:i], history.Entries[i+1:]...)
			break
		}
	}
	front := domain.HistoryEntry{RecipeID: recipeID, ViewedAt: s.now()}
	history.Entries = append([]domain.HistoryEntry{front}, history.Entries...)

	if err := s.repo.UpdateHistory(ctx, userID, *history); err != nil {
		log.Error("Failed to update history", "error", err, "userID", userID)
		return nil, fmt.Errorf("failed to update history: %w", err)
	}

	return history.Entries, nil
}

func (s *service) ClearHistory(ctx context.Context, userID string) error {
	history, err := s.repo.GetHistory(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get history: %w", err)
	}
	if history == nil {
		return domain.ErrHistoryNotFound
	}

	if err := s.repo.DeleteHistory(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	return nil
}
