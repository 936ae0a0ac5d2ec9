// Package user manages accounts and the all-or-nothing deletion cascade.
package user

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/recipe"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the user service
type Repository interface {
	repository.User
}

// Service defines the interface for user operations
type Service interface {
	CreateUser(ctx context.Context, user domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

type service struct {
	repo Repository
}

// NewService creates a new user service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	log := logger.FromContext(ctx)

	user.Username = strings.TrimSpace(user.Username)
	if user.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetUserByUsername(ctx, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", domain.ErrInvalidInput, user.Username)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if err := s.repo.CreateUser(ctx, &user); err != nil {
		log.Error("Failed to create user", "error", err, "username", user.Username)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("User created", "userID", user.ID, "username", user.Username)
	return &user, nil
}

func (s *service) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	existing, err := s.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes the account and everything keyed to it in one
// transaction: profile, fridge, favorites, history, and the user's rating
// entries on every recipe, with those recipes' aggregates recomputed from
// the surviving entries. Either every step lands or none do.
func (s *service) DeleteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	existing, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if existing == nil {
		return domain.ErrUserNotFound
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error("Failed to begin transaction", "error", err)
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	rated, err := tx.GetRecipesRatedBy(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get rated recipes: %w", err)
	}
	for i := range rated {
		if !recipe.RemoveUserRating(&rated[i], userID) {
			continue
		}
		if err := tx.UpdateRecipe(ctx, rated[i]); err != nil {
			return fmt.Errorf("failed to update recipe %s: %w", rated[i].ID, err)
		}
	}

	if err := tx.DeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if err := tx.DeleteFridge(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete fridge: %w", err)
	}
	if err := tx.DeleteFavorites(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete favorites: %w", err)
	}
	if err := tx.DeleteHistory(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete history: %w", err)
	}
	if err := tx.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error("Failed to commit user deletion", "error", err, "userID", userID)
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("User deleted", "userID", userID, "recipesTouched", len(rated))
	return nil
}
