// Package profile manages per-user cooking preference documents.
package profile

import (
	"context"
	"fmt"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/logger"
	"github.com/dmorales/recetario/internal/repository"
)

// Repository defines the interface for data access required by the profile service
type Repository interface {
	repository.Profile
}

// Service defines the interface for profile operations
type Service interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	SaveProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

type service struct {
	repo  Repository
	users repository.User
}

// NewService creates a new profile service
func NewService(repo Repository, users repository.User) Service {
	return &service{repo: repo, users: users}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

// SaveProfile creates or replaces the user's preference document.
func (s *service) SaveProfile(ctx context.Context, profile domain.Profile) (*domain.Profile, error) {
	log := logger.FromContext(ctx)

	user, err := s.users.GetUserByID(ctx, profile.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		log.Error("Failed to save profile", "error", err, "userID", profile.UserID)
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &profile, nil
}

func (s *service) DeleteProfile(ctx context.Context, userID string) error {
	existing, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if existing == nil {
		return domain.ErrProfileNotFound
	}

	if err := s.repo.DeleteProfile(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}
