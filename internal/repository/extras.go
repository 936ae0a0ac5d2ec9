package repository

import (
	"context"

	"github.com/dmorales/recetario/internal/domain"
)

// Favorite defines the interface for per-user favorite recipe sets
type Favorite interface {
	GetFavorites(ctx context.Context, userID string) (*domain.Favorites, error)
	UpdateFavorites(ctx context.Context, userID string, favorites domain.Favorites) error
	DeleteFavorites(ctx context.Context, userID string) error
}

// History defines the interface for per-user recipe view logs
type History interface {
	GetHistory(ctx context.Context, userID string) (*domain.History, error)
	UpdateHistory(ctx context.Context, userID string, history domain.History) error
	DeleteHistory(ctx context.Context, userID string) error
}

// Profile defines the interface for per-user cooking preference documents
type Profile interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, profile domain.Profile) error
	DeleteProfile(ctx context.Context, userID string) error
}
