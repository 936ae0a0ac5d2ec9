package repository

import (
	"context"

	"github.com/dmorales/recetario/internal/domain"
)

// Fridge defines the interface for fridge persistence.
// A user has at most one fridge document; GetFridge returns nil when the
// user has no record yet.
type Fridge interface {
	GetFridge(ctx context.Context, userID string) (*domain.Fridge, error)
	UpdateFridge(ctx context.Context, userID string, fridge domain.Fridge) error
	DeleteFridge(ctx context.Context, userID string) error
}
