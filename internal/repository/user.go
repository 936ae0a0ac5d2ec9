package repository

import (
	"context"

	"github.com/dmorales/recetario/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error

	BeginTx(ctx context.Context) (UserTx, error)
}

// UserTx is the transaction scope for the user-deletion cascade. All steps
// commit together or not at all: deleting a user with ratings stripped but
// aggregates left stale is an invariant violation.
type UserTx interface {
	Tx

	DeleteUser(ctx context.Context, userID string) error
	DeleteProfile(ctx context.Context, userID string) error
	DeleteFridge(ctx context.Context, userID string) error
	DeleteFavorites(ctx context.Context, userID string) error
	DeleteHistory(ctx context.Context, userID string) error
	GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe domain.Recipe) error
}
