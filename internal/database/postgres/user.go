package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/domain"
	"github.com/dmorales/recetario/internal/repository"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, name, username, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Username, user.Email).Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	query := `SELECT user_id, name, username, email, created_at, updated_at FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, uid))
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT user_id, name, username, email, created_at, updated_at FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	uid, err := parseUserUUID(user.ID)
	if err != nil {
		return err
	}

	query := `
		UPDATE users
		SET name = $2, username = $3, email = $4, updated_at = NOW()
		WHERE user_id = $1
	`
	if _, err := r.db.Exec(ctx, query, uid, user.Name, user.Username, user.Email); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// BeginTx opens the transaction scope used by the user-deletion cascade
func (r *UserRepository) BeginTx(ctx context.Context) (repository.UserTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &userTx{tx: tx}, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Name, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// userTx implements repository.UserTx on a single pgx transaction
type userTx struct {
	tx pgx.Tx
}

func (t *userTx) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *userTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return errors.New(domain.ErrMsgTxClosed)
		}
		return err
	}
	return nil
}

func (t *userTx) DeleteUser(ctx context.Context, userID string) error {
	return t.deleteByUser(ctx, `DELETE FROM users WHERE user_id = $1`, userID, "user")
}

func (t *userTx) DeleteProfile(ctx context.Context, userID string) error {
	return t.deleteByUser(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID, "profile")
}

func (t *userTx) DeleteFridge(ctx context.Context, userID string) error {
	return t.deleteByUser(ctx, `DELETE FROM user_fridges WHERE user_id = $1`, userID, "fridge")
}

func (t *userTx) DeleteFavorites(ctx context.Context, userID string) error {
	return t.deleteByUser(ctx, `DELETE FROM user_favorites WHERE user_id = $1`, userID, "favorites")
}

func (t *userTx) DeleteHistory(ctx context.Context, userID string) error {
	return t.deleteByUser(ctx, `DELETE FROM user_history WHERE user_id = $1`, userID, "history")
}

func (t *userTx) GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error) {
	return getRecipesRatedByQuerier(ctx, t.tx, userID)
}

func (t *userTx) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	return updateRecipeQuerier(ctx, t.tx, recipe)
}

func (t *userTx) deleteByUser(ctx context.Context, query, userID, what string) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, query, uid); err != nil {
		return fmt.Errorf("failed to delete %s: %w", what, err)
	}
	return nil
}
