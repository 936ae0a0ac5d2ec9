package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/domain"
)

// FridgeRepository implements the fridge repository for PostgreSQL.
// Each fridge is stored as a single JSONB document keyed by user id.
type FridgeRepository struct {
	db *pgxpool.Pool
}

// NewFridgeRepository creates a new FridgeRepository
func NewFridgeRepository(db *pgxpool.Pool) *FridgeRepository {
	return &FridgeRepository{db: db}
}

func (r *FridgeRepository) GetFridge(ctx context.Context, userID string) (*domain.Fridge, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var doc []byte
	query := `SELECT document FROM user_fridges WHERE user_id = $1`
	if err := r.db.QueryRow(ctx, query, uid).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get fridge: %w", err)
	}

	fridge := &domain.Fridge{UserID: userID}
	if err := unmarshalDocument(doc, fridge); err != nil {
		return nil, err
	}
	fridge.UserID = userID
	return fridge, nil
}

func (r *FridgeRepository) UpdateFridge(ctx context.Context, userID string, fridge domain.Fridge) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	doc, err := marshalDocument(fridge)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_fridges (user_id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, uid, doc); err != nil {
		return fmt.Errorf("failed to update fridge: %w", err)
	}
	return nil
}

func (r *FridgeRepository) DeleteFridge(ctx context.Context, userID string) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM user_fridges WHERE user_id = $1`, uid); err != nil {
		return fmt.Errorf("failed to delete fridge: %w", err)
	}
	return nil
}
