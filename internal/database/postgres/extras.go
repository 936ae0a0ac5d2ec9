package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/domain"
)

// FavoriteRepository implements the favorite repository for PostgreSQL
type FavoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository creates a new FavoriteRepository
func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func (r *FavoriteRepository) GetFavorites(ctx context.Context, userID string) (*domain.Favorites, error) {
	doc, err := getUserDocument(ctx, r.db, `SELECT document FROM user_favorites WHERE user_id = $1`, userID)
	if err != nil || doc == nil {
		return nil, err
	}

	favorites := &domain.Favorites{UserID: userID}
	if err := unmarshalDocument(doc, favorites); err != nil {
		return nil, err
	}
	favorites.UserID = userID
	return favorites, nil
}

func (r *FavoriteRepository) UpdateFavorites(ctx context.Context, userID string, favorites domain.Favorites) error {
	return upsertUserDocument(ctx, r.db, "user_favorites", userID, favorites)
}

func (r *FavoriteRepository) DeleteFavorites(ctx context.Context, userID string) error {
	return deleteUserDocument(ctx, r.db, "user_favorites", userID)
}

// HistoryRepository implements the history repository for PostgreSQL
type HistoryRepository struct {
	db *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository
func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) GetHistory(ctx context.Context, userID string) (*domain.History, error) {
	doc, err := getUserDocument(ctx, r.db, `SELECT document FROM user_history WHERE user_id = $1`, userID)
	if err != nil || doc == nil {
		return nil, err
	}

	history := &domain.History{UserID: userID}
	if err := unmarshalDocument(doc, history); err != nil {
		return nil, err
	}
	history.UserID = userID
	return history, nil
}

func (r *HistoryRepository) UpdateHistory(ctx context.Context, userID string, history domain.History) error {
	return upsertUserDocument(ctx, r.db, "user_history", userID, history)
}

func (r *HistoryRepository) DeleteHistory(ctx context.Context, userID string) error {
	return deleteUserDocument(ctx, r.db, "user_history", userID)
}

// ProfileRepository implements the profile repository for PostgreSQL
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	doc, err := getUserDocument(ctx, r.db, `SELECT document FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil || doc == nil {
		return nil, err
	}

	profile := &domain.Profile{UserID: userID}
	if err := unmarshalDocument(doc, profile); err != nil {
		return nil, err
	}
	profile.UserID = userID
	return profile, nil
}

func (r *ProfileRepository) UpsertProfile(ctx context.Context, profile domain.Profile) error {
	return upsertUserDocument(ctx, r.db, "user_profiles", profile.UserID, profile)
}

func (r *ProfileRepository) DeleteProfile(ctx context.Context, userID string) error {
	return deleteUserDocument(ctx, r.db, "user_profiles", userID)
}

// ---- Shared per-user JSONB document helpers ----

func getUserDocument(ctx context.Context, db *pgxpool.Pool, query, userID string) ([]byte, error) {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return nil, err
	}

	var doc []byte
	if err := db.QueryRow(ctx, query, uid).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

func upsertUserDocument(ctx context.Context, db *pgxpool.Pool, table, userID string, v any) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	doc, err := marshalDocument(v)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (user_id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET document = EXCLUDED.document, updated_at = NOW()
	`, table)
	if _, err := db.Exec(ctx, query, uid, doc); err != nil {
		return fmt.Errorf("failed to upsert document in %s: %w", table, err)
	}
	return nil
}

func deleteUserDocument(ctx context.Context, db *pgxpool.Pool, table, userID string) error {
	uid, err := parseUserUUID(userID)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE user_id = $1`, table)
	if _, err := db.Exec(ctx, query, uid); err != nil {
		return fmt.Errorf("failed to delete document from %s: %w", table, err)
	}
	return nil
}
