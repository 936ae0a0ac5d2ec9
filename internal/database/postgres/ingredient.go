package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/domain"
)

// IngredientRepository implements the ingredient repository for PostgreSQL
type IngredientRepository struct {
	db *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{db: db}
}

func (r *IngredientRepository) CreateIngredient(ctx context.Context, ingredient *domain.Ingredient) error {
	units, err := json.Marshal(ingredient.Units)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalDocument, err)
	}

	query := `
		INSERT INTO ingredients (ingredient_id, name, units, default_unit, category)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := r.db.Exec(ctx, query, ingredient.ID, ingredient.Name, units, ingredient.DefaultUnit, ingredient.Category); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrIngredientExists
		}
		return fmt.Errorf("failed to insert ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepository) UpdateIngredient(ctx context.Context, ingredient domain.Ingredient) error {
	units, err := json.Marshal(ingredient.Units)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMarshalDocument, err)
	}

	query := `
		UPDATE ingredients
		SET name = $2, units = $3, default_unit = $4, category = $5
		WHERE ingredient_id = $1
	`
	if _, err := r.db.Exec(ctx, query, ingredient.ID, ingredient.Name, units, ingredient.DefaultUnit, ingredient.Category); err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepository) GetIngredientByID(ctx context.Context, id string) (*domain.Ingredient, error) {
	query := `SELECT ingredient_id, name, units, default_unit, category FROM ingredients WHERE ingredient_id = $1`
	return r.scanIngredient(r.db.QueryRow(ctx, query, id))
}

func (r *IngredientRepository) GetIngredientByName(ctx context.Context, name string) (*domain.Ingredient, error) {
	query := `SELECT ingredient_id, name, units, default_unit, category FROM ingredients WHERE name = $1`
	return r.scanIngredient(r.db.QueryRow(ctx, query, name))
}

func (r *IngredientRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]domain.Ingredient, error) {
	query := `SELECT ingredient_id, name, units, default_unit, category FROM ingredients WHERE ingredient_id = ANY($1) ORDER BY name`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredientRows(rows)
}

func (r *IngredientRepository) GetAllIngredients(ctx context.Context) ([]domain.Ingredient, error) {
	query := `SELECT ingredient_id, name, units, default_unit, category FROM ingredients ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ingredients: %w", err)
	}
	defer rows.Close()
	return scanIngredientRows(rows)
}

func (r *IngredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE ingredient_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

func (r *IngredientRepository) scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var ing domain.Ingredient
	var units []byte
	if err := row.Scan(&ing.ID, &ing.Name, &units, &ing.DefaultUnit, &ing.Category); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	if len(units) > 0 {
		if err := unmarshalDocument(units, &ing.Units); err != nil {
			return nil, err
		}
	}
	return &ing, nil
}

func scanIngredientRows(rows pgx.Rows) ([]domain.Ingredient, error) {
	ingredients := make([]domain.Ingredient, 0)
	for rows.Next() {
		var ing domain.Ingredient
		var units []byte
		if err := rows.Scan(&ing.ID, &ing.Name, &units, &ing.DefaultUnit, &ing.Category); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		if len(units) > 0 {
			if err := unmarshalDocument(units, &ing.Units); err != nil {
				return nil, err
			}
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ingredients: %w", err)
	}
	return ingredients, nil
}
