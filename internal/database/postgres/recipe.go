package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmorales/recetario/internal/domain"
)

// RecipeRepository implements the recipe repository for PostgreSQL.
// The full recipe lives in a JSONB document; type, difficulty and rating
// are mirrored into columns for filtering and ordering.
type RecipeRepository struct {
	db *pgxpool.Pool
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	doc, err := marshalDocument(recipe)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipes (recipe_id, recipe_type, difficulty, rating, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	if _, err := r.db.Exec(ctx, query, recipe.ID, string(recipe.Type), string(recipe.Difficulty), recipe.Rating, doc); err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}
	return nil
}

func (r *RecipeRepository) UpdateRecipe(ctx context.Context, recipe domain.Recipe) error {
	return updateRecipeQuerier(ctx, r.db, recipe)
}

func (r *RecipeRepository) GetRecipeByID(ctx context.Context, recipeID string) (*domain.Recipe, error) {
	var doc []byte
	query := `SELECT document FROM recipes WHERE recipe_id = $1`
	if err := r.db.QueryRow(ctx, query, recipeID).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	var recipe domain.Recipe
	if err := unmarshalDocument(doc, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *RecipeRepository) GetAllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	query := `SELECT document FROM recipes ORDER BY created_at`
	return r.queryRecipes(ctx, query)
}

func (r *RecipeRepository) GetRecipesByType(ctx context.Context, recipeType domain.RecipeType) ([]domain.Recipe, error) {
	query := `SELECT document FROM recipes WHERE recipe_type = $1 ORDER BY created_at`
	return r.queryRecipes(ctx, query, string(recipeType))
}

func (r *RecipeRepository) GetRecipesByDifficulty(ctx context.Context, difficulty domain.Difficulty) ([]domain.Recipe, error) {
	query := `SELECT document FROM recipes WHERE difficulty = $1 ORDER BY created_at`
	return r.queryRecipes(ctx, query, string(difficulty))
}

func (r *RecipeRepository) GetPopularRecipes(ctx context.Context, limit int) ([]domain.Recipe, error) {
	query := `SELECT document FROM recipes ORDER BY rating DESC, created_at LIMIT $1`
	return r.queryRecipes(ctx, query, limit)
}

func (r *RecipeRepository) GetRecipesRatedBy(ctx context.Context, userID string) ([]domain.Recipe, error) {
	return getRecipesRatedByQuerier(ctx, r.db, userID)
}

func (r *RecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]domain.Recipe, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()
	return scanRecipeRows(rows)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so recipe reads
// and updates can run inside the user-deletion transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func updateRecipeQuerier(ctx context.Context, q querier, recipe domain.Recipe) error {
	doc, err := marshalDocument(recipe)
	if err != nil {
		return err
	}

	query := `
		UPDATE recipes
		SET recipe_type = $2, difficulty = $3, rating = $4, document = $5, updated_at = NOW()
		WHERE recipe_id = $1
	`
	if _, err := q.Exec(ctx, query, recipe.ID, string(recipe.Type), string(recipe.Difficulty), recipe.Rating, doc); err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	return nil
}

func getRecipesRatedByQuerier(ctx context.Context, q querier, userID string) ([]domain.Recipe, error) {
	query := `
		SELECT document FROM recipes
		WHERE document->'ratings' @> jsonb_build_array(jsonb_build_object('userId', $1::text))
		ORDER BY created_at
	`
	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rated recipes: %w", err)
	}
	defer rows.Close()
	return scanRecipeRows(rows)
}

func scanRecipeRows(rows pgx.Rows) ([]domain.Recipe, error) {
	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		var recipe domain.Recipe
		if err := unmarshalDocument(doc, &recipe); err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}
	return recipes, nil
}
