package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.RecipeRepository = (*RecipeRepo)(nil)

// RecipeRepo implementación del puerto RecipeRepository sobre PostgreSQL.
type RecipeRepo struct {
	q Querier
}

// NewRecipeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRecipeRepository(q Querier) *RecipeRepo {
	return &RecipeRepo{q: q}
}

// Create persiste la receta y sus ingredientes.
func (r *RecipeRepo) Create(recipe *entity.Recipe) error {
	query := `
		INSERT INTO recipes (id, product_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		recipe.ID, recipe.ProductID, recipe.CreatedAt, recipe.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert recipe: %w", err)
	}
	return r.insertIngredients(recipe.ID, recipe.Ingredients)
}

// GetByID obtiene una receta con sus ingredientes.
func (r *RecipeRepo) GetByID(id string) (*entity.Recipe, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetByProductID obtiene la receta del producto terminado (1:1), si existe.
func (r *RecipeRepo) GetByProductID(productID string) (*entity.Recipe, error) {
	return r.getBy(`WHERE product_id = $1`, productID)
}

// ReplaceIngredients elimina los ingredientes actuales y persiste los nuevos.
func (r *RecipeRepo) ReplaceIngredients(recipeID string, ingredients []entity.RecipeIngredient) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("delete recipe ingredients: %w", err)
	}
	if err := r.insertIngredients(recipeID, ingredients); err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE recipes SET updated_at = now() WHERE id = $1`, recipeID)
	if err != nil {
		return fmt.Errorf("touch recipe: %w", err)
	}
	return nil
}

// Delete elimina la receta y sus ingredientes (el producto lo elimina el caso de uso).
func (r *RecipeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM recipe_ingredients WHERE recipe_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe ingredients: %w", err)
	}
	_, err = r.q.Exec(context.Background(), `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// List devuelve todas las recetas con sus ingredientes.
func (r *RecipeRepo) List() ([]*entity.Recipe, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, product_id, created_at, updated_at FROM recipes ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Recipe
	index := map[string]*entity.Recipe{}
	for rows.Next() {
		var recipe entity.Recipe
		if err := rows.Scan(&recipe.ID, &recipe.ProductID, &recipe.CreatedAt, &recipe.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		list = append(list, &recipe)
		index[recipe.ID] = &recipe
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return list, nil
	}

	ingRows, err := r.q.Query(context.Background(), `
		SELECT id, recipe_id, product_id, quantity FROM recipe_ingredients`)
	if err != nil {
		return nil, fmt.Errorf("list recipe ingredients: %w", err)
	}
	defer ingRows.Close()
	for ingRows.Next() {
		var ing entity.RecipeIngredient
		if err := ingRows.Scan(&ing.ID, &ing.RecipeID, &ing.ProductID, &ing.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		if recipe, ok := index[ing.RecipeID]; ok {
			recipe.Ingredients = append(recipe.Ingredients, ing)
		}
	}
	return list, ingRows.Err()
}

func (r *RecipeRepo) getBy(where string, arg any) (*entity.Recipe, error) {
	query := `SELECT id, product_id, created_at, updated_at FROM recipes ` + where
	var recipe entity.Recipe
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&recipe.ID, &recipe.ProductID, &recipe.CreatedAt, &recipe.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	rows, err := r.q.Query(context.Background(), `
		SELECT id, recipe_id, product_id, quantity
		FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID)
	if err != nil {
		return nil, fmt.Errorf("get recipe ingredients: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ing entity.RecipeIngredient
		if err := rows.Scan(&ing.ID, &ing.RecipeID, &ing.ProductID, &ing.Quantity); err != nil {
			return nil, fmt.Errorf("scan recipe ingredient: %w", err)
		}
		recipe.Ingredients = append(recipe.Ingredients, ing)
	}
	return &recipe, rows.Err()
}

func (r *RecipeRepo) insertIngredients(recipeID string, ingredients []entity.RecipeIngredient) error {
	query := `
		INSERT INTO recipe_ingredients (id, recipe_id, product_id, quantity)
		VALUES ($1, $2, $3, $4)`
	for _, ing := range ingredients {
		if _, err := r.q.Exec(context.Background(), query,
			ing.ID, recipeID, ing.ProductID, ing.Quantity); err != nil {
			return fmt.Errorf("insert recipe ingredient: %w", err)
		}
	}
	return nil
}
