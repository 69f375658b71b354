package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para Recipe (+ingredientes).
type RecipeRepository interface {
	// Create persiste la receta con sus ingredientes.
	Create(recipe *entity.Recipe) error
	GetByID(id string) (*entity.Recipe, error)
	GetByProductID(productID string) (*entity.Recipe, error)
	// ReplaceIngredients elimina los ingredientes actuales y persiste los nuevos.
	ReplaceIngredients(recipeID string, ingredients []entity.RecipeIngredient) error
	// Delete elimina la receta y sus ingredientes (no el producto asociado).
	Delete(id string) error
	List() ([]*entity.Recipe, error)
}
