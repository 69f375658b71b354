package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecipeIngredientRequest un ingrediente de la receta. UOM es la unidad en que
// se digitó la cantidad; si difiere de la unidad del producto se convierte
// antes de almacenar (misma familia de unidades). Vacía = unidad del producto.
type RecipeIngredientRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UOM       string          `json:"uom"`
}

// CreateRecipeRequest entrada para crear una receta. Exactamente uno de
// ProductName (crea un producto terminado nuevo) o ProductID (marca un
// producto existente como terminado) debe venir.
type CreateRecipeRequest struct {
	ProductName string                    `json:"product_name"`
	ProductID   string                    `json:"product_id"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

// UpdateRecipeRequest entrada para actualizar una receta: reemplaza el
// conjunto de ingredientes y opcionalmente renombra el producto terminado.
type UpdateRecipeRequest struct {
	ProductName string                    `json:"product_name"`
	Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
}

// RecipeIngredientResponse un ingrediente persistido, con el producto expandido.
type RecipeIngredientResponse struct {
	ID       string          `json:"id"`
	Product  ProductResponse `json:"product"`
	Quantity decimal.Decimal `json:"quantity"`
}

// RecipeResponse salida de una receta con producto e ingredientes expandidos.
type RecipeResponse struct {
	ID          string                     `json:"id"`
	Product     ProductResponse            `json:"product"`
	Ingredients []RecipeIngredientResponse `json:"ingredients"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}
