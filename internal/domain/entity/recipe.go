package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe es la lista de materiales (BOM de un solo nivel) de un producto
// terminado: qué materias primas y en qué cantidad consume producir una unidad.
// Un producto tiene a lo sumo una receta; receta, ingredientes y producto
// terminado se crean y eliminan como una sola unidad.
type Recipe struct {
	ID          string
	ProductID   string
	Ingredients []RecipeIngredient
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeIngredient una materia prima de la receta. Quantity está expresada en
// la unidad de medida propia del producto ingrediente (la conversión desde la
// unidad digitada ocurre antes de persistir).
type RecipeIngredient struct {
	ID        string
	RecipeID  string
	ProductID string
	Quantity  decimal.Decimal
}
