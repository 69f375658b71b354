package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Description    string          `json:"description" validate:"max=500"`
	UOM            string          `json:"uom" validate:"required"`
	MinStock       decimal.Decimal `json:"min_stock"`
	Price          decimal.Decimal `json:"price"`
	IsFinishedGood bool            `json:"is_finished_good"`
}

// ImportProductRow una fila del archivo de importación masiva. MinStock y
// Price ausentes o inválidos se importan como cero.
type ImportProductRow struct {
	Name           string          `json:"name" validate:"required"`
	Description    string          `json:"description"`
	UOM            string          `json:"uom" validate:"required"`
	MinStock       decimal.Decimal `json:"min_stock"`
	Price          decimal.Decimal `json:"price"`
	IsFinishedGood bool            `json:"is_finished_good"`
}

// ImportProductsResponse resultado de una importación masiva.
type ImportProductsResponse struct {
	Imported int `json:"imported"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	UOM            string          `json:"uom"`
	MinStock       decimal.Decimal `json:"min_stock"`
	Price          decimal.Decimal `json:"price"`
	IsFinishedGood bool            `json:"is_finished_good"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
