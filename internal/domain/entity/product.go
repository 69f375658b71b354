package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario: materia prima o producto terminado.
// Un producto pasa a ser terminado (IsFinishedGood) al crearse así o al
// asociarle una receta; el stock por bodega se deriva del libro de movimientos.
type Product struct {
	ID             string
	Name           string
	Description    string // opcional
	UOM            string // unidad de medida, ver internal/domain/uom
	MinStock       decimal.Decimal
	Price          decimal.Decimal
	IsFinishedGood bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
