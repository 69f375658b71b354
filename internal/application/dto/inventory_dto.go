package dto

import "github.com/shopspring/decimal"

// ProduceRequest entrada para ejecutar una orden de producción.
type ProduceRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	WarehouseID string          `json:"warehouse_id" validate:"required"`
}

// CountItemRequest una fila de la toma física de inventario: cantidad contada
// vs. cantidad que el sistema tenía al momento del conteo.
type CountItemRequest struct {
	ProductID   string          `json:"product_id" validate:"required"`
	PhysicalQty decimal.Decimal `json:"physical_qty"`
	CurrentQty  decimal.Decimal `json:"current_qty"`
}

// ReconcileRequest entrada para conciliar una toma de inventario.
type ReconcileRequest struct {
	WarehouseID string             `json:"warehouse_id" validate:"required"`
	Items       []CountItemRequest `json:"items" validate:"required,dive"`
}

// ReconcileResponse resultado de la conciliación: cuántos ajustes se emitieron.
// Error se llena cuando la conciliación quedó parcial (los ajustes ya
// aplicados no se revierten).
type ReconcileResponse struct {
	Adjustments int    `json:"adjustments"`
	Error       string `json:"error,omitempty"`
}

// StockResponse stock derivado: bodega -> producto -> cantidad neta.
type StockResponse map[string]map[string]decimal.Decimal
