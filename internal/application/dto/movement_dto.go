package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementItemRequest una línea de un movimiento a registrar.
type MovementItemRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// RecordMovementRequest entrada para registrar un movimiento de inventario.
// La presencia de origen/destino debe corresponder al tipo:
// ENTRADA solo destino, SALIDA solo origen, TRASPASO ambos,
// AJUSTE exactamente uno, PRODUCCION al menos uno.
type RecordMovementRequest struct {
	Type                   string                `json:"type" validate:"required"`
	OriginWarehouseID      string                `json:"origin_warehouse_id"`
	DestinationWarehouseID string                `json:"destination_warehouse_id"`
	Reference              string                `json:"reference" validate:"max=500"`
	Items                  []MovementItemRequest `json:"items" validate:"required,min=1,dive"`
}

// MovementItemResponse una línea de un movimiento persistido.
type MovementItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// MovementResponse salida de un movimiento. UserName es "Sistema" cuando el
// movimiento no tiene usuario asociado.
type MovementResponse struct {
	ID                     string                 `json:"id"`
	Type                   string                 `json:"type"`
	OriginWarehouseID      string                 `json:"origin_warehouse_id,omitempty"`
	DestinationWarehouseID string                 `json:"destination_warehouse_id,omitempty"`
	UserID                 string                 `json:"user_id,omitempty"`
	UserName               string                 `json:"user_name"`
	Reference              string                 `json:"reference,omitempty"`
	Date                   time.Time              `json:"date"`
	Items                  []MovementItemResponse `json:"items"`
}
