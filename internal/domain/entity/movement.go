package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada    = "ENTRADA"    // entrada a bodega (solo destino)
	MovementTypeSalida     = "SALIDA"     // salida de bodega (solo origen)
	MovementTypeTraspaso   = "TRASPASO"   // traslado entre bodegas (origen y destino)
	MovementTypeProduccion = "PRODUCCION" // consumo (origen) o ingreso (destino) de producción
	MovementTypeAjuste     = "AJUSTE"     // ajuste por toma de inventario (origen xor destino)
)

// Movement es una entrada del libro de movimientos (append-only): mueve cantidad
// hacia la bodega destino y/o desde la bodega origen. Al menos uno de los dos
// debe estar presente. No existe actualización ni borrado de movimientos.
type Movement struct {
	ID                     string
	Type                   string
	OriginWarehouseID      string // vacío = sin origen
	DestinationWarehouseID string // vacío = sin destino
	UserID                 string // vacío = movimiento del sistema
	Reference              string // nota de auditoría, opcional
	Date                   time.Time
	CreatedAt              time.Time
	Items                  []MovementItem
}

// MovementItem una línea del movimiento: producto y cantidad (siempre positiva;
// el signo lo da el rol origen/destino de la bodega).
type MovementItem struct {
	ID         string
	MovementID string
	ProductID  string
	Quantity   decimal.Decimal
}
