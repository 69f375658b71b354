package entity

import "github.com/shopspring/decimal"

// StockByWarehouse es el stock derivado del libro de movimientos:
// bodega -> producto -> cantidad neta. No se persiste; se recalcula plegando
// todos los movimientos (destino suma, origen resta). Puede contener valores
// fraccionarios y negativos (bodega sobre-girada).
type StockByWarehouse map[string]map[string]decimal.Decimal

// Quantity devuelve la cantidad neta de un producto en una bodega (cero si no hay registro).
func (s StockByWarehouse) Quantity(warehouseID, productID string) decimal.Decimal {
	wh, ok := s[warehouseID]
	if !ok {
		return decimal.Zero
	}
	q, ok := wh[productID]
	if !ok {
		return decimal.Zero
	}
	return q
}
