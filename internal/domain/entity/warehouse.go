package entity

import "time"

// Warehouse representa una bodega donde se almacena inventario.
// Inmutable una vez referenciada por movimientos; no existe flujo de borrado.
type Warehouse struct {
	ID        string
	Name      string
	Location  string // opcional; vacío = sin ubicación
	CreatedAt time.Time
	UpdatedAt time.Time
}
