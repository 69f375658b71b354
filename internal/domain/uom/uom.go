package uom

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
)

// Unidades de medida soportadas.
const (
	Unidad     = "UNIDAD"
	Kilos      = "KILOS"
	Gramos     = "GRAMOS"
	Litros     = "LITROS"
	Mililitros = "MILILITROS"
)

// Familias de unidades. Solo se convierte dentro de la misma familia.
const (
	familyCount  = "count"
	familyMass   = "mass"
	familyVolume = "volume"
)

// units mapea cada unidad a su familia y a su factor respecto a la unidad base
// de la familia (GRAMOS para masa, MILILITROS para volumen, UNIDAD para conteo).
var units = map[string]struct {
	family string
	factor decimal.Decimal
}{
	Unidad:     {familyCount, decimal.NewFromInt(1)},
	Kilos:      {familyMass, decimal.NewFromInt(1000)},
	Gramos:     {familyMass, decimal.NewFromInt(1)},
	Litros:     {familyVolume, decimal.NewFromInt(1000)},
	Mililitros: {familyVolume, decimal.NewFromInt(1)},
}

// IsValid indica si la unidad pertenece a la enumeración cerrada.
func IsValid(unit string) bool {
	_, ok := units[unit]
	return ok
}

// Convert convierte una cantidad entre unidades de la misma familia
// (ej. 1500 GRAMOS -> 1.5 KILOS). Retorna ErrInvalidInput si alguna unidad no
// existe y ErrIncompatibleUnits si las familias difieren.
func Convert(quantity decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		if !IsValid(from) {
			return decimal.Zero, domain.ErrInvalidInput
		}
		return quantity, nil
	}
	f, ok := units[from]
	if !ok {
		return decimal.Zero, domain.ErrInvalidInput
	}
	t, ok := units[to]
	if !ok {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if f.family != t.family {
		return decimal.Zero, domain.ErrIncompatibleUnits
	}
	return quantity.Mul(f.factor).Div(t.factor), nil
}
