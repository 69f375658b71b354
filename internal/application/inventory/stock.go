package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// StockUseCase deriva el stock actual plegando el libro de movimientos.
// No hay tabla materializada: el libro es la única fuente de verdad.
type StockUseCase struct {
	movementRepo  repository.MovementRepository
	warehouseRepo repository.WarehouseRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(movementRepo repository.MovementRepository, warehouseRepo repository.WarehouseRepository) *StockUseCase {
	return &StockUseCase{movementRepo: movementRepo, warehouseRepo: warehouseRepo}
}

// ComputeStockByWarehouse calcula bodega -> producto -> cantidad neta:
// cada línea suma en la bodega destino y resta en la bodega origen. La suma es
// conmutativa, así que el resultado no depende del orden de los movimientos.
// Las cantidades pueden ser fraccionarias y negativas (sin piso).
func (uc *StockUseCase) ComputeStockByWarehouse(ctx context.Context) (entity.StockByWarehouse, error) {
	warehouses, err := uc.warehouseRepo.List()
	if err != nil {
		return nil, err
	}
	movements, err := uc.movementRepo.ListAll()
	if err != nil {
		return nil, err
	}

	stock := make(entity.StockByWarehouse, len(warehouses))
	for _, w := range warehouses {
		stock[w.ID] = map[string]decimal.Decimal{}
	}
	for _, m := range movements {
		for _, item := range m.Items {
			if m.DestinationWarehouseID != "" {
				dest := stock[m.DestinationWarehouseID]
				if dest == nil {
					dest = map[string]decimal.Decimal{}
					stock[m.DestinationWarehouseID] = dest
				}
				dest[item.ProductID] = dest[item.ProductID].Add(item.Quantity)
			}
			if m.OriginWarehouseID != "" {
				origin := stock[m.OriginWarehouseID]
				if origin == nil {
					origin = map[string]decimal.Decimal{}
					stock[m.OriginWarehouseID] = origin
				}
				origin[item.ProductID] = origin[item.ProductID].Sub(item.Quantity)
			}
		}
	}
	return stock, nil
}
