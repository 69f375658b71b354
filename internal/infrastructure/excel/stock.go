package excel

import (
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// StockWorkbook genera el .xlsx del stock derivado: una fila por combinación
// bodega/producto con cantidad distinta de cero.
func StockWorkbook(stock entity.StockByWarehouse, warehouses []dto.WarehouseResponse, products []dto.ProductResponse) (*excelize.File, error) {
	productNames := make(map[string]string, len(products))
	productUOMs := make(map[string]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
		productUOMs[p.ID] = p.UOM
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	headers := []string{"warehouse", "product", "uom", "quantity"}
	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return nil, err
		}
	}

	row := 2
	for _, w := range warehouses {
		byProduct := stock[w.ID]
		for _, p := range products {
			qty, ok := byProduct[p.ID]
			if !ok || qty.IsZero() {
				continue
			}
			values := []any{w.Name, productNames[p.ID], productUOMs[p.ID], qty.InexactFloat64()}
			for colIdx, v := range values {
				cellRef, err := excelize.CoordinatesToCellName(colIdx+1, row)
				if err != nil {
					return nil, err
				}
				if err := f.SetCellValue(sheet, cellRef, v); err != nil {
					return nil, err
				}
			}
			row++
		}
	}
	return f, nil
}
