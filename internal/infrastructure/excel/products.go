package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ParseProducts lee la primera hoja de un .xlsx de importación masiva. La
// primera fila son encabezados (name, description, uom, minStock, price,
// isFinishedGood; sin distinción de mayúsculas); las filas sin nombre se
// ignoran y los números inválidos entran como cero.
func ParseProducts(r io.Reader) ([]dto.ImportProductRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("leer filas: %w", err)
	}
	if len(rows) < 2 {
		return nil, domain.ErrInvalidInput
	}

	cols := map[string]int{}
	for i, header := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := cols["name"]; !ok {
		return nil, domain.ErrInvalidInput
	}

	var out []dto.ImportProductRow
	for _, row := range rows[1:] {
		name := cell(row, cols, "name")
		if name == "" {
			continue
		}
		out = append(out, dto.ImportProductRow{
			Name:           name,
			Description:    cell(row, cols, "description"),
			UOM:            strings.ToUpper(cell(row, cols, "uom")),
			MinStock:       parseDecimal(cell(row, cols, "minstock")),
			Price:          parseDecimal(cell(row, cols, "price")),
			IsFinishedGood: parseBool(cell(row, cols, "isfinishedgood")),
		})
	}
	if len(out) == 0 {
		return nil, domain.ErrInvalidInput
	}
	return out, nil
}

// ProductsWorkbook genera el .xlsx de exportación del catálogo de productos.
func ProductsWorkbook(products []dto.ProductResponse) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"name", "description", "uom", "minStock", "price", "isFinishedGood"}
	for i, h := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellRef, h); err != nil {
			return nil, err
		}
	}
	for rowIdx, p := range products {
		values := []any{p.Name, p.Description, p.UOM, p.MinStock.InexactFloat64(), p.Price.InexactFloat64(), p.IsFinishedGood}
		for colIdx, v := range values {
			cellRef, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellRef, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseDecimal(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "si", "sí", "yes", "verdadero":
		return true
	}
	return false
}
