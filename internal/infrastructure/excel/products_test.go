package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/infrastructure/excel"
)

func workbookBytes(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, v := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellRef, v))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestParseProducts_LeePorEncabezado(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"Name", "UOM", "minStock", "price", "isFinishedGood", "description"},
		{"Harina", "gramos", "100", "2.5", "no", "Harina de trigo"},
		{"Pan", "UNIDAD", "", "", "si", ""},
	})

	rows, err := excel.ParseProducts(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Harina", rows[0].Name)
	assert.Equal(t, "GRAMOS", rows[0].UOM, "la unidad se normaliza a mayúsculas")
	assert.True(t, rows[0].MinStock.Equal(decimal.NewFromInt(100)))
	assert.True(t, rows[0].Price.Equal(decimal.RequireFromString("2.5")))
	assert.False(t, rows[0].IsFinishedGood)
	assert.Equal(t, "Harina de trigo", rows[0].Description)

	assert.Equal(t, "Pan", rows[1].Name)
	assert.True(t, rows[1].MinStock.IsZero(), "celda vacía importa como cero")
	assert.True(t, rows[1].IsFinishedGood, "\"si\" cuenta como verdadero")
}

func TestParseProducts_IgnoraFilasSinNombre(t *testing.T) {
	buf := workbookBytes(t, [][]any{
		{"name", "uom"},
		{"", "GRAMOS"},
		{"Leche", "MILILITROS"},
	})

	rows, err := excel.ParseProducts(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Leche", rows[0].Name)
}

func TestParseProducts_ArchivosInvalidos(t *testing.T) {
	// Sin columna name
	buf := workbookBytes(t, [][]any{
		{"producto", "unidad"},
		{"Harina", "GRAMOS"},
	})
	_, err := excel.ParseProducts(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Solo encabezados
	buf = workbookBytes(t, [][]any{{"name", "uom"}})
	_, err = excel.ParseProducts(buf)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// No es un xlsx
	_, err = excel.ParseProducts(bytes.NewBufferString("esto no es un zip"))
	assert.Error(t, err)
}

func TestProductsWorkbook_RoundTrip(t *testing.T) {
	products := []dto.ProductResponse{
		{Name: "Harina", Description: "De trigo", UOM: "GRAMOS", MinStock: decimal.NewFromInt(100), Price: decimal.RequireFromString("2.5")},
		{Name: "Pan", UOM: "UNIDAD", MinStock: decimal.Zero, Price: decimal.Zero, IsFinishedGood: true},
	}

	f, err := excel.ProductsWorkbook(products)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := excel.ParseProducts(&buf)
	require.NoError(t, err)
	require.Len(t, rows, 2, "lo exportado debe poder re-importarse")

	assert.Equal(t, "Harina", rows[0].Name)
	assert.Equal(t, "GRAMOS", rows[0].UOM)
	assert.True(t, rows[0].MinStock.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "Pan", rows[1].Name)
	assert.True(t, rows[1].IsFinishedGood)
}
