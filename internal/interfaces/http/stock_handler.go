package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/excel"
)

// StockHandler expone el stock derivado del libro de movimientos.
type StockHandler struct {
	stock      *inventory.StockUseCase
	warehouses *usecase.WarehouseUseCase
	products   *usecase.ProductUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(stock *inventory.StockUseCase, warehouses *usecase.WarehouseUseCase, products *usecase.ProductUseCase) *StockHandler {
	return &StockHandler{stock: stock, warehouses: warehouses, products: products}
}

// Get godoc
// @Summary      Stock por bodega (derivado, nunca almacenado)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockResponse
// @Router       /api/stock [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	stock, err := h.stock.ComputeStockByWarehouse(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.StockResponse(stock))
}

// Export godoc
// @Summary      Exportar stock actual a .xlsx
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/stock/export [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	stock, err := h.stock.ComputeStockByWarehouse(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	warehouses, err := h.warehouses.List()
	if err != nil {
		return respondError(c, err)
	}
	products, err := h.products.List()
	if err != nil {
		return respondError(c, err)
	}
	f, err := excel.StockWorkbook(stock, warehouses, products)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.xlsx"`)
	return f.Write(c.Response().BodyWriter())
}
