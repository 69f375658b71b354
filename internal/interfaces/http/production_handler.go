package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// ProductionHandler maneja producción (expansión de receta) y toma de inventario.
type ProductionHandler struct {
	producer   *inventory.ProduceUseCase
	reconciler *inventory.ReconcileUseCase
	movements  *usecase.MovementUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(producer *inventory.ProduceUseCase, reconciler *inventory.ReconcileUseCase, movements *usecase.MovementUseCase) *ProductionHandler {
	return &ProductionHandler{producer: producer, reconciler: reconciler, movements: movements}
}

// Produce godoc
// @Summary      Registrar producción
// @Description  Genera el consumo de ingredientes (PRODUCCION salida) y el ingreso del producto terminado (PRODUCCION entrada) en una sola transacción.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProduceRequest  true  "Orden de producción"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production [post]
func (h *ProductionHandler) Produce(c *fiber.Ctx) error {
	var in dto.ProduceRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	mov, err := h.producer.Produce(c.Context(), GetActor(c), in.ProductID, in.Quantity, in.WarehouseID)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.movements.ToResponse(mov)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Reconcile godoc
// @Summary      Conciliar toma de inventario
// @Description  Por cada ítem con diferencia genera un AJUSTE independiente; los ya aplicados no se revierten si uno falla.
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReconcileRequest  true  "Conteo físico por producto"
// @Success      200   {object}  dto.ReconcileResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory-counts [post]
func (h *ProductionHandler) Reconcile(c *fiber.Ctx) error {
	var in dto.ReconcileRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	applied, err := h.reconciler.Reconcile(c.Context(), GetActor(c), in.WarehouseID, in.Items)
	if err != nil {
		// Conciliación parcial: reporta lo aplicado junto con el error.
		return c.Status(fiber.StatusConflict).JSON(dto.ReconcileResponse{
			Adjustments: applied,
			Error:       err.Error(),
		})
	}
	return c.JSON(dto.ReconcileResponse{Adjustments: applied})
}
