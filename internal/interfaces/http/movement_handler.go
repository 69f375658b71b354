package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
)

// MovementHandler maneja el libro de movimientos (append-only: sin PUT/DELETE).
type MovementHandler struct {
	recorder *inventory.RecordMovementUseCase
	lister   *usecase.MovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(recorder *inventory.RecordMovementUseCase, lister *usecase.MovementUseCase) *MovementHandler {
	return &MovementHandler{recorder: recorder, lister: lister}
}

// Record godoc
// @Summary      Registrar movimiento (ENTRADA, SALIDA, TRASPASO, AJUSTE)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "Movimiento con sus líneas"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	mov, err := h.recorder.Record(c.Context(), GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.lister.ToResponse(mov)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (más reciente primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	out, err := h.lister.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
