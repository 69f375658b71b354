package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ReconcileUseCase alinea el stock del sistema con una toma física emitiendo
// un movimiento AJUSTE por cada producto con diferencia. Cada ajuste
// compromete de forma independiente: si falla el ajuste N+1, los primeros N
// quedan aplicados en el libro (no hay transacción externa que envuelva la
// conciliación completa).
type ReconcileUseCase struct {
	recorder *RecordMovementUseCase
}

// NewReconcileUseCase construye el caso de uso sobre el registrador de movimientos.
func NewReconcileUseCase(recorder *RecordMovementUseCase) *ReconcileUseCase {
	return &ReconcileUseCase{recorder: recorder}
}

// Reconcile filtra los conteos con diferencia exacta (sin tolerancia) y emite
// los ajustes: diferencia negativa sale de la bodega (origen), positiva entra
// (destino), siempre con cantidad |diff|. Si no hay diferencias no se abre
// transacción alguna. Retorna cuántos ajustes quedaron aplicados.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context, actor entity.Actor, warehouseID string, counts []dto.CountItemRequest) (int, error) {
	if warehouseID == "" {
		return 0, domain.ErrInvalidInput
	}

	var pending []dto.CountItemRequest
	for _, c := range counts {
		if !c.PhysicalQty.Equal(c.CurrentQty) {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	applied := 0
	for _, c := range pending {
		diff := c.PhysicalQty.Sub(c.CurrentQty)
		req := dto.RecordMovementRequest{
			Type:      entity.MovementTypeAjuste,
			Reference: fmt.Sprintf("Ajuste por toma de inventario (Físico: %s, Sistema: %s)", c.PhysicalQty, c.CurrentQty),
			Items: []dto.MovementItemRequest{{
				ProductID: c.ProductID,
				Quantity:  diff.Abs(),
			}},
		}
		if diff.IsNegative() {
			req.OriginWarehouseID = warehouseID
		} else {
			req.DestinationWarehouseID = warehouseID
		}
		if _, err := uc.recorder.Record(ctx, actor, req); err != nil {
			return applied, err
		}
		applied++
	}
	return applied, nil
}
