package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func buildReconciler() (*inventory.ReconcileUseCase, *memMovementRepo) {
	recorder, movRepo := buildRecorder()
	return inventory.NewReconcileUseCase(recorder), movRepo
}

func count(productID, physical, current string) dto.CountItemRequest {
	return dto.CountItemRequest{
		ProductID:   productID,
		PhysicalQty: decimal.RequireFromString(physical),
		CurrentQty:  decimal.RequireFromString(current),
	}
}

func TestReconcile_SinDiferencias_NoEmiteAjustes(t *testing.T) {
	uc, movRepo := buildReconciler()

	applied, err := uc.Reconcile(context.Background(), entity.Actor{ID: actorID}, bodegaA, []dto.CountItemRequest{
		count(productoX, "10", "10"),
		count(productoY, "0", "0"),
	})
	require.NoError(t, err)
	assert.Zero(t, applied)
	assert.Empty(t, movRepo.movements, "conteo exacto no debe tocar el libro")
}

func TestReconcile_FaltantePositivoEntraSobranteNegativoSale(t *testing.T) {
	uc, movRepo := buildReconciler()

	applied, err := uc.Reconcile(context.Background(), entity.Actor{ID: actorID}, bodegaA, []dto.CountItemRequest{
		count(productoX, "12", "10"),  // físico > sistema: entra 2
		count(productoY, "3", "7.5"), // físico < sistema: sale 4.5
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	require.Len(t, movRepo.movements, 2)

	entrada := movRepo.movements[0]
	assert.Equal(t, entity.MovementTypeAjuste, entrada.Type)
	assert.Equal(t, bodegaA, entrada.DestinationWarehouseID, "diferencia positiva entra a la bodega")
	assert.Empty(t, entrada.OriginWarehouseID)
	assert.True(t, entrada.Items[0].Quantity.Equal(decimal.NewFromInt(2)), "cantidad |diff|")
	assert.Contains(t, entrada.Reference, "Ajuste por toma de inventario")
	assert.Contains(t, entrada.Reference, "Físico: 12")
	assert.Contains(t, entrada.Reference, "Sistema: 10")

	salida := movRepo.movements[1]
	assert.Equal(t, bodegaA, salida.OriginWarehouseID, "diferencia negativa sale de la bodega")
	assert.Empty(t, salida.DestinationWarehouseID)
	assert.True(t, salida.Items[0].Quantity.Equal(decimal.RequireFromString("4.5")), "cantidad |diff|, nunca negativa")
}

func TestReconcile_CadaAjusteEsUnMovimientoIndependiente(t *testing.T) {
	uc, movRepo := buildReconciler()

	applied, err := uc.Reconcile(context.Background(), entity.Actor{ID: actorID}, bodegaA, []dto.CountItemRequest{
		count(productoX, "1", "0"),
		count(productoY, "0", "1"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, applied)
	require.Len(t, movRepo.movements, 2, "un AJUSTE por producto con diferencia, no uno combinado")
	for _, m := range movRepo.movements {
		assert.Len(t, m.Items, 1)
	}
}

func TestReconcile_FalloIntermedio_ConservaLosAplicados(t *testing.T) {
	uc, movRepo := buildReconciler()

	// El segundo producto no existe: su ajuste falla en la validación del
	// registrador, pero el primero ya quedó comprometido.
	applied, err := uc.Reconcile(context.Background(), entity.Actor{ID: actorID}, bodegaA, []dto.CountItemRequest{
		count(productoX, "5", "3"),
		count("cccccccc-cccc-cccc-cccc-cccccccccccc", "9", "1"),
		count(productoY, "2", "1"),
	})
	require.Error(t, err)
	assert.Equal(t, 1, applied, "reporta cuántos ajustes alcanzaron a comprometer")
	assert.Len(t, movRepo.movements, 1, "los ajustes previos al fallo no se revierten")
}

func TestReconcile_SinBodega_RetornaError(t *testing.T) {
	uc, _ := buildReconciler()

	_, err := uc.Reconcile(context.Background(), entity.Actor{ID: actorID}, "", []dto.CountItemRequest{
		count(productoX, "1", "0"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
