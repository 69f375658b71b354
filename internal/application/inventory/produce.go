package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProduceUseCase expande una orden de producción en sus dos movimientos
// PRODUCCION: consumo de materias primas (origen = bodega) e ingreso del
// producto terminado (destino = bodega), ambos en una sola transacción.
// BOM de un solo nivel: un ingrediente nunca se expande como sub-producción.
type ProduceUseCase struct {
	txRunner      TxRunner
	recipeRepo    repository.RecipeRepository
	warehouseRepo repository.WarehouseRepository
}

// NewProduceUseCase construye el caso de uso.
func NewProduceUseCase(txRunner TxRunner, recipeRepo repository.RecipeRepository, warehouseRepo repository.WarehouseRepository) *ProduceUseCase {
	return &ProduceUseCase{txRunner: txRunner, recipeRepo: recipeRepo, warehouseRepo: warehouseRepo}
}

// Produce fabrica quantity unidades de productID en warehouseID. Cada cantidad
// de ingrediente escala linealmente con la cantidad pedida. Si el producto no
// tiene receta retorna ErrRecipeNotFound sin escribir nada. No se verifica
// suficiencia de stock: el consumo puede dejar la bodega en negativo.
// Retorna el movimiento de ingreso; el de consumo queda en el libro.
func (uc *ProduceUseCase) Produce(ctx context.Context, actor entity.Actor, productID string, quantity decimal.Decimal, warehouseID string) (*entity.Movement, error) {
	if productID == "" || warehouseID == "" || !quantity.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	recipe, err := uc.recipeRepo.GetByProductID(productID)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, domain.ErrRecipeNotFound
	}

	now := time.Now()

	consumption := &entity.Movement{
		ID:                uuid.New().String(),
		Type:              entity.MovementTypeProduccion,
		OriginWarehouseID: warehouseID,
		UserID:            actor.ID,
		Reference:         fmt.Sprintf("Consumo para producción de %s uds", quantity),
		Date:              now,
		CreatedAt:         now,
	}
	for _, ing := range recipe.Ingredients {
		consumption.Items = append(consumption.Items, entity.MovementItem{
			ID:         uuid.New().String(),
			MovementID: consumption.ID,
			ProductID:  ing.ProductID,
			Quantity:   ing.Quantity.Mul(quantity),
		})
	}

	receipt := &entity.Movement{
		ID:                     uuid.New().String(),
		Type:                   entity.MovementTypeProduccion,
		DestinationWarehouseID: warehouseID,
		UserID:                 actor.ID,
		Reference:              "Ingreso por producción",
		Date:                   now,
		CreatedAt:              now,
	}
	receipt.Items = []entity.MovementItem{{
		ID:         uuid.New().String(),
		MovementID: receipt.ID,
		ProductID:  productID,
		Quantity:   quantity,
	}}

	// Ambos movimientos comprometen juntos o ninguno.
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
		_ repository.RecipeRepository,
	) error {
		if err := movRepo.Create(consumption); err != nil {
			return err
		}
		return movRepo.Create(receipt)
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

