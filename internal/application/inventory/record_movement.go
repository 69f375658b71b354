package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// RecordMovementUseCase registra un movimiento con sus líneas como una sola
// unidad transaccional. Valida tipo, cantidades y presencia de origen/destino
// antes de abrir la transacción; nunca son observables escrituras parciales.
type RecordMovementUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
	productRepo   repository.ProductRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:      txRunner,
		warehouseRepo: warehouseRepo,
		productRepo:   productRepo,
	}
}

// Record valida y persiste el movimiento. El actor (si tiene ID) queda como
// creador para auditoría. Retorna el movimiento persistido con ID y fecha
// asignados por el servidor.
func (uc *RecordMovementUseCase) Record(ctx context.Context, actor entity.Actor, in dto.RecordMovementRequest) (*entity.Movement, error) {
	if err := uc.validate(in); err != nil {
		return nil, err
	}

	now := time.Now()
	movement := &entity.Movement{
		ID:                     uuid.New().String(),
		Type:                   in.Type,
		OriginWarehouseID:      in.OriginWarehouseID,
		DestinationWarehouseID: in.DestinationWarehouseID,
		UserID:                 actor.ID,
		Reference:              in.Reference,
		Date:                   now,
		CreatedAt:              now,
	}
	for _, item := range in.Items {
		movement.Items = append(movement.Items, entity.MovementItem{
			ID:         uuid.New().String(),
			MovementID: movement.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
		})
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		_ repository.ProductRepository,
		_ repository.RecipeRepository,
	) error {
		return movRepo.Create(movement)
	})
	if err != nil {
		return nil, err
	}
	return movement, nil
}

// validate aplica las reglas previas al commit: líneas no vacías con cantidad
// positiva, matriz de presencia origen/destino según tipo, y existencia de las
// bodegas y productos referenciados.
func (uc *RecordMovementUseCase) validate(in dto.RecordMovementRequest) error {
	if len(in.Items) == 0 {
		return domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || !item.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
	}

	hasOrigin := in.OriginWarehouseID != ""
	hasDestination := in.DestinationWarehouseID != ""
	switch in.Type {
	case entity.MovementTypeEntrada:
		if hasOrigin || !hasDestination {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeSalida:
		if !hasOrigin || hasDestination {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeTraspaso:
		if !hasOrigin || !hasDestination || in.OriginWarehouseID == in.DestinationWarehouseID {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeAjuste:
		if hasOrigin == hasDestination {
			return domain.ErrInvalidInput
		}
	case entity.MovementTypeProduccion:
		if !hasOrigin && !hasDestination {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}

	if hasOrigin {
		wh, err := uc.warehouseRepo.GetByID(in.OriginWarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
	}
	if hasDestination {
		wh, err := uc.warehouseRepo.GetByID(in.DestinationWarehouseID)
		if err != nil {
			return err
		}
		if wh == nil {
			return domain.ErrNotFound
		}
	}
	for _, item := range in.Items {
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}
