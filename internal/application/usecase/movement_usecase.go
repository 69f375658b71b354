package usecase

import (
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// MovementUseCase consultas de solo lectura sobre el libro de movimientos.
type MovementUseCase struct {
	movementRepo repository.MovementRepository
	userRepo     repository.UserRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movementRepo repository.MovementRepository, userRepo repository.UserRepository) *MovementUseCase {
	return &MovementUseCase{movementRepo: movementRepo, userRepo: userRepo}
}

// List lista los movimientos, más reciente primero, resolviendo el nombre del
// usuario creador ("Sistema" para movimientos sin usuario).
func (uc *MovementUseCase) List() ([]dto.MovementResponse, error) {
	movements, err := uc.movementRepo.List()
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		userName, err := uc.resolveUserName(m.UserID, names)
		if err != nil {
			return nil, err
		}
		out = append(out, toMovementResponse(m, userName))
	}
	return out, nil
}

// ToResponse convierte un movimiento recién persistido a DTO de salida,
// resolviendo el nombre del usuario creador.
func (uc *MovementUseCase) ToResponse(m *entity.Movement) (dto.MovementResponse, error) {
	userName, err := uc.resolveUserName(m.UserID, map[string]string{})
	if err != nil {
		return dto.MovementResponse{}, err
	}
	return toMovementResponse(m, userName), nil
}

func (uc *MovementUseCase) resolveUserName(userID string, cache map[string]string) (string, error) {
	if userID == "" {
		return "Sistema", nil
	}
	name, ok := cache[userID]
	if !ok {
		user, err := uc.userRepo.GetByID(userID)
		if err != nil {
			return "", err
		}
		if user != nil {
			name = user.Name
		}
		cache[userID] = name
	}
	if name == "" {
		return "Sistema", nil
	}
	return name, nil
}

func toMovementResponse(m *entity.Movement, userName string) dto.MovementResponse {
	items := make([]dto.MovementItemResponse, 0, len(m.Items))
	for _, it := range m.Items {
		items = append(items, dto.MovementItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}
	return dto.MovementResponse{
		ID:                     m.ID,
		Type:                   m.Type,
		OriginWarehouseID:      m.OriginWarehouseID,
		DestinationWarehouseID: m.DestinationWarehouseID,
		UserID:                 m.UserID,
		UserName:               userName,
		Reference:              m.Reference,
		Date:                   m.Date,
		Items:                  items,
	}
}
