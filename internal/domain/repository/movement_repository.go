package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para el libro de
// movimientos. El libro es append-only: no hay Update ni Delete.
type MovementRepository interface {
	// Create persiste el movimiento con sus líneas. La atomicidad
	// movimiento+líneas la da la transacción en la que corre el repo.
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve todos los movimientos con sus líneas, más reciente primero.
	List() ([]*entity.Movement, error)
	// ListAll devuelve el libro completo sin orden garantizado, para el
	// cálculo de stock (la suma es conmutativa).
	ListAll() ([]*entity.Movement, error)
}
