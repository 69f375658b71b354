package auth

import (
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RequireAdmin es la compuerta de acceso para operaciones administrativas
// (bodegas, productos, recetas y usuarios). Debe invocarse antes de cualquier
// efecto: si el actor no es ADMIN retorna ErrForbidden y no se escribe nada.
func RequireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// RequireActor exige un actor autenticado (cualquier rol). Registrar
// movimientos, producir y conciliar inventario no requieren ADMIN.
func RequireActor(actor entity.Actor) error {
	if actor.ID == "" {
		return domain.ErrUnauthorized
	}
	return nil
}
