package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, STAFF
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor identifica a quién ejecuta una operación del núcleo. Se pasa explícito
// en cada llamada en lugar de resolverse desde estado global de sesión.
// Un Actor con ID vacío representa al sistema.
type Actor struct {
	ID   string
	Role string
}

// IsAdmin indica si el actor tiene rol de administrador.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
