package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios: listar, crear y eliminar (todo solo ADMIN).
// No hay salvaguarda contra eliminar el último administrador.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List lista todos los usuarios (solo ADMIN).
func (uc *UserUseCase) List(actor entity.Actor) ([]dto.UserResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}

// Create crea un usuario con contraseña bcrypt (solo ADMIN). Retorna
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UserUseCase) Create(actor entity.Actor, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleStaff {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// Delete elimina un usuario por ID (solo ADMIN).
func (uc *UserUseCase) Delete(actor entity.Actor, id string) error {
	if err := auth.RequireAdmin(actor); err != nil {
		return err
	}
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}
