package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error           { r.users[u.ID] = u; return nil }
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) { return r.users[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(id string) error        { delete(r.users, id); return nil }

const testSecret = "test-secret-key-for-unit-tests"

func buildAuthUC(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta-123"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeUserRepo{users: map[string]*entity.User{
		"u1": {ID: "u1", Name: "Ana", Email: "ana@almacen.co", PasswordHash: string(hash), Role: entity.RoleAdmin},
	}}
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "almacen-api-test",
	})
}

func TestLogin_CredencialesValidas_RetornaTokenConClaims(t *testing.T) {
	uc := buildAuthUC(t)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.co", Password: "secreta-123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, entity.RoleAdmin, resp.User.Role)

	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, entity.RoleAdmin, role, "el token porta el rol para el RBAC")
}

func TestLogin_PasswordIncorrecta_Retorna401(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@almacen.co", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente_RetornaUserNotFound(t *testing.T) {
	uc := buildAuthUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@almacen.co", Password: "secreta-123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGates_AdminYActor(t *testing.T) {
	assert.NoError(t, auth.RequireAdmin(entity.Actor{ID: "u1", Role: entity.RoleAdmin}))
	assert.ErrorIs(t, auth.RequireAdmin(entity.Actor{ID: "u1", Role: entity.RoleStaff}), domain.ErrForbidden)
	assert.ErrorIs(t, auth.RequireAdmin(entity.Actor{}), domain.ErrForbidden)

	assert.NoError(t, auth.RequireActor(entity.Actor{ID: "u1", Role: entity.RoleStaff}))
	assert.ErrorIs(t, auth.RequireActor(entity.Actor{}), domain.ErrUnauthorized)
}
