package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/visitas-api/internal/application/dto"
	"github.com/jhoicas/visitas-api/internal/domain"
	"github.com/jhoicas/visitas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/visitas-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) Update(*entity.User) error   { return nil }
func (r *fakeUserRepo) List() ([]*entity.User, error) { return nil, nil }
func (r *fakeUserRepo) Delete(string) error         { return nil }

const authTestSecret = "test-secret-key-for-unit-tests"

func buildAuthUseCase() (*AuthUseCase, *fakeUserRepo) {
	repo := newFakeUserRepo()
	uc := NewAuthUseCase(repo, JWTConfig{
		Secret:     authTestSecret,
		ExpMinutes: 60,
		Issuer:     "visitas-api-test",
	})
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// El registro es público: el rol siempre queda en "user", tanto en el usuario
// persistido como en el token emitido. Promover a admin solo es posible vía
// la actualización de usuarios, que exige rol admin.
func TestRegister_SiempreAsignaRolUser(t *testing.T) {
	uc, repo := buildAuthUseCase()

	out, err := uc.Register(dto.CreateUserRequest{
		Nombre:   "Carla Nueva",
		Email:    "carla@correo.co",
		Password: "clave-segura-123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, out.Rol)

	stored, err := repo.GetByEmail("carla@correo.co")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleUser, stored.Rol,
		"el usuario persistido nunca debe nacer con rol admin")

	_, rol, err := pkgjwt.Parse(authTestSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, rol,
		"el token del registro no debe portar rol admin")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuthUseCase()

	_, err := uc.Register(dto.CreateUserRequest{
		Nombre: "Primero", Email: "dup@correo.co", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	_, err = uc.Register(dto.CreateUserRequest{
		Nombre: "Segundo", Email: "dup@correo.co", Password: "otra-clave-456",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_HasheaElPassword(t *testing.T) {
	uc, repo := buildAuthUseCase()

	_, err := uc.Register(dto.CreateUserRequest{
		Nombre: "Carla", Email: "hash@correo.co", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	stored, _ := repo.GetByEmail("hash@correo.co")
	require.NotNil(t, stored)
	assert.NotEqual(t, "clave-segura-123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := buildAuthUseCase()

	_, err := uc.Register(dto.CreateUserRequest{
		Nombre: "Carla", Email: "login@correo.co", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "login@correo.co", Password: "clave-segura-123"})
	require.NoError(t, err)
	assert.Equal(t, "Login exitoso", out.Message)
	assert.Equal(t, entity.RoleUser, out.Rol)
	assert.NotEmpty(t, out.Token)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUseCase()

	_, err := uc.Register(dto.CreateUserRequest{
		Nombre: "Carla", Email: "mal@correo.co", Password: "clave-segura-123",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "mal@correo.co", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuthUseCase()

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@correo.co", Password: "clave"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
