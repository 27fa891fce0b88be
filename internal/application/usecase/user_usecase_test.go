package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Equipos-api/internal/application/cache"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/application/usecase"
	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byID map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{byID: make(map[string]*entity.User)}
	for _, u := range users {
		cp := *u
		r.byID[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) Create(user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(user *entity.User) error {
	cp := *user
	r.byID[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byID {
		if u.CompanyID == companyID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func cuentaUsuario(id, companyID, email, role string) *entity.User {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	return &entity.User{
		ID: id, CompanyID: companyID, Email: email, Name: email,
		PasswordHash: "hash-original", Phone: "300111", Role: role,
		Status: "active", CreatedAt: now, UpdatedAt: now,
	}
}

func cuentaMaestra(id string) *entity.User {
	u := cuentaUsuario(id, "", "master@equipos.local", entity.RoleAdmin)
	u.IsMaster = true
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Aislamiento entre tenants
// ──────────────────────────────────────────────────────────────────────────────

// Un admin de una empresa no puede leer, rotar credenciales ni borrar
// cuentas de otra empresa. La cuenta maestra (sin tenant) tampoco es
// alcanzable desde un tenant.
func TestUser_OtroTenantNoAlcanzaLaCuenta(t *testing.T) {
	master := cuentaMaestra("u-master")
	ajeno := cuentaUsuario("u-b1", "co-B", "staff@b.local", entity.RoleStaff)
	repo := newFakeUserRepo(master, ajeno)
	uc := usecase.NewUserUseCase(repo, cache.New())

	// co-A intenta operar sobre la cuenta maestra y sobre un usuario de co-B
	for _, targetID := range []string{"u-master", "u-b1"} {
		out, err := uc.GetByID("co-A", targetID)
		require.NoError(t, err)
		assert.Nil(t, out, "la cuenta de otro tenant no debe ser visible")

		_, err = uc.Update("co-A", targetID, dto.UpdateUserRequest{Password: "otraClave123"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound,
			"rotar credenciales de otro tenant debe rechazarse")

		err = uc.Delete("co-A", targetID)
		assert.ErrorIs(t, err, domain.ErrUserNotFound,
			"borrar cuentas de otro tenant debe rechazarse")
	}

	// Nada cambió en el repositorio
	got, _ := repo.GetByID("u-master")
	require.NotNil(t, got, "la cuenta maestra debe seguir existiendo")
	assert.Equal(t, "hash-original", got.PasswordHash,
		"la credencial de la cuenta maestra no debe rotarse")
	got, _ = repo.GetByID("u-b1")
	require.NotNil(t, got, "el usuario del otro tenant debe seguir existiendo")
	assert.Equal(t, "hash-original", got.PasswordHash)
}

// La cuenta maestra solo es alcanzable desde otra sesión maestra
// (company_id vacío ambos lados).
func TestUser_MaestraAlcanzaCuentaMaestra(t *testing.T) {
	master := cuentaMaestra("u-master")
	uc := usecase.NewUserUseCase(newFakeUserRepo(master), cache.New())

	out, err := uc.GetByID("", "u-master")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.IsMaster)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update dentro del tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestUser_UpdateDentroDelTenant(t *testing.T) {
	u := cuentaUsuario("u-a1", "co-A", "staff@a.local", entity.RoleStaff)
	repo := newFakeUserRepo(u)
	uc := usecase.NewUserUseCase(repo, cache.New())

	out, err := uc.Update("co-A", "u-a1", dto.UpdateUserRequest{
		Name:     "Alice",
		Role:     entity.RoleAdmin,
		Password: "nuevaClave123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, entity.RoleAdmin, out.Role)

	got, _ := repo.GetByID("u-a1")
	assert.NotEqual(t, "hash-original", got.PasswordHash, "el hash debe rotarse")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(got.PasswordHash), []byte("nuevaClave123")))
}

// Los campos vacíos de un PUT parcial conservan el valor almacenado:
// un update sin phone no debe borrar el teléfono.
func TestUser_UpdateParcialConservaCamposVacios(t *testing.T) {
	u := cuentaUsuario("u-a1", "co-A", "staff@a.local", entity.RoleStaff)
	repo := newFakeUserRepo(u)
	uc := usecase.NewUserUseCase(repo, cache.New())

	out, err := uc.Update("co-A", "u-a1", dto.UpdateUserRequest{Name: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", out.Name)
	assert.Equal(t, "300111", out.Phone, "phone vacío no debe borrar el almacenado")

	got, _ := repo.GetByID("u-a1")
	assert.Equal(t, "300111", got.Phone)
	assert.Equal(t, "hash-original", got.PasswordHash, "sin password no hay rotación")
	assert.Equal(t, entity.RoleStaff, got.Role)
}

func TestUser_UpdateRolInvalidoRechazado(t *testing.T) {
	u := cuentaUsuario("u-a1", "co-A", "staff@a.local", entity.RoleStaff)
	uc := usecase.NewUserUseCase(newFakeUserRepo(u), cache.New())

	_, err := uc.Update("co-A", "u-a1", dto.UpdateUserRequest{Role: "supervisor"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
