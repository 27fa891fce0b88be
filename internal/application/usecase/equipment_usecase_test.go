package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Equipos-api/internal/application/cache"
	"github.com/jhoicas/Equipos-api/internal/application/dto"
	"github.com/jhoicas/Equipos-api/internal/application/usecase"
	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeEquipmentRepo struct {
	byID map[string]*entity.Equipment
}

func newFakeEquipmentRepo(equipos ...*entity.Equipment) *fakeEquipmentRepo {
	r := &fakeEquipmentRepo{byID: make(map[string]*entity.Equipment)}
	for _, e := range equipos {
		cp := *e
		r.byID[e.ID] = &cp
	}
	return r
}

func (r *fakeEquipmentRepo) Create(e *entity.Equipment) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEquipmentRepo) GetByCode(companyID, code string) (*entity.Equipment, error) {
	for _, e := range r.byID {
		if e.CompanyID == companyID && e.Code == code {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEquipmentRepo) Update(e *entity.Equipment) error {
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *fakeEquipmentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Equipment, error) {
	return r.ListAllByCompany(companyID)
}

func (r *fakeEquipmentRepo) ListAllByCompany(companyID string) ([]*entity.Equipment, error) {
	var out []*entity.Equipment
	for _, e := range r.byID {
		if e.CompanyID == companyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeCompanyRepo struct {
	company *entity.Company
}

func (r *fakeCompanyRepo) Create(*entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	if r.company != nil && r.company.ID == id {
		return r.company, nil
	}
	return nil, nil
}
func (r *fakeCompanyRepo) GetByTaxID(string) (*entity.Company, error) { return nil, nil }
func (r *fakeCompanyRepo) Update(*entity.Company) error               { return nil }
func (r *fakeCompanyRepo) List(int, int) ([]*entity.Company, error)   { return nil, nil }
func (r *fakeCompanyRepo) Delete(string) error                        { return nil }

type fakeLabels struct{}

func (fakeLabels) GenerateLabel(context.Context, *entity.Equipment, *entity.Company) ([]byte, error) {
	return []byte("pdf"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func equipoDe(companyID, id, status, holder string) *entity.Equipment {
	return &entity.Equipment{
		ID: id, CompanyID: companyID, Name: "Cámara FX6", Code: id,
		Category: "Cámara", Status: status, Holder: holder,
		UpdatedAt: time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	}
}

func armarEquipos(equipos ...*entity.Equipment) (*usecase.EquipmentUseCase, *fakeEquipmentRepo) {
	repo := newFakeEquipmentRepo(equipos...)
	companyRepo := &fakeCompanyRepo{company: &entity.Company{ID: "co-A", Name: "Demo"}}
	uc := usecase.NewEquipmentUseCase(repo, companyRepo, fakeLabels{}, cache.New())
	return uc, repo
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante estado/ubicación en el registro
// ──────────────────────────────────────────────────────────────────────────────

// Marcar un equipo como disponible devuelve su ubicación a la bodega,
// aunque el cliente mande (o conserve) un holder viejo.
func TestEquipment_UpdateDisponibleFuerzaBodega(t *testing.T) {
	uc, repo := armarEquipos(equipoDe("co-A", "CAM001", entity.StatusInUse, "Alice"))

	out, err := uc.Update("co-A", "CAM001", dto.UpdateEquipmentRequest{
		Status: entity.StatusAvailable,
		Holder: "Alice", // holder viejo enviado por un cliente desactualizado
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAvailable, out.Status)
	assert.Equal(t, entity.DefaultStockLocation, out.Holder,
		"disponible implica ubicación de bodega")

	got, _ := repo.GetByID("CAM001")
	assert.Equal(t, entity.DefaultStockLocation, got.Holder)
}

// Sin cambiar el estado, un equipo ya disponible tampoco puede quedar
// con un holder distinto a la bodega.
func TestEquipment_UpdateSoloHolderSobreDisponible(t *testing.T) {
	uc, repo := armarEquipos(equipoDe("co-A", "CAM001", entity.StatusAvailable, entity.DefaultStockLocation))

	out, err := uc.Update("co-A", "CAM001", dto.UpdateEquipmentRequest{Holder: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStockLocation, out.Holder)

	got, _ := repo.GetByID("CAM001")
	assert.Equal(t, entity.DefaultStockLocation, got.Holder)
}

func TestEquipment_UpdateEstadoInvalidoRechazado(t *testing.T) {
	uc, repo := armarEquipos(equipoDe("co-A", "CAM001", entity.StatusAvailable, entity.DefaultStockLocation))

	_, err := uc.Update("co-A", "CAM001", dto.UpdateEquipmentRequest{Status: "prestado"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, _ := repo.GetByID("CAM001")
	assert.Equal(t, entity.StatusAvailable, got.Status, "un rechazo no debe escribir")
}

// El estado en mantenimiento sí admite un holder arbitrario (por ejemplo
// el taller externo).
func TestEquipment_UpdateMantenimientoConservaHolder(t *testing.T) {
	uc, _ := armarEquipos(equipoDe("co-A", "CAM001", entity.StatusAvailable, entity.DefaultStockLocation))

	out, err := uc.Update("co-A", "CAM001", dto.UpdateEquipmentRequest{
		Status: entity.StatusMaintenance,
		Holder: "Taller Lentes SAS",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusMaintenance, out.Status)
	assert.Equal(t, "Taller Lentes SAS", out.Holder)
}

// Un equipo de otro tenant no es alcanzable por ID.
func TestEquipment_UpdateOtroTenantRechazado(t *testing.T) {
	uc, repo := armarEquipos(equipoDe("co-B", "CAM001", entity.StatusAvailable, entity.DefaultStockLocation))

	_, err := uc.Update("co-A", "CAM001", dto.UpdateEquipmentRequest{Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, _ := repo.GetByID("CAM001")
	assert.Equal(t, "Cámara FX6", got.Name)
}
