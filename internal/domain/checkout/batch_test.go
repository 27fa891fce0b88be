package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/checkout"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

func equipo(id, code, status string) *entity.Equipment {
	return &entity.Equipment{ID: id, Code: code, Name: "Equipo " + code, Status: status}
}

func coleccion() []*entity.Equipment {
	return []*entity.Equipment{
		equipo("e1", "CAM001", entity.StatusAvailable),
		equipo("e2", "CAM002", entity.StatusInUse),
		equipo("e3", "TRI001", entity.StatusAvailable),
		equipo("e4", "MIC005", entity.StatusMaintenance),
	}
}

// El primer equipo disponible fija la acción en checkout.
func TestBatch_PrimerDisponibleFijaCheckout(t *testing.T) {
	b := checkout.NewBatch()
	e, err := b.Add(coleccion(), "CAM001")
	require.NoError(t, err)
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, checkout.ActionCheckout, b.Action())
}

// El primer equipo no disponible (en uso o mantenimiento) fija checkin.
func TestBatch_PrimerNoDisponibleFijaCheckin(t *testing.T) {
	for _, code := range []string{"CAM002", "MIC005"} {
		b := checkout.NewBatch()
		_, err := b.Add(coleccion(), code)
		require.NoError(t, err, "code %s", code)
		assert.Equal(t, checkout.ActionCheckin, b.Action(), "code %s", code)
	}
}

// La búsqueda por código es case-insensitive.
func TestBatch_CodigoCaseInsensitive(t *testing.T) {
	b := checkout.NewBatch()
	e, err := b.Add(coleccion(), "cam001")
	require.NoError(t, err)
	assert.Equal(t, "CAM001", e.Code)
}

// Código inexistente: rechazo sin cambio de estado.
func TestBatch_CodigoNoEncontrado(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "NOEXISTE")
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
	assert.True(t, b.Empty())
	assert.Equal(t, checkout.ActionNone, b.Action())
}

// Agregar un equipo ya presente (por identidad) se rechaza y el lote
// queda idéntico.
func TestBatch_DuplicadoRechazado(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "CAM001")
	require.NoError(t, err)

	_, err = b.Add(coleccion(), "cam001")
	assert.ErrorIs(t, err, domain.ErrAlreadyInBatch)
	assert.Equal(t, 1, b.Size())
	assert.Equal(t, checkout.ActionCheckout, b.Action())
}

// Un segundo equipo de clase de estado distinta se rechaza y el lote
// no cambia ni en tamaño ni en membresía.
func TestBatch_EstadoMixtoRechazado(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "CAM001") // disponible
	require.NoError(t, err)

	_, err = b.Add(coleccion(), "CAM002") // en uso
	assert.ErrorIs(t, err, domain.ErrMixedStatus)
	require.Equal(t, 1, b.Size())
	assert.Equal(t, "e1", b.Items()[0].ID)
}

// En uso y mantenimiento son la misma clase: ambos caben en un lote checkin.
func TestBatch_EnUsoYMantenimientoSonHomogeneos(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "CAM002")
	require.NoError(t, err)
	_, err = b.Add(coleccion(), "MIC005")
	require.NoError(t, err)
	assert.Equal(t, 2, b.Size())
	assert.Equal(t, checkout.ActionCheckin, b.Action())
}

// La acción no cambia al agregar más equipos.
func TestBatch_AccionNoCambiaConMasEquipos(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "CAM001")
	require.NoError(t, err)
	_, err = b.Add(coleccion(), "TRI001")
	require.NoError(t, err)
	assert.Equal(t, checkout.ActionCheckout, b.Action())
	assert.Equal(t, 2, b.Size())
}

// Remove quita el equipo; si el lote queda vacío la acción se limpia.
func TestBatch_RemoveLimpiaAccionAlVaciar(t *testing.T) {
	b := checkout.NewBatch()
	_, err := b.Add(coleccion(), "CAM001")
	require.NoError(t, err)

	assert.True(t, b.Remove("e1"))
	assert.True(t, b.Empty())
	assert.Equal(t, checkout.ActionNone, b.Action())

	// Remover algo inexistente no hace nada.
	assert.False(t, b.Remove("e1"))
}

// Remove conserva el orden de inserción del resto.
func TestBatch_RemoveConservaOrden(t *testing.T) {
	b := checkout.NewBatch()
	for _, code := range []string{"CAM001", "TRI001"} {
		_, err := b.Add(coleccion(), code)
		require.NoError(t, err)
	}
	col := coleccion()
	col = append(col, equipo("e5", "LEN001", entity.StatusAvailable))
	_, err := b.Add(col, "LEN001")
	require.NoError(t, err)

	require.True(t, b.Remove("e3"))
	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "e1", items[0].ID)
	assert.Equal(t, "e5", items[1].ID)
	assert.Equal(t, checkout.ActionCheckout, b.Action())
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, checkout.ActionCheckout, checkout.ActionFor(equipo("x", "X", entity.StatusAvailable)))
	assert.Equal(t, checkout.ActionCheckin, checkout.ActionFor(equipo("x", "X", entity.StatusInUse)))
	assert.Equal(t, checkout.ActionCheckin, checkout.ActionFor(equipo("x", "X", entity.StatusMaintenance)))
}
