package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Equipos-api/internal/application/cache"
)

func TestStore_GetDistingueNoCargadoDeVacio(t *testing.T) {
	s := cache.New()

	_, ok := s.Get(cache.Key(cache.Equipments, "c1"))
	assert.False(t, ok, "clave nunca cargada")

	s.Set(cache.Key(cache.Equipments, "c1"), []string{})
	v, ok := s.Get(cache.Key(cache.Equipments, "c1"))
	assert.True(t, ok, "colección vacía sigue siendo un estado cargado")
	assert.Empty(t, v)
}

func TestStore_InvalidateBorraTodosLosTenantsDelTipo(t *testing.T) {
	s := cache.New()
	s.Set(cache.Key(cache.Equipments, "c1"), 1)
	s.Set(cache.Key(cache.Equipments, "c2"), 2)
	s.Set(cache.Key(cache.Movements, "c1"), 3)

	s.Invalidate(cache.Equipments)

	_, ok := s.Get(cache.Key(cache.Equipments, "c1"))
	assert.False(t, ok)
	_, ok = s.Get(cache.Key(cache.Equipments, "c2"))
	assert.False(t, ok)
	// Otros tipos no se tocan.
	v, ok := s.Get(cache.Key(cache.Movements, "c1"))
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestStore_InvalidateVarios(t *testing.T) {
	s := cache.New()
	s.Set(cache.Key(cache.Equipments, "c1"), 1)
	s.Set(cache.Key(cache.Movements, "c1"), 2)

	// Una escritura de movimiento invalida movimientos Y equipos.
	s.Invalidate(cache.Movements, cache.Equipments)

	_, ok := s.Get(cache.Key(cache.Equipments, "c1"))
	assert.False(t, ok)
	_, ok = s.Get(cache.Key(cache.Movements, "c1"))
	assert.False(t, ok)
}
