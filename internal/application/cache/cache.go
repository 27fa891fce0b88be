// Package cache implementa el almacén explícito de colecciones por tipo
// de entidad: operaciones declaradas de lectura e invalidación, sin
// registro implícito de consultas. La consistencia elegida es invalidar
// (no fusionar): toda escritura exitosa borra la colección cacheada y
// fuerza una relectura completa en el próximo acceso.
package cache

import (
	"strings"
	"sync"
)

// Tipos de entidad cacheables (claves de colección).
const (
	Equipments = "equipments"
	Movements  = "movements"
	Users      = "users"
	Companies  = "companies"
)

// Store guarda colecciones por clave (tipo de entidad + tenant).
// Seguro para uso concurrente.
type Store struct {
	mu   sync.RWMutex
	data map[string]any
}

// New crea un Store vacío.
func New() *Store {
	return &Store{data: make(map[string]any)}
}

// Key compone la clave de colección para un tipo de entidad y tenant.
func Key(entityType, companyID string) string {
	return entityType + ":" + companyID
}

// Get devuelve la colección cacheada y si existe. El caller distingue
// "no cargado" (ok=false) de "colección vacía" (ok=true, valor vacío).
func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

// Set guarda la colección bajo la clave.
func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

// Invalidate borra todas las colecciones de los tipos de entidad
// indicados, en todos los tenants.
func (s *Store) Invalidate(entityTypes ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, et := range entityTypes {
		prefix := et + ":"
		for k := range s.data {
			if strings.HasPrefix(k, prefix) {
				delete(s.data, k)
			}
		}
	}
}
