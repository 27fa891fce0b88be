// Package checkout contiene la lógica pura del lote de check-in/check-out:
// acumulación de equipos escaneados/buscados, fijación de la acción por el
// primer elemento y la regla de homogeneidad de estado. No toca persistencia.
package checkout

import (
	"strings"

	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
)

// Acciones del lote. La acción queda fijada por el primer equipo agregado
// y no cambia al agregar más; se limpia cuando el lote vuelve a vaciarse.
const (
	ActionNone     = ""
	ActionCheckout = "checkout" // retiro: el primer equipo estaba disponible
	ActionCheckin  = "checkin"  // devolución: el primer equipo estaba en uso
)

// Batch es el lote en construcción para un commit de check-in/check-out.
// Regla de homogeneidad: todos los equipos disponibles o todos no
// disponibles (en uso o mantenimiento cuentan como la misma clase).
type Batch struct {
	items  []*entity.Equipment
	action string
}

// NewBatch crea un lote vacío.
func NewBatch() *Batch {
	return &Batch{}
}

// Add busca code (exacto, case-insensitive) en la colección cargada y lo
// agrega al lote. Rechaza sin cambio de estado si el código no existe, si
// el equipo ya está en el lote o si su clase de estado difiere de la del
// primer elemento. Devuelve el equipo agregado.
func (b *Batch) Add(collection []*entity.Equipment, code string) (*entity.Equipment, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrCodeNotFound
	}

	var found *entity.Equipment
	for _, e := range collection {
		if strings.EqualFold(e.Code, code) {
			found = e
			break
		}
	}
	if found == nil {
		return nil, domain.ErrCodeNotFound
	}
	for _, e := range b.items {
		if e.ID == found.ID {
			return nil, domain.ErrAlreadyInBatch
		}
	}
	if len(b.items) > 0 && found.Available() != (b.action == ActionCheckout) {
		return nil, domain.ErrMixedStatus
	}

	if len(b.items) == 0 {
		if found.Available() {
			b.action = ActionCheckout
		} else {
			b.action = ActionCheckin
		}
	}
	b.items = append(b.items, found)
	return found, nil
}

// Remove quita el equipo con ese ID del lote. Si el lote queda vacío,
// la acción fijada también se limpia. Devuelve true si algo se quitó.
func (b *Batch) Remove(id string) bool {
	for i, e := range b.items {
		if e.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			if len(b.items) == 0 {
				b.action = ActionNone
			}
			return true
		}
	}
	return false
}

// Items devuelve los equipos del lote en orden de inserción; ese es el
// orden en que se procesan durante el commit.
func (b *Batch) Items() []*entity.Equipment {
	out := make([]*entity.Equipment, len(b.items))
	copy(out, b.items)
	return out
}

// Action devuelve la acción fijada (ActionNone si el lote está vacío).
func (b *Batch) Action() string { return b.action }

// Size devuelve la cantidad de equipos en el lote.
func (b *Batch) Size() int { return len(b.items) }

// Empty reporta si el lote no tiene equipos.
func (b *Batch) Empty() bool { return len(b.items) == 0 }

// Clear vacía el lote y limpia la acción.
func (b *Batch) Clear() {
	b.items = nil
	b.action = ActionNone
}

// ActionFor devuelve la acción que implicaría agregar e como primer
// elemento: checkout si está disponible, checkin en caso contrario.
func ActionFor(e *entity.Equipment) string {
	if e.Available() {
		return ActionCheckout
	}
	return ActionCheckin
}
