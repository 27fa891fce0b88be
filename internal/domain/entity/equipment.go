package entity

import "time"

// Estados válidos de un equipo.
const (
	StatusAvailable   = "available"
	StatusInUse       = "in_use"
	StatusMaintenance = "maintenance"
)

// DefaultStockLocation es la ubicación por defecto de un equipo disponible.
const DefaultStockLocation = "Bodega"

// ValidStatus reporta si s es uno de los estados cerrados de equipo.
// Se valida en el borde de acceso a datos, no ad hoc en cada llamada.
func ValidStatus(s string) bool {
	switch s {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return true
	}
	return false
}

// Equipment representa un equipo físico rastreable (cámara, lente, trípode...).
// Invariante: status available implica Holder = DefaultStockLocation; el
// caso de uso lo normaliza en cada escritura.
type Equipment struct {
	ID        string
	CompanyID string
	Name      string
	Code      string // código único legible/escaneable (ej. CAM001)
	Category  string
	Status    string // available, in_use, maintenance
	Holder    string // responsable actual o DefaultStockLocation
	UpdatedAt time.Time
}

// Available reporta si el equipo está disponible para retiro.
func (e *Equipment) Available() bool {
	return e.Status == StatusAvailable
}
