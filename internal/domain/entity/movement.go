package entity

import "time"

// Tipos de movimiento.
const (
	MovementWithdrawal = "withdrawal" // retiro
	MovementReturn     = "return"     // devolución
)

// ValidMovementKind reporta si k es un tipo de movimiento cerrado.
func ValidMovementKind(k string) bool {
	return k == MovementWithdrawal || k == MovementReturn
}

// Movement es una entrada inmutable de la bitácora de movimientos:
// un retiro o una devolución de un equipo. Solo se crea, nunca se
// actualiza ni se borra.
type Movement struct {
	ID          string
	CompanyID   string
	EquipmentID string
	Kind        string // withdrawal, return
	Responsible string // nombre de la persona responsable
	Notes       string
	CreatedAt   time.Time

	// Denormalizados para listados y reportes (JOIN con equipments).
	EquipmentName string
	EquipmentCode string
}
