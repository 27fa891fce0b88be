package dto

import "time"

// MovementResponse una entrada de la bitácora de movimientos.
type MovementResponse struct {
	ID            string    `json:"id"`
	EquipmentID   string    `json:"equipment_id"`
	EquipmentName string    `json:"equipment_name,omitempty"`
	EquipmentCode string    `json:"equipment_code,omitempty"`
	Kind          string    `json:"kind"` // withdrawal, return
	Responsible   string    `json:"responsible"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovementListResponse movimientos recientes, más nuevos primero.
type MovementListResponse struct {
	Items []MovementResponse `json:"items"`
}
