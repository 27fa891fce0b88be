package dto

import "time"

// CreateEquipmentRequest datos para registrar un equipo (solo admin).
type CreateEquipmentRequest struct {
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
}

// UpdateEquipmentRequest datos para editar un equipo (solo admin).
// Status y Holder se normalizan en el caso de uso: available fuerza
// Holder a la ubicación de bodega por defecto.
type UpdateEquipmentRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Holder   string `json:"holder"`
}

// EquipmentResponse representación pública de un equipo.
type EquipmentResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Category  string    `json:"category"`
	Status    string    `json:"status"`
	Holder    string    `json:"holder"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EquipmentListResponse listado paginado de equipos.
type EquipmentListResponse struct {
	Items []EquipmentResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
