package repository

import "github.com/jhoicas/Equipos-api/internal/domain/entity"

// EquipmentRepository define el puerto de persistencia para Equipment.
// Los equipos nunca se borran desde los flujos del sistema: solo se
// crean y actualizan, por eso no hay Delete.
type EquipmentRepository interface {
	Create(equipment *entity.Equipment) error
	GetByID(id string) (*entity.Equipment, error)
	// GetByCode busca por código exacto, case-insensitive, dentro del tenant.
	GetByCode(companyID, code string) (*entity.Equipment, error)
	Update(equipment *entity.Equipment) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Equipment, error)
	// ListAllByCompany devuelve la colección completa ordenada por nombre,
	// para los agregados de reportes que se calculan en memoria.
	ListAllByCompany(companyID string) ([]*entity.Equipment, error)
}
