package repository

import "github.com/jhoicas/Equipos-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para la bitácora
// de movimientos. Append-only: no existe Update ni Delete.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	// ListRecent devuelve los últimos movimientos del tenant, más
	// recientes primero, con nombre y código del equipo.
	ListRecent(companyID string, limit int) ([]*entity.Movement, error)
	// ListAllByCompany devuelve la bitácora completa del tenant para los
	// agregados de reportes (ranking de uso, duración promedio).
	ListAllByCompany(companyID string) ([]*entity.Movement, error)
}
