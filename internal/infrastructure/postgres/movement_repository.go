package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La bitácora es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, company_id, equipment_id, kind, responsible, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.CompanyID, movement.EquipmentID, movement.Kind,
		movement.Responsible, movement.Notes, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

const movementSelect = `
	SELECT m.id, m.company_id, m.equipment_id, m.kind, m.responsible, m.notes, m.created_at,
	       e.name, e.code
	FROM movements m
	JOIN equipments e ON e.id = m.equipment_id`

// ListRecent devuelve los últimos movimientos del tenant, más recientes
// primero, con nombre y código del equipo.
func (r *MovementRepo) ListRecent(companyID string, limit int) ([]*entity.Movement, error) {
	query := movementSelect + `
	WHERE m.company_id = $1 ORDER BY m.created_at DESC LIMIT $2`
	return r.scanList(query, companyID, limit)
}

// ListAllByCompany devuelve la bitácora completa del tenant en orden
// cronológico ascendente (lo que esperan los agregados de reportes).
func (r *MovementRepo) ListAllByCompany(companyID string) ([]*entity.Movement, error) {
	query := movementSelect + `
	WHERE m.company_id = $1 ORDER BY m.created_at`
	return r.scanList(query, companyID)
}

func (r *MovementRepo) scanList(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.EquipmentID, &m.Kind, &m.Responsible, &m.Notes, &m.CreatedAt, &m.EquipmentName, &m.EquipmentCode); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
