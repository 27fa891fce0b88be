package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Equipos-api/internal/domain"
	"github.com/jhoicas/Equipos-api/internal/domain/entity"
	"github.com/jhoicas/Equipos-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación del puerto EquipmentRepository sobre
// PostgreSQL (usable con pool o tx).
type EquipmentRepo struct {
	q Querier
}

// NewEquipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEquipmentRepository(q Querier) *EquipmentRepo {
	return &EquipmentRepo{q: q}
}

const equipmentColumns = `id, company_id, name, code, category, status, holder, updated_at`

// Create persiste un equipo nuevo. Devuelve ErrCodeAlreadyExists si el
// código ya existe en el tenant (índice único case-insensitive).
func (r *EquipmentRepo) Create(equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipments (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.CompanyID, equipment.Name, equipment.Code, equipment.Category,
		equipment.Status, equipment.Holder, equipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipmentRepo) GetByID(id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipments WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode busca por código exacto, case-insensitive, dentro del tenant.
func (r *EquipmentRepo) GetByCode(companyID, code string) (*entity.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipments WHERE company_id = $1 AND LOWER(code) = LOWER($2)`
	var e entity.Equipment
	err := r.q.QueryRow(context.Background(), query, companyID, code).Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Code, &e.Category, &e.Status, &e.Holder, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment by code: %w", err)
	}
	return &e, nil
}

func (r *EquipmentRepo) scanOne(query string, arg any) (*entity.Equipment, error) {
	var e entity.Equipment
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&e.ID, &e.CompanyID, &e.Name, &e.Code, &e.Category, &e.Status, &e.Holder, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return &e, nil
}

// Update actualiza un equipo (estado, ubicación, datos de registro).
func (r *EquipmentRepo) Update(equipment *entity.Equipment) error {
	query := `
		UPDATE equipments SET name = $2, code = $3, category = $4, status = $5, holder = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		equipment.ID, equipment.Name, equipment.Code, equipment.Category,
		equipment.Status, equipment.Holder, equipment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCodeAlreadyExists
		}
		return fmt.Errorf("update equipment: %w", err)
	}
	return nil
}

// ListByCompany lista equipos del tenant ordenados por nombre, con paginación.
func (r *EquipmentRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipments WHERE company_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	return r.scanList(query, companyID, limit, offset)
}

// ListAllByCompany devuelve la colección completa del tenant ordenada
// por nombre (para el lote de check-in/out y los reportes en memoria).
func (r *EquipmentRepo) ListAllByCompany(companyID string) ([]*entity.Equipment, error) {
	query := `
		SELECT ` + equipmentColumns + `
		FROM equipments WHERE company_id = $1 ORDER BY name`
	return r.scanList(query, companyID)
}

func (r *EquipmentRepo) scanList(query string, args ...any) ([]*entity.Equipment, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipment
	for rows.Next() {
		var e entity.Equipment
		if err := rows.Scan(&e.ID, &e.CompanyID, &e.Name, &e.Code, &e.Category, &e.Status, &e.Holder, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
