package entity

import "time"

// Roles válidos para User.
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// User representa una cuenta del sistema. CompanyID vacío solo es válido
// para la cuenta maestra (IsMaster), que no pertenece a ningún tenant.
type User struct {
	ID           string
	CompanyID    string // vacío para la cuenta maestra
	Email        string
	PasswordHash string // bcrypt, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	Role         string // staff, admin
	IsMaster     bool
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin es la única fuente de verdad de la resolución de roles:
// admin de empresa o cuenta maestra. No usar heurísticas sobre el email.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsMaster
}

// IsMasterAdmin indica si la cuenta puede administrar empresas (tenants).
func (u *User) IsMasterAdmin() bool {
	return u.IsMaster
}
