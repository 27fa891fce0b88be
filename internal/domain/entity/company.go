package entity

import "time"

// Company representa una productora/tenant del sistema. Todo equipo y
// movimiento pertenece a exactamente una Company; los usuarios pueden
// pertenecer a una (o a ninguna, en el caso de la cuenta maestra).
type Company struct {
	ID        string
	Name      string
	TaxID     string // identificación tributaria (única)
	Address   string
	Phone     string
	Email     string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
