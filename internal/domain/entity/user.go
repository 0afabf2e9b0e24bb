package entity

import "time"

// User representa a un revendedor. Cada usuario es un tenant: órdenes de compra,
// artículos y analítica se delimitan siempre por UserID.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	ReducedTax   bool // régimen reducido de cotización (ACRE): 11% en vez de 22%
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
