package entity

import "time"

// Customer representa um cliente do ateliê.
type Customer struct {
	ID        string
	EmpresaID string
	Name      string
	Phone     string
	Email     string
	Document  string // CPF/CNPJ, opcional
	Address   string
	Notes     string // medidas, preferências, observações livres
	CreatedAt time.Time
	UpdatedAt time.Time
}
