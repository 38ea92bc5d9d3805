package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do catálogo do ateliê (peça vendável).
// Links guarda os vínculos explícitos com itens de estoque; Materials é a lista
// livre de matérias-primas declaradas, usada apenas pela heurística de dedução.
type Product struct {
	ID          string
	EmpresaID   string
	Name        string
	Description string
	Category    string // blusa, vestido, bordado, conserto...
	UnitPrice   decimal.Decimal
	Materials   []string
	Links       LinkList
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// QuickService representa um serviço avulso cobrável (barra, ajuste, bordado).
// Mesma forma do produto, mas sem os campos exclusivos de bem físico.
type QuickService struct {
	ID          string
	EmpresaID   string
	Name        string
	Description string
	Category    string
	UnitPrice   decimal.Decimal
	Links       LinkList
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
