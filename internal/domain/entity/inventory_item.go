package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem representa um item de estoque do ateliê (tecido, aviamento ou
// peça acabada). CurrentQuantity é mutado apenas pelo registrador de movimentos
// e deve sempre igualar o QuantityAfter do movimento mais recente do item.
type InventoryItem struct {
	ID              string
	EmpresaID       string
	Name            string
	Unit            string // m, un, cone, rolo...
	Category        string
	CurrentQuantity decimal.Decimal
	MinimumQuantity decimal.Decimal // alerta de reposição
	FinishedGood    bool            // peça pronta para venda direta
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// BelowMinimum indica se o item está no ponto de reposição.
func (i *InventoryItem) BelowMinimum() bool {
	return i.CurrentQuantity.LessThanOrEqual(i.MinimumQuantity)
}
