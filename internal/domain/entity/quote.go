package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de orçamento.
const (
	QuoteStatusAberto     = "aberto"
	QuoteStatusAprovado   = "aprovado"
	QuoteStatusRecusado   = "recusado"
	QuoteStatusExpirado   = "expirado"
	QuoteStatusConvertido = "convertido" // virou pedido
)

// Quote representa um orçamento enviado ao cliente. A conversão em pedido copia
// os itens; nenhuma dedução de estoque acontece até o pedido existir.
type Quote struct {
	ID         string
	EmpresaID  string
	CustomerID string
	Code       string // ORC-NNNNNN sequencial por empresa
	Status     string
	Total      decimal.Decimal
	ValidUntil *time.Time
	Notes      string
	OrderID    string // preenchido após conversão
	Items      []QuoteItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CreatedBy  string
}

// QuoteItem é uma linha do orçamento.
type QuoteItem struct {
	ID          string
	QuoteID     string
	ProductID   string
	ServiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
