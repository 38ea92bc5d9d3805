package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de pedido. Transições válidas:
// orcamento → aprovado → producao → pronto → entregue; cancelado é terminal e
// alcançável de qualquer status não terminal.
const (
	OrderStatusOrcamento = "orcamento"
	OrderStatusAprovado  = "aprovado"
	OrderStatusProducao  = "producao"
	OrderStatusPronto    = "pronto"
	OrderStatusEntregue  = "entregue"
	OrderStatusCancelado = "cancelado"
)

// ValidOrderTransition verifica se a transição de status é permitida.
func ValidOrderTransition(from, to string) bool {
	if from == OrderStatusEntregue || from == OrderStatusCancelado {
		return false
	}
	if to == OrderStatusCancelado {
		return true
	}
	next := map[string]string{
		OrderStatusOrcamento: OrderStatusAprovado,
		OrderStatusAprovado:  OrderStatusProducao,
		OrderStatusProducao:  OrderStatusPronto,
		OrderStatusPronto:    OrderStatusEntregue,
	}
	return next[from] == to
}

// Order representa um pedido/encomenda do ateliê.
// Code é sequencial por empresa no formato PED-NNNNNN.
type Order struct {
	ID          string
	EmpresaID   string
	CustomerID  string
	Code        string
	Status      string
	Total       decimal.Decimal
	DeliveryDue *time.Time
	Notes       string
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CreatedBy   string
}

// OrderItem é uma linha do pedido. ProductID/ServiceID opcionais: itens de
// texto livre não referenciam catálogo e não disparam dedução de estoque.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string // vazio se serviço ou texto livre
	ServiceID   string // vazio se produto ou texto livre
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
