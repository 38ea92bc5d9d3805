package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementEntrada       = "entrada"
	MovementSaida         = "saida"
	MovementAjuste        = "ajuste"
	MovementTransferencia = "transferencia"
	MovementPerda         = "perda"
	MovementDevolucao     = "devolucao"
)

// Origens de movimentação (o que disparou a baixa/entrada).
const (
	OriginPedido  = "pedido"
	OriginServico = "servico"
	OriginManual  = "manual"
	OriginCompra  = "compra"
)

// StockMovement é o registro imutável de uma variação de estoque.
// QuantityAfter deve sempre igualar QuantityBefore mais/menos Quantity conforme
// o tipo; o registro é criado uma única vez e nunca editado.
type StockMovement struct {
	ID             string
	EmpresaID      string
	ItemID         string
	Kind           string // ver constantes Movement*
	Quantity       decimal.Decimal
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
	Reason         string
	OriginKind     string // ver constantes Origin*
	OriginID       string
	CreatedAt      time.Time
	CreatedBy      string // UserID
}

// Decrements indica se o tipo reduz o estoque.
func Decrements(kind string) bool {
	switch kind {
	case MovementSaida, MovementPerda, MovementTransferencia:
		return true
	}
	return false
}
