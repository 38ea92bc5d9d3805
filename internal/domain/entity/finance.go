package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de título financeiro.
const (
	FinanceStatusAberto    = "aberto"
	FinanceStatusPago      = "pago"
	FinanceStatusVencido   = "vencido"
	FinanceStatusCancelado = "cancelado"
)

// Payable representa uma conta a pagar do ateliê (fornecedor, aluguel...).
type Payable struct {
	ID          string
	EmpresaID   string
	Description string
	Supplier    string
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Receivable representa uma conta a receber. OrderID é preenchido quando o
// título foi gerado automaticamente na entrega de um pedido.
type Receivable struct {
	ID          string
	EmpresaID   string
	CustomerID  string
	OrderID     string
	Description string
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      string
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
