package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePayableRequest entrada para criar uma conta a pagar.
type CreatePayableRequest struct {
	Description string          `json:"description" validate:"required"`
	Supplier    string          `json:"supplier"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
}

// CreateReceivableRequest entrada para criar uma conta a receber manual.
type CreateReceivableRequest struct {
	CustomerID  string          `json:"customer_id"`
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
}

// PayableResponse saída de uma conta a pagar.
type PayableResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	Description string          `json:"description"`
	Supplier    string          `json:"supplier"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ReceivableResponse saída de uma conta a receber.
type ReceivableResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	CustomerID  string          `json:"customer_id,omitempty"`
	OrderID     string          `json:"order_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date"`
	Status      string          `json:"status"`
	PaidAt      *time.Time      `json:"paid_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// PayableListResponse lista paginada de contas a pagar.
type PayableListResponse struct {
	Items []PayableResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// ReceivableListResponse lista paginada de contas a receber.
type ReceivableListResponse struct {
	Items []ReceivableResponse `json:"items"`
	Page  PageResponse         `json:"page"`
}

// FinanceSummaryResponse totais em aberto da empresa.
type FinanceSummaryResponse struct {
	OpenPayables    decimal.Decimal `json:"open_payables"`
	OpenReceivables decimal.Decimal `json:"open_receivables"`
	Balance         decimal.Decimal `json:"balance"`
}
