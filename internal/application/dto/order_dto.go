package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput uma linha do pedido ou orçamento. ProductID/ServiceID
// opcionais; linha de texto livre não dispara baixa de estoque.
type OrderItemInput struct {
	ProductID   string          `json:"product_id"`
	ServiceID   string          `json:"service_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para criar um pedido.
type CreateOrderRequest struct {
	CustomerID  string           `json:"customer_id" validate:"required"`
	Items       []OrderItemInput `json:"items" validate:"required,min=1"`
	DeliveryDue *time.Time       `json:"delivery_due"`
	Notes       string           `json:"notes"`
}

// UpdateOrderStatusRequest entrada para transição de status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse uma linha do pedido.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id,omitempty"`
	ServiceID   string          `json:"service_id,omitempty"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// OrderResponse saída de um pedido.
type OrderResponse struct {
	ID          string              `json:"id"`
	EmpresaID   string              `json:"empresa_id"`
	CustomerID  string              `json:"customer_id"`
	Code        string              `json:"code"`
	Status      string              `json:"status"`
	Total       decimal.Decimal     `json:"total"`
	DeliveryDue *time.Time          `json:"delivery_due,omitempty"`
	Notes       string              `json:"notes"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// OrderListResponse lista paginada de pedidos.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CreateQuoteRequest entrada para criar um orçamento.
type CreateQuoteRequest struct {
	CustomerID string           `json:"customer_id" validate:"required"`
	Items      []OrderItemInput `json:"items" validate:"required,min=1"`
	ValidUntil *time.Time       `json:"valid_until"`
	Notes      string           `json:"notes"`
}

// QuoteResponse saída de um orçamento.
type QuoteResponse struct {
	ID         string              `json:"id"`
	EmpresaID  string              `json:"empresa_id"`
	CustomerID string              `json:"customer_id"`
	Code       string              `json:"code"`
	Status     string              `json:"status"`
	Total      decimal.Decimal     `json:"total"`
	ValidUntil *time.Time          `json:"valid_until,omitempty"`
	Notes      string              `json:"notes"`
	OrderID    string              `json:"order_id,omitempty"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// QuoteListResponse lista paginada de orçamentos.
type QuoteListResponse struct {
	Items []QuoteResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
