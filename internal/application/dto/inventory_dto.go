package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInventoryItemRequest entrada para criar um item de estoque.
type CreateInventoryItemRequest struct {
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Unit            string          `json:"unit" validate:"required"`
	Category        string          `json:"category"`
	InitialQuantity decimal.Decimal `json:"initial_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	FinishedGood    bool            `json:"finished_good"`
}

// UpdateInventoryItemRequest entrada para atualizar um item (sem quantidade:
// quantidade só muda via movimentação).
type UpdateInventoryItemRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Unit            *string          `json:"unit"`
	Category        *string          `json:"category"`
	MinimumQuantity *decimal.Decimal `json:"minimum_quantity"`
	FinishedGood    *bool            `json:"finished_good"`
}

// InventoryItemResponse saída de um item de estoque.
type InventoryItemResponse struct {
	ID              string          `json:"id"`
	EmpresaID       string          `json:"empresa_id"`
	Name            string          `json:"name"`
	Unit            string          `json:"unit"`
	Category        string          `json:"category"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
	FinishedGood    bool            `json:"finished_good"`
	BelowMinimum    bool            `json:"below_minimum"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// InventoryItemListResponse lista paginada de itens.
type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}

// RegisterMovementRequest entrada para registrar uma movimentação manual.
type RegisterMovementRequest struct {
	ItemID            string          `json:"item_id" validate:"required"`
	CounterpartItemID string          `json:"counterpart_item_id"`
	Kind              string          `json:"kind" validate:"required"`
	Quantity          decimal.Decimal `json:"quantity"`
	Reason            string          `json:"reason"`
}

// MovementResponse saída de uma movimentação registrada.
type MovementResponse struct {
	MovementID     string          `json:"movement_id"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
}

// StockMovementResponse uma linha do histórico de movimentações.
type StockMovementResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"item_id"`
	Kind           string          `json:"kind"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	Reason         string          `json:"reason"`
	OriginKind     string          `json:"origin_kind"`
	OriginID       string          `json:"origin_id"`
	CreatedAt      time.Time       `json:"created_at"`
}

// DeductionResultResponse resultado da baixa automática de um item.
type DeductionResultResponse struct {
	ItemID   string          `json:"item_id"`
	ItemName string          `json:"item_name"`
	Strategy string          `json:"strategy"`
	Quantity decimal.Decimal `json:"quantity"`
	Before   decimal.Decimal `json:"before"`
	After    decimal.Decimal `json:"after"`
	Error    string          `json:"error,omitempty"`
}

// DeductionSummaryResponse sumário das baixas de uma venda.
type DeductionSummaryResponse struct {
	SourceKind string                    `json:"source_kind"`
	SourceName string                    `json:"source_name"`
	Strategy   string                    `json:"strategy,omitempty"`
	Results    []DeductionResultResponse `json:"results"`
	Succeeded  int                       `json:"succeeded"`
	Failed     int                       `json:"failed"`
}

// StockMovementListResponse histórico paginado.
type StockMovementListResponse struct {
	Items []StockMovementResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
