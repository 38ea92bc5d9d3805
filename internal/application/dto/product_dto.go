package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// LinkDTO um vínculo explícito produto→item de estoque.
type LinkDTO struct {
	ItemID     string          `json:"item_id" validate:"required"`
	PerUnitQty decimal.Decimal `json:"per_unit_qty"`
}

// CreateProductRequest entrada para criar um produto do catálogo.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Materials   []string        `json:"materials"`
	Links       []LinkDTO       `json:"links"`
}

// UpdateProductRequest entrada para atualizar um produto.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Materials   []string         `json:"materials"`
	Links       []LinkDTO        `json:"links"`
}

// ProductResponse saída de um produto.
type ProductResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Materials   []string        `json:"materials"`
	Links       json.RawMessage `json:"links"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de produtos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateQuickServiceRequest entrada para criar um serviço avulso.
type CreateQuickServiceRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Links       []LinkDTO       `json:"links"`
}

// UpdateQuickServiceRequest entrada para atualizar um serviço avulso.
type UpdateQuickServiceRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
	Links       []LinkDTO        `json:"links"`
}

// QuickServiceResponse saída de um serviço avulso.
type QuickServiceResponse struct {
	ID          string          `json:"id"`
	EmpresaID   string          `json:"empresa_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Links       json.RawMessage `json:"links"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// QuickServiceListResponse lista paginada de serviços.
type QuickServiceListResponse struct {
	Items []QuickServiceResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
