package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// OrderRepository define o porto de persistência para Order (com itens).
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Order, error)
	UpdateStatus(id, status string) error
	// NextCode devolve o próximo código sequencial do tenant (PED-NNNNNN).
	NextCode(empresaID string) (string, error)
	CountByEmpresa(empresaID string) (int, error)
}

// QuoteRepository define o porto de persistência para Quote (com itens).
type QuoteRepository interface {
	Create(quote *entity.Quote) error
	GetByID(id string) (*entity.Quote, error)
	ListByEmpresa(empresaID string, status string, limit, offset int) ([]*entity.Quote, error)
	UpdateStatus(id, status string) error
	// MarkConverted grava o status convertido e o pedido gerado.
	MarkConverted(id, orderID string) error
	NextCode(empresaID string) (string, error)
}
