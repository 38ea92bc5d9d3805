package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// InventoryItemRepository define o porto de persistência para InventoryItem.
// GetForUpdate bloqueia a linha (SELECT FOR UPDATE); usar dentro de transação.
type InventoryItemRepository interface {
	Create(item *entity.InventoryItem) error
	GetByID(id string) (*entity.InventoryItem, error)
	GetForUpdate(id string) (*entity.InventoryItem, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.InventoryItem, error)
	ListBelowMinimum(empresaID string) ([]*entity.InventoryItem, error)
	Update(item *entity.InventoryItem) error
	// UpdateQuantity grava apenas CurrentQuantity (usado pelo registrador de movimentos).
	UpdateQuantity(item *entity.InventoryItem) error
	Delete(id string) error
}

// StockMovementRepository define o porto para o histórico imutável de
// movimentações. Não há Update/Delete: movimento nunca é editado.
type StockMovementRepository interface {
	Create(mov *entity.StockMovement) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByOrigin(originKind, originID string) ([]*entity.StockMovement, error)
}
