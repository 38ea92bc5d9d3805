package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/atelieplus/atelie-api/internal/application/dto"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// InventoryUseCase cobre o CRUD de itens de estoque e a consulta do
// histórico. A quantidade corrente nunca é editada por aqui: toda
// alteração passa pelo registrador de movimentações.
type InventoryUseCase struct {
	itemRepo repository.InventoryItemRepository
	movRepo  repository.StockMovementRepository
}

// NewInventoryUseCase constrói o caso de uso.
func NewInventoryUseCase(itemRepo repository.InventoryItemRepository, movRepo repository.StockMovementRepository) *InventoryUseCase {
	return &InventoryUseCase{itemRepo: itemRepo, movRepo: movRepo}
}

// Create cadastra um item de estoque com a quantidade inicial informada.
func (uc *InventoryUseCase) Create(empresaID string, in dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	if in.InitialQuantity.IsNegative() || in.MinimumQuantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	item := &entity.InventoryItem{
		ID:              uuid.New().String(),
		EmpresaID:       empresaID,
		Name:            in.Name,
		Unit:            in.Unit,
		Category:        in.Category,
		CurrentQuantity: in.InitialQuantity,
		MinimumQuantity: in.MinimumQuantity,
		FinishedGood:    in.FinishedGood,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.itemRepo.Create(item); err != nil {
		return nil, err
	}
	return entityToInventoryItemResponse(item), nil
}

// GetByID obtém um item, validando o tenant.
func (uc *InventoryUseCase) GetByID(empresaID, id string) (*dto.InventoryItemResponse, error) {
	item, err := uc.ownedItem(empresaID, id)
	if err != nil || item == nil {
		return nil, err
	}
	return entityToInventoryItemResponse(item), nil
}

// List lista os itens do tenant com paginação.
func (uc *InventoryUseCase) List(empresaID string, limit, offset int) (*dto.InventoryItemListResponse, error) {
	list, err := uc.itemRepo.ListByEmpresa(empresaID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *entityToInventoryItemResponse(it))
	}
	return &dto.InventoryItemListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListBelowMinimum lista os itens cuja quantidade está abaixo do mínimo.
func (uc *InventoryUseCase) ListBelowMinimum(empresaID string) ([]dto.InventoryItemResponse, error) {
	list, err := uc.itemRepo.ListBelowMinimum(empresaID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InventoryItemResponse, 0, len(list))
	for _, it := range list {
		items = append(items, *entityToInventoryItemResponse(it))
	}
	return items, nil
}

// Update atualiza os campos cadastrais do item. A quantidade corrente
// é intencionalmente ignorada.
func (uc *InventoryUseCase) Update(empresaID, id string, in dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := uc.ownedItem(empresaID, id)
	if err != nil || item == nil {
		return nil, err
	}
	if in.Name != nil {
		item.Name = *in.Name
	}
	if in.Unit != nil {
		item.Unit = *in.Unit
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.MinimumQuantity != nil {
		if in.MinimumQuantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		item.MinimumQuantity = *in.MinimumQuantity
	}
	if in.FinishedGood != nil {
		item.FinishedGood = *in.FinishedGood
	}
	item.UpdatedAt = time.Now()
	if err := uc.itemRepo.Update(item); err != nil {
		return nil, err
	}
	return entityToInventoryItemResponse(item), nil
}

// Delete remove um item do tenant.
func (uc *InventoryUseCase) Delete(empresaID, id string) error {
	item, err := uc.ownedItem(empresaID, id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.itemRepo.Delete(id)
}

// ListMovements retorna o histórico de movimentações de um item.
func (uc *InventoryUseCase) ListMovements(empresaID, itemID string, limit, offset int) (*dto.StockMovementListResponse, error) {
	item, err := uc.ownedItem(empresaID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.movRepo.ListByItem(itemID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, dto.StockMovementResponse{
			ID:             m.ID,
			ItemID:         m.ItemID,
			Kind:           m.Kind,
			Quantity:       m.Quantity,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			Reason:         m.Reason,
			OriginKind:     m.OriginKind,
			OriginID:       m.OriginID,
			CreatedAt:      m.CreatedAt,
		})
	}
	return &dto.StockMovementListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// ListMovementsByOrigin retorna as movimentações disparadas por um pedido
// ou execução de serviço. Só movimentos de itens do tenant são devolvidos.
func (uc *InventoryUseCase) ListMovementsByOrigin(empresaID, originKind, originID string) ([]dto.StockMovementResponse, error) {
	if originKind != entity.OriginPedido && originKind != entity.OriginServico {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.ListByOrigin(originKind, originID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockMovementResponse, 0, len(list))
	for _, m := range list {
		item, err := uc.itemRepo.GetByID(m.ItemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.EmpresaID != empresaID {
			continue
		}
		items = append(items, dto.StockMovementResponse{
			ID:             m.ID,
			ItemID:         m.ItemID,
			Kind:           m.Kind,
			Quantity:       m.Quantity,
			QuantityBefore: m.QuantityBefore,
			QuantityAfter:  m.QuantityAfter,
			Reason:         m.Reason,
			OriginKind:     m.OriginKind,
			OriginID:       m.OriginID,
			CreatedAt:      m.CreatedAt,
		})
	}
	return items, nil
}

func (uc *InventoryUseCase) ownedItem(empresaID, id string) (*entity.InventoryItem, error) {
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	if item.EmpresaID != empresaID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func entityToInventoryItemResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		ID:              i.ID,
		EmpresaID:       i.EmpresaID,
		Name:            i.Name,
		Unit:            i.Unit,
		Category:        i.Category,
		CurrentQuantity: i.CurrentQuantity,
		MinimumQuantity: i.MinimumQuantity,
		FinishedGood:    i.FinishedGood,
		BelowMinimum:    i.BelowMinimum(),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
