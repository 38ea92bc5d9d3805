package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// RegisterMovementUseCase registra movimentações de estoque de forma
// transacional, com bloqueio de linha (SELECT FOR UPDATE) no item. O insert do
// movimento e o update de CurrentQuantity compartilham a mesma transação, de
// modo que a invariante "CurrentQuantity == QuantityAfter do último movimento"
// nunca fica exposta a escrita parcial.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	itemRepo repository.InventoryItemRepository
}

// NewRegisterMovementUseCase constrói o caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, itemRepo repository.InventoryItemRepository) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{txRunner: txRunner, itemRepo: itemRepo}
}

// MovementInput entrada para registrar uma movimentação manual.
// Quantity é sempre positiva; o tipo define o sinal aplicado.
// Para transferencia, CounterpartItemID recebe a entrada correspondente.
type MovementInput struct {
	EmpresaID         string
	UserID            string
	ItemID            string
	CounterpartItemID string
	Kind              string // entrada, saida, ajuste, transferencia, perda, devolucao
	Quantity          decimal.Decimal
	Reason            string
	OriginKind        string
	OriginID          string
}

// MovementResult quantidades antes/depois do item principal.
type MovementResult struct {
	MovementID     string
	QuantityBefore decimal.Decimal
	QuantityAfter  decimal.Decimal
}

// RegisterMovement valida a entrada e aplica a movimentação dentro de uma
// transação. Saída/perda com estoque insuficiente devolve ErrInsufficientStock.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) (*MovementResult, error) {
	switch input.Kind {
	case entity.MovementEntrada, entity.MovementSaida, entity.MovementAjuste,
		entity.MovementPerda, entity.MovementDevolucao:
		if input.ItemID == "" || input.Quantity.IsZero() {
			return nil, domain.ErrInvalidInput
		}
		if input.Kind != entity.MovementAjuste && input.Quantity.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	case entity.MovementTransferencia:
		if input.ItemID == "" || input.CounterpartItemID == "" ||
			input.ItemID == input.CounterpartItemID ||
			!input.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	// Valida fora da tx que o item existe e pertence à empresa
	item, err := uc.itemRepo.GetByID(input.ItemID)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	if item.EmpresaID != input.EmpresaID {
		return nil, domain.ErrForbidden
	}

	if input.OriginKind == "" {
		input.OriginKind = entity.OriginManual
	}

	var result *MovementResult
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		if input.Kind == entity.MovementTransferencia {
			r, err := uc.doTransfer(itemRepo, movRepo, input)
			result = r
			return err
		}
		r, err := applyMovement(itemRepo, movRepo, input, true)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RecordDeduction implementa DeductionRecorder: sempre tipo "saida", sem
// exigência de estoque suficiente — a baixa heurística é melhor esforço e
// jamais bloqueia a criação do pedido/serviço.
func (uc *RegisterMovementUseCase) RecordDeduction(ctx context.Context, empresaID, userID, itemID string,
	quantity decimal.Decimal, reason, originKind, originID string,
) (decimal.Decimal, decimal.Decimal, error) {
	input := MovementInput{
		EmpresaID:  empresaID,
		UserID:     userID,
		ItemID:     itemID,
		Kind:       entity.MovementSaida,
		Quantity:   quantity,
		Reason:     reason,
		OriginKind: originKind,
		OriginID:   originID,
	}
	if !quantity.GreaterThan(decimal.Zero) {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}

	var result *MovementResult
	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error {
		r, err := applyMovement(itemRepo, movRepo, input, false)
		result = r
		return err
	})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return result.QuantityBefore, result.QuantityAfter, nil
}

// applyMovement bloqueia a linha do item, calcula antes/depois conforme o tipo,
// grava o movimento imutável e atualiza CurrentQuantity na mesma transação.
// enforceStock controla se saída/perda exige saldo suficiente.
func applyMovement(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
	enforceStock bool,
) (*MovementResult, error) {
	item, err := itemRepo.GetForUpdate(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	before := item.CurrentQuantity
	var after decimal.Decimal
	switch input.Kind {
	case entity.MovementEntrada, entity.MovementDevolucao:
		after = before.Add(input.Quantity)
	case entity.MovementSaida, entity.MovementPerda, entity.MovementTransferencia:
		if enforceStock && before.LessThan(input.Quantity) {
			return nil, domain.ErrInsufficientStock
		}
		after = before.Sub(input.Quantity)
	case entity.MovementAjuste:
		// ajuste aceita quantidade com sinal
		after = before.Add(input.Quantity)
		if enforceStock && after.LessThan(decimal.Zero) {
			return nil, domain.ErrInsufficientStock
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	mov := &entity.StockMovement{
		ID:             uuid.New().String(),
		EmpresaID:      input.EmpresaID,
		ItemID:         input.ItemID,
		Kind:           input.Kind,
		Quantity:       input.Quantity,
		QuantityBefore: before,
		QuantityAfter:  after,
		Reason:         input.Reason,
		OriginKind:     input.OriginKind,
		OriginID:       input.OriginID,
		CreatedAt:      now,
		CreatedBy:      input.UserID,
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}

	item.CurrentQuantity = after
	item.UpdatedAt = now
	if err := itemRepo.UpdateQuantity(item); err != nil {
		return nil, err
	}

	return &MovementResult{
		MovementID:     mov.ID,
		QuantityBefore: before,
		QuantityAfter:  after,
	}, nil
}

// doTransfer: saída no item origem e entrada no item destino, mesma transação,
// dois movimentos com o mesmo motivo.
func (uc *RegisterMovementUseCase) doTransfer(
	itemRepo repository.InventoryItemRepository,
	movRepo repository.StockMovementRepository,
	input MovementInput,
) (*MovementResult, error) {
	dest, err := itemRepo.GetByID(input.CounterpartItemID)
	if err != nil || dest == nil {
		return nil, domain.ErrNotFound
	}
	if dest.EmpresaID != input.EmpresaID {
		return nil, domain.ErrForbidden
	}

	out := input
	out.Kind = entity.MovementTransferencia
	outResult, err := applyMovement(itemRepo, movRepo, out, true)
	if err != nil {
		return nil, err
	}

	in := input
	in.ItemID = input.CounterpartItemID
	in.Kind = entity.MovementEntrada
	if _, err := applyMovement(itemRepo, movRepo, in, false); err != nil {
		return nil, err
	}
	return outResult, nil
}
