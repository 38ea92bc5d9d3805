package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o insert do movimento e o update
// da quantidade do item aconteçam atomicamente.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		itemRepo repository.InventoryItemRepository,
		movRepo repository.StockMovementRepository,
	) error) error
}

// DeductionRecorder é o porto que o resolvedor de dedução usa para efetivar
// cada baixa. A implementação real registra um movimento "saida" transacional;
// testes injetam um fake.
type DeductionRecorder interface {
	// RecordDeduction grava a baixa sem exigir estoque suficiente (melhor
	// esforço: a heurística nunca bloqueia o pedido). Devolve as quantidades
	// antes/depois para observabilidade.
	RecordDeduction(ctx context.Context, empresaID, userID, itemID string,
		quantity decimal.Decimal, reason, originKind, originID string,
	) (before, after decimal.Decimal, err error)
}
