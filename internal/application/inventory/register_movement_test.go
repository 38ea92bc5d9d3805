package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
)

func newEngine(items ...*entity.InventoryItem) (*inventory.RegisterMovementUseCase, *fakeItemRepo, *fakeMovRepo) {
	itemRepo := newFakeItemRepo(items...)
	movRepo := &fakeMovRepo{}
	uc := inventory.NewRegisterMovementUseCase(&fakeTxRunner{itemRepo: itemRepo, movRepo: movRepo}, itemRepo)
	return uc, itemRepo, movRepo
}

// Invariante: quantityAfter == quantityBefore - quantity para "saida", e o
// CurrentQuantity do item passa a ser o quantityAfter do movimento.
func TestRegisterMovement_SaidaInvariante(t *testing.T) {
	it := item("item-1", testEmpresa, "Tecido Algodão", 10)
	uc, itemRepo, movRepo := newEngine(it)

	res, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID: testEmpresa,
		UserID:    "user-1",
		ItemID:    "item-1",
		Kind:      entity.MovementSaida,
		Quantity:  decimal.NewFromInt(3),
		Reason:    "corte de peça",
	})
	require.NoError(t, err)

	assert.True(t, res.QuantityBefore.Equal(decimal.NewFromInt(10)))
	assert.True(t, res.QuantityAfter.Equal(decimal.NewFromInt(7)))
	assert.True(t, res.QuantityAfter.Equal(res.QuantityBefore.Sub(decimal.NewFromInt(3))))

	require.Len(t, movRepo.movements, 1)
	mov := movRepo.movements[0]
	assert.Equal(t, entity.MovementSaida, mov.Kind)
	assert.True(t, mov.QuantityAfter.Equal(mov.QuantityBefore.Sub(mov.Quantity)))

	stored, _ := itemRepo.GetByID("item-1")
	assert.True(t, stored.CurrentQuantity.Equal(mov.QuantityAfter),
		"CurrentQuantity deve igualar o QuantityAfter do último movimento")
}

func TestRegisterMovement_EntradaSoma(t *testing.T) {
	uc, _, movRepo := newEngine(item("item-1", testEmpresa, "Linha branca", 2))

	res, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID: testEmpresa,
		ItemID:    "item-1",
		Kind:      entity.MovementEntrada,
		Quantity:  decimal.NewFromInt(5),
		OriginKind: entity.OriginCompra,
	})
	require.NoError(t, err)
	assert.True(t, res.QuantityAfter.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, entity.OriginCompra, movRepo.movements[0].OriginKind)
}

func TestRegisterMovement_SaidaSemSaldo(t *testing.T) {
	uc, _, movRepo := newEngine(item("item-1", testEmpresa, "Zíper", 1))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID: testEmpresa,
		ItemID:    "item-1",
		Kind:      entity.MovementSaida,
		Quantity:  decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, movRepo.movements, "movimento não deve ser criado quando a saída falha")
}

func TestRegisterMovement_AjusteNegativo(t *testing.T) {
	uc, itemRepo, _ := newEngine(item("item-1", testEmpresa, "Botão", 10))

	res, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID: testEmpresa,
		ItemID:    "item-1",
		Kind:      entity.MovementAjuste,
		Quantity:  decimal.NewFromInt(-4),
		Reason:    "contagem física",
	})
	require.NoError(t, err)
	assert.True(t, res.QuantityAfter.Equal(decimal.NewFromInt(6)))

	stored, _ := itemRepo.GetByID("item-1")
	assert.True(t, stored.CurrentQuantity.Equal(decimal.NewFromInt(6)))
}

func TestRegisterMovement_TransferenciaDoisMovimentos(t *testing.T) {
	uc, itemRepo, movRepo := newEngine(
		item("item-1", testEmpresa, "Tecido cru peça A", 10),
		item("item-2", testEmpresa, "Tecido cru peça B", 1),
	)

	res, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID:         testEmpresa,
		ItemID:            "item-1",
		CounterpartItemID: "item-2",
		Kind:              entity.MovementTransferencia,
		Quantity:          decimal.NewFromInt(4),
	})
	require.NoError(t, err)
	assert.True(t, res.QuantityAfter.Equal(decimal.NewFromInt(6)))

	require.Len(t, movRepo.movements, 2)
	origin, _ := itemRepo.GetByID("item-1")
	dest, _ := itemRepo.GetByID("item-2")
	assert.True(t, origin.CurrentQuantity.Equal(decimal.NewFromInt(6)))
	assert.True(t, dest.CurrentQuantity.Equal(decimal.NewFromInt(5)))
}

func TestRegisterMovement_ItemDeOutraEmpresa(t *testing.T) {
	uc, _, _ := newEngine(item("item-1", "outra-empresa", "Tecido", 10))

	_, err := uc.RegisterMovement(context.Background(), inventory.MovementInput{
		EmpresaID: testEmpresa,
		ItemID:    "item-1",
		Kind:      entity.MovementSaida,
		Quantity:  decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// A baixa heurística não exige saldo: o estoque pode ficar negativo, mas a
// invariante before-quantity==after se mantém.
func TestRecordDeduction_PermiteSaldoNegativo(t *testing.T) {
	uc, itemRepo, movRepo := newEngine(item("item-1", testEmpresa, "Tecido", 2))

	before, after, err := uc.RecordDeduction(context.Background(),
		testEmpresa, "user-1", "item-1",
		decimal.NewFromInt(5), "baixa automática: Camiseta", entity.OriginPedido, "ped-1")
	require.NoError(t, err)

	assert.True(t, before.Equal(decimal.NewFromInt(2)))
	assert.True(t, after.Equal(decimal.NewFromInt(-3)))

	stored, _ := itemRepo.GetByID("item-1")
	assert.True(t, stored.CurrentQuantity.Equal(decimal.NewFromInt(-3)))
	require.Len(t, movRepo.movements, 1)
	assert.Equal(t, entity.OriginPedido, movRepo.movements[0].OriginKind)
	assert.Equal(t, "ped-1", movRepo.movements[0].OriginID)
}
