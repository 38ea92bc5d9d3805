package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/application/inventory"
	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

const testEmpresa = "emp-1"

func newResolver(repo *fakeItemRepo, rec *fakeRecorder) *inventory.DeductionResolver {
	return inventory.NewDeductionResolver(repo, rec, logger.Nop())
}

// Vínculo explícito presente e não vazio curto-circuita todas as demais
// estratégias: produto com link (item=X, qty=2) vendido com quantidade 3 baixa
// exatamente 6 de X e não toca nenhum outro item, mesmo com nomes parecidos.
func TestDeduct_VinculoExplicitoCurtoCircuita(t *testing.T) {
	tecido := item("item-x", testEmpresa, "Tecido Camiseta Azul", 50)
	parecido := item("item-y", testEmpresa, "Camiseta Azul", 50)
	repo := newFakeItemRepo(tecido, parecido)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Camiseta Azul",
		Links:      entity.LinkList(`[{"item_id":"item-x","per_unit_qty":"2"}]`),
		Quantity:   decimal.NewFromInt(3),
	})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-x", rec.calls[0].ItemID)
	assert.True(t, rec.calls[0].Quantity.Equal(decimal.NewFromInt(6)),
		"esperava 3×2=6, veio %s", rec.calls[0].Quantity)
	assert.Equal(t, inventory.StrategyExplicitLink, summary.Strategy)
	assert.Equal(t, 1, summary.Succeeded)
}

// Vínculos gravados como texto JSON (registro antigo) decodificam igual.
func TestDeduct_VinculoSerializadoComoTexto(t *testing.T) {
	tecido := item("item-x", testEmpresa, "Tecido Algodão", 50)
	repo := newFakeItemRepo(tecido)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Almofada",
		Links:      entity.LinkList(`"[{\"item_id\":\"item-x\",\"per_unit_qty\":\"0.5\"}]"`),
		Quantity:   decimal.NewFromInt(4),
	})

	require.Len(t, rec.calls, 1)
	assert.True(t, rec.calls[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, inventory.StrategyExplicitLink, summary.Strategy)
}

// Vínculo ilegível não derruba nada: cai para as estratégias seguintes.
func TestDeduct_VinculoIlegivelCaiParaFallback(t *testing.T) {
	acabado := item("item-1", testEmpresa, "Camiseta Azul", 10)
	acabado.FinishedGood = true
	repo := newFakeItemRepo(acabado)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Camiseta Azul",
		Links:      entity.LinkList(`{caos`),
		Quantity:   decimal.NewFromInt(1),
	})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, inventory.StrategyFinishedGood, summary.Strategy)
}

// Vínculo apontando para item excluído é pulado; se nenhum resolver, as
// estratégias seguintes rodam.
func TestDeduct_VinculoPenduradoEhPulado(t *testing.T) {
	acabado := item("item-1", testEmpresa, "Camiseta Azul", 10)
	acabado.FinishedGood = true
	repo := newFakeItemRepo(acabado)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Camiseta Azul",
		Links:      entity.LinkList(`[{"item_id":"nao-existe","per_unit_qty":"1"}]`),
		Quantity:   decimal.NewFromInt(1),
	})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-1", rec.calls[0].ItemID)
	assert.Equal(t, inventory.StrategyFinishedGood, summary.Strategy)
}

// Peça acabada com nome exato vence o ranking por similaridade.
func TestDeduct_ProdutoAcabadoAntesDeSimilaridade(t *testing.T) {
	acabado := item("item-1", testEmpresa, "Vestido de Festa", 5)
	acabado.FinishedGood = true
	similar := item("item-2", testEmpresa, "Tecido Vestido Festa", 50)
	repo := newFakeItemRepo(similar, acabado)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Vestido de Festa",
		Quantity:   decimal.NewFromInt(2),
	})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-1", rec.calls[0].ItemID)
	assert.Equal(t, inventory.StrategyFinishedGood, summary.Strategy)
}

// Ranking por similaridade: corta em 0.3, no máximo 3 itens, quantidade cheia
// em cada um.
func TestDeduct_RankingSimilaridade(t *testing.T) {
	repo := newFakeItemRepo(
		item("item-1", testEmpresa, "Tecido Algodão", 50),
		item("item-2", testEmpresa, "Zíper", 50),
		item("item-3", testEmpresa, "Botão Azul", 50),
	)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Camiseta Azul",
		Quantity:   decimal.NewFromInt(2),
	})

	// só "Botão Azul" passa do corte (sobreposição em "azul")
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-3", rec.calls[0].ItemID)
	assert.True(t, rec.calls[0].Quantity.Equal(decimal.NewFromInt(2)))
	assert.Equal(t, inventory.StrategySimilarity, summary.Strategy)
}

// Serviço avulso usa o ranking, mas nunca os fallbacks exclusivos de produto.
func TestDeduct_ServicoNaoUsaFallbackDeProduto(t *testing.T) {
	tecido := item("item-1", testEmpresa, "Tecido Algodão cru", 50)
	repo := newFakeItemRepo(tecido)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceServico,
		SourceID:   "serv-1",
		SourceName: "Barra de calça simples",
		Quantity:   decimal.NewFromInt(1),
	})

	// nome contém "calça" (palavra de peça), mas o fallback por categoria é
	// exclusivo de produto: nada deve ser baixado
	assert.Empty(t, rec.calls)
	assert.Empty(t, summary.Strategy)
	assert.Zero(t, summary.Succeeded)
}

// Matéria-prima declarada casa por contenção direta e depois por sinônimo.
func TestDeduct_MateriaPrimaComSinonimo(t *testing.T) {
	malha := item("item-1", testEmpresa, "Malha fria amarela", 50)
	repo := newFakeItemRepo(malha)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Necessaire",
		Materials:  []string{"Tecido"},
		Quantity:   decimal.NewFromInt(1),
	})

	// "tecido" não aparece no nome, mas o sinônimo "malha" sim
	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-1", rec.calls[0].ItemID)
	assert.Equal(t, inventory.StrategyMaterial, summary.Strategy)
}

// Fallback por categoria: nome com tipo de peça consome tecido genérico.
func TestDeduct_FallbackCategoria(t *testing.T) {
	repo := newFakeItemRepo(
		item("item-1", testEmpresa, "Zíper nº 5", 50),
		item("item-2", testEmpresa, "Tecido tricoline estampado", 50),
	)
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Avental infantil",
		Quantity:   decimal.NewFromInt(3),
	})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "item-2", rec.calls[0].ItemID)
	assert.Equal(t, inventory.StrategyCategory, summary.Strategy)
}

// Nada casa: zero movimentos, e o sumário volta vazio sem erro — a operação
// pai segue como sucesso.
func TestDeduct_NadaCasaNaoCriaMovimento(t *testing.T) {
	repo := newFakeItemRepo(item("item-1", testEmpresa, "Zíper nº 5", 50))
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Chaveiro de feltro",
		Quantity:   decimal.NewFromInt(1),
	})

	assert.Empty(t, rec.calls)
	assert.Empty(t, summary.Results)
	assert.Zero(t, summary.Failed)
}

// Falha ao baixar um item não impede a tentativa dos demais; o sumário conta
// sucessos e falhas por item.
func TestDeduct_FalhaIsoladaPorItem(t *testing.T) {
	repo := newFakeItemRepo(
		item("item-1", testEmpresa, "Linha Azul", 50),
		item("item-2", testEmpresa, "Botão Azul", 50),
	)
	rec := &fakeRecorder{failFor: map[string]bool{"item-1": true}}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Bolsa Azul",
		Quantity:   decimal.NewFromInt(1),
	})

	assert.Len(t, rec.calls, 2)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 2)
}

// Falha ao listar o estoque: dedução ignorada por inteiro, sem erro propagado.
func TestDeduct_FalhaDeListagemIgnorada(t *testing.T) {
	repo := newFakeItemRepo()
	repo.listErr = assert.AnError
	rec := &fakeRecorder{}

	summary := newResolver(repo, rec).Deduct(context.Background(), inventory.DeductionInput{
		EmpresaID:  testEmpresa,
		SourceKind: inventory.SourceProduto,
		SourceID:   "prod-1",
		SourceName: "Camiseta Azul",
		Quantity:   decimal.NewFromInt(1),
	})

	assert.Empty(t, rec.calls)
	assert.Empty(t, summary.Results)
}
