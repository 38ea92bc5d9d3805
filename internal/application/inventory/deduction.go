package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/matching"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
	"github.com/atelieplus/atelie-api/pkg/logger"
)

// Origem do item vendido para a dedução.
const (
	SourceProduto = "produto"
	SourceServico = "servico"
)

// Estratégias de resolução, em ordem de prioridade.
const (
	StrategyExplicitLink = "vinculo_explicito"
	StrategyFinishedGood = "produto_acabado"
	StrategySimilarity   = "similaridade"
	StrategyMaterial     = "material"
	StrategyCategory     = "categoria"
)

// similarityCutoff: itens com score abaixo disso não entram no ranking.
const similarityCutoff = 0.3

// maxRankedItems: o ranking por similaridade deduz no máximo os 3 melhores.
const maxRankedItems = 3

// DeductionInput descreve o produto ou serviço vendido e a quantidade.
type DeductionInput struct {
	EmpresaID  string
	UserID     string
	SourceKind string // SourceProduto | SourceServico
	SourceID   string
	SourceName string
	Materials  []string        // matérias-primas declaradas (apenas produto)
	Links      entity.LinkList // vínculos explícitos brutos
	Quantity   decimal.Decimal // quantidade vendida, positiva
}

// Resolution é um par (item, quantidade a baixar) decidido pelo resolvedor.
type Resolution struct {
	Item     *entity.InventoryItem
	Quantity decimal.Decimal
	Strategy string
}

// DeductionResult resultado da baixa de um item resolvido.
type DeductionResult struct {
	ItemID   string
	ItemName string
	Strategy string
	Quantity decimal.Decimal
	Before   decimal.Decimal
	After    decimal.Decimal
	Err      string // vazio quando a baixa funcionou
}

// DeductionSummary consolida as tentativas de baixa de uma venda. Nunca é
// devolvido como erro ao chamador: a criação do pedido não depende dele.
type DeductionSummary struct {
	SourceKind string
	SourceID   string
	SourceName string
	Strategy   string // estratégia vencedora ("" se nada casou)
	Results    []DeductionResult
	Succeeded  int
	Failed     int
}

// DeductionResolver decide quais itens de estoque baixar quando um produto é
// vendido ou um serviço executado, e efetiva cada baixa isoladamente.
type DeductionResolver struct {
	itemRepo repository.InventoryItemRepository
	recorder DeductionRecorder
	log      *logger.Logger
}

// NewDeductionResolver constrói o resolvedor.
func NewDeductionResolver(itemRepo repository.InventoryItemRepository, recorder DeductionRecorder, log *logger.Logger) *DeductionResolver {
	return &DeductionResolver{itemRepo: itemRepo, recorder: recorder, log: log}
}

// Deduct resolve e efetiva as baixas para uma venda. Toda falha é capturada no
// sumário; o método nunca devolve erro porque a dedução jamais bloqueia a
// operação que a disparou.
func (r *DeductionResolver) Deduct(ctx context.Context, input DeductionInput) DeductionSummary {
	summary := DeductionSummary{
		SourceKind: input.SourceKind,
		SourceID:   input.SourceID,
		SourceName: input.SourceName,
	}

	items, err := r.listInventory(input.EmpresaID)
	if err != nil {
		r.log.Warn().Err(err).
			Str("empresa_id", input.EmpresaID).
			Str("source", input.SourceName).
			Msg("dedução: falha ao listar estoque, baixa ignorada")
		return summary
	}

	resolutions := r.Resolve(input, items)
	if len(resolutions) == 0 {
		r.log.Info().
			Str("source", input.SourceName).
			Str("source_kind", input.SourceKind).
			Msg("dedução: nenhum item de estoque casou, nenhuma baixa criada")
		return summary
	}
	summary.Strategy = resolutions[0].Strategy

	originKind := entity.OriginPedido
	if input.SourceKind == SourceServico {
		originKind = entity.OriginServico
	}
	reason := fmt.Sprintf("baixa automática: %s", input.SourceName)

	// Cada baixa roda isolada: a falha de um item não impede os demais.
	for _, res := range resolutions {
		dr := DeductionResult{
			ItemID:   res.Item.ID,
			ItemName: res.Item.Name,
			Strategy: res.Strategy,
			Quantity: res.Quantity,
		}
		before, after, err := r.recorder.RecordDeduction(ctx,
			input.EmpresaID, input.UserID, res.Item.ID,
			res.Quantity, reason, originKind, input.SourceID,
		)
		if err != nil {
			dr.Err = err.Error()
			summary.Failed++
			r.log.Warn().Err(err).
				Str("item_id", res.Item.ID).
				Str("item", res.Item.Name).
				Msg("dedução: falha ao registrar baixa")
		} else {
			dr.Before = before
			dr.After = after
			summary.Succeeded++
		}
		summary.Results = append(summary.Results, dr)
	}

	r.log.Info().
		Str("source", input.SourceName).
		Str("strategy", summary.Strategy).
		Int("ok", summary.Succeeded).
		Int("falhas", summary.Failed).
		Msg("dedução automática concluída")
	return summary
}

// listInventory carrega todo o estoque do tenant para o resolvedor pontuar.
func (r *DeductionResolver) listInventory(empresaID string) ([]*entity.InventoryItem, error) {
	const pageSize = 500
	var all []*entity.InventoryItem
	for offset := 0; ; offset += pageSize {
		page, err := r.itemRepo.ListByEmpresa(empresaID, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

// Resolve aplica as estratégias em ordem de prioridade; a primeira que
// produzir pares (item, quantidade) vence e nenhuma outra roda.
func (r *DeductionResolver) Resolve(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	if !input.Quantity.GreaterThan(decimal.Zero) || len(items) == 0 {
		return nil
	}

	// 1. Vínculos explícitos: autoritativos quando resolvem ao menos um item.
	if out := r.resolveExplicitLinks(input, items); len(out) > 0 {
		return out
	}

	isProduct := input.SourceKind == SourceProduto

	// 2. Peça acabada com nome exato (apenas produto).
	if isProduct {
		if out := resolveFinishedGood(input, items); len(out) > 0 {
			return out
		}
	}

	// 3. Ranking por similaridade de palavras-chave.
	if out := resolveBySimilarity(input, items); len(out) > 0 {
		return out
	}

	if !isProduct {
		return nil
	}

	// 4. Matéria-prima declarada, com expansão por sinônimos.
	if out := resolveByMaterials(input, items); len(out) > 0 {
		return out
	}

	// 5. Fallback por categoria de peça: tecido genérico.
	return resolveByGarmentCategory(input, items)
}

// resolveExplicitLinks decodifica a coluna de vínculos (texto JSON ou array
// nativo) e resolve cada par contra o estoque vivo. Falha de parse vira lista
// vazia e cai para as demais estratégias; referência a item inexistente é
// pulada com warning.
func (r *DeductionResolver) resolveExplicitLinks(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	links, err := input.Links.Decode()
	if err != nil {
		r.log.Warn().Err(err).
			Str("source", input.SourceName).
			Msg("dedução: vínculos explícitos ilegíveis, usando fallback")
		return nil
	}
	if len(links) == 0 {
		return nil
	}

	byID := make(map[string]*entity.InventoryItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	var out []Resolution
	for _, ln := range links {
		item, ok := byID[ln.ItemID]
		if !ok {
			r.log.Warn().
				Str("item_id", ln.ItemID).
				Str("source", input.SourceName).
				Msg("dedução: vínculo aponta para item inexistente, ignorado")
			continue
		}
		out = append(out, Resolution{
			Item:     item,
			Quantity: input.Quantity.Mul(ln.PerUnitQty),
			Strategy: StrategyExplicitLink,
		})
	}
	return out
}

// resolveFinishedGood procura um item marcado como peça acabada cujo nome
// normalizado seja igual ao do produto.
func resolveFinishedGood(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	want := matching.Normalize(input.SourceName)
	if want == "" {
		return nil
	}
	for _, it := range items {
		if it.FinishedGood && matching.Normalize(it.Name) == want {
			return []Resolution{{Item: it, Quantity: input.Quantity, Strategy: StrategyFinishedGood}}
		}
	}
	return nil
}

// resolveBySimilarity pontua todo o estoque contra o nome vendido, mantém os
// scores acima do corte e baixa a quantidade cheia nos 3 melhores. Pode
// sobre-deduzir quando a heurística erra; imprecisão conhecida e aceita.
func resolveBySimilarity(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	type scored struct {
		item  *entity.InventoryItem
		score float64
	}
	var ranked []scored
	for _, it := range items {
		if s := matching.Similarity(input.SourceName, it.Name); s > similarityCutoff {
			ranked = append(ranked, scored{item: it, score: s})
		}
	}
	if len(ranked) == 0 {
		return nil
	}
	// ordem estável: empates mantêm a ordem do estoque
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > maxRankedItems {
		ranked = ranked[:maxRankedItems]
	}
	out := make([]Resolution, 0, len(ranked))
	for _, sc := range ranked {
		out = append(out, Resolution{Item: sc.item, Quantity: input.Quantity, Strategy: StrategySimilarity})
	}
	return out
}

// resolveByMaterials tenta casar cada matéria-prima declarada com o nome de um
// item: primeiro contenção direta, depois pelas formas da tabela de sinônimos.
// Primeiro acerto por material vence; itens repetidos não são baixados duas vezes.
func resolveByMaterials(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	var out []Resolution
	taken := make(map[string]struct{})

	addHit := func(it *entity.InventoryItem) {
		if _, dup := taken[it.ID]; dup {
			return
		}
		taken[it.ID] = struct{}{}
		out = append(out, Resolution{Item: it, Quantity: input.Quantity, Strategy: StrategyMaterial})
	}

	for _, material := range input.Materials {
		want := matching.Normalize(material)
		if want == "" {
			continue
		}

		found := false
		for _, it := range items {
			if strings.Contains(matching.Normalize(it.Name), want) {
				addHit(it)
				found = true
				break
			}
		}
		if found {
			continue
		}

		for _, form := range matching.SynonymsFor(material) {
			for _, it := range items {
				if strings.Contains(matching.Normalize(it.Name), form) {
					addHit(it)
					found = true
					break
				}
			}
			if found {
				break
			}
		}
	}
	return out
}

// resolveByGarmentCategory: produto com palavra de tipo de peça consome o
// primeiro item que pareça tecido/pano genérico.
func resolveByGarmentCategory(input DeductionInput, items []*entity.InventoryItem) []Resolution {
	if !matching.HasGarmentKeyword(input.SourceName) {
		return nil
	}
	for _, it := range items {
		if matching.LooksLikeFabric(it.Name) {
			return []Resolution{{Item: it, Quantity: input.Quantity, Strategy: StrategyCategory}}
		}
	}
	return nil
}
