package matching_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelieplus/atelie-api/internal/domain/matching"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalize
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalize_MinusculasSemAcento(t *testing.T) {
	assert.Equal(t, "calca jeans", matching.Normalize("  Calça   JEANS "))
	assert.Equal(t, "botao azul", matching.Normalize("Botão\tAzul"))
	assert.Equal(t, "", matching.Normalize("   "))
}

// Propriedade: Normalize é idempotente.
func TestNormalize_Idempotente(t *testing.T) {
	cases := []string{
		"Camiseta Azul", "Tecido Algodão 1,40m", "ZÍPER nº 5", "", "àéîõü ÇÃO",
	}
	for _, in := range cases {
		once := matching.Normalize(in)
		assert.Equal(t, once, matching.Normalize(once), "entrada: %q", in)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Keywords
// ──────────────────────────────────────────────────────────────────────────────

func TestKeywords_FiltraTokensIrrelevantes(t *testing.T) {
	// stop-word ("para"), numérico puro ("40") e token curto ("nº"→"no") caem
	got := matching.Keywords("Tecido para Blusa 40 nº")
	assert.Equal(t, []string{"tecido", "blusa"}, got)
}

func TestKeywords_EntradaVazia(t *testing.T) {
	assert.Empty(t, matching.Keywords(""))
	assert.Empty(t, matching.Keywords("de e o 12 345"))
}

// Propriedade: nunca devolve stop-words, numéricos puros ou tokens curtos.
func TestKeywords_Propriedades(t *testing.T) {
	got := matching.Keywords("A Blusa de Seda com 3 Botões para o Uniforme 2024")
	for _, tok := range got {
		assert.Greater(t, len([]rune(tok)), 2, "token curto: %q", tok)
		assert.NotRegexp(t, `^\d+$`, tok)
		assert.NotContains(t, []string{"com", "para"}, tok)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Similarity
// ──────────────────────────────────────────────────────────────────────────────

func TestSimilarity_Simetrica(t *testing.T) {
	pairs := [][2]string{
		{"Camiseta Azul", "Botão Azul"},
		{"Tecido Algodão", "Algodão cru 1,40m"},
		{"Vestido de Festa", "Renda Guipir"},
		{"Blusa", "Blusas"},
	}
	for _, p := range pairs {
		assert.InDelta(t, matching.Similarity(p[0], p[1]), matching.Similarity(p[1], p[0]), 1e-12,
			"par: %q vs %q", p[0], p[1])
	}
}

func TestSimilarity_ZeroSemPalavrasChave(t *testing.T) {
	assert.Zero(t, matching.Similarity("", "Tecido Algodão"))
	assert.Zero(t, matching.Similarity("12 34", "Tecido Algodão"))
	assert.Zero(t, matching.Similarity("de o a", "de o a"))
}

func TestSimilarity_FaixaEContencao(t *testing.T) {
	// contenção nos dois sentidos cobre singular/plural
	s := matching.Similarity("Tecido", "Tecidos de Algodão")
	assert.Greater(t, s, 0.0)
	assert.LessOrEqual(t, s, 1.0)

	require.Equal(t, 1.0, matching.Similarity("Tecido Algodão", "tecido algodao"))
}

// Cenário do ranking: "Botão Azul" deve pontuar acima de "Zíper" contra
// "Camiseta Azul" pela sobreposição da palavra "azul".
func TestSimilarity_RankingCamisetaAzul(t *testing.T) {
	product := "Camiseta Azul"
	botao := matching.Similarity(product, "Botão Azul")
	ziper := matching.Similarity(product, "Zíper")
	tecido := matching.Similarity(product, "Tecido Algodão")

	assert.Greater(t, botao, ziper)
	assert.Greater(t, botao, tecido)
}

// ──────────────────────────────────────────────────────────────────────────────
// Synonyms / garments
// ──────────────────────────────────────────────────────────────────────────────

func TestSynonymsFor(t *testing.T) {
	forms := matching.SynonymsFor("Tecido")
	assert.Contains(t, forms, "tecido")
	assert.Contains(t, forms, "malha")
	assert.Empty(t, matching.SynonymsFor("strass"))
}

func TestGarmentHelpers(t *testing.T) {
	assert.True(t, matching.HasGarmentKeyword("Blusa de frio bordada"))
	assert.False(t, matching.HasGarmentKeyword("Chaveiro de feltro"))
	assert.True(t, matching.LooksLikeFabric("Tecido Algodão cru"))
	assert.False(t, matching.LooksLikeFabric("Zíper nº 5"))
}
