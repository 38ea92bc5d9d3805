package entity

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ExplicitLink associa um produto/serviço a um item de estoque com a quantidade
// consumida por unidade vendida. Configurado manualmente pelo dono do ateliê;
// quando presente, dispensa a heurística de dedução.
type ExplicitLink struct {
	ItemID     string          `json:"item_id"`
	PerUnitQty decimal.Decimal `json:"per_unit_qty"`
}

// LinkList é o valor bruto da coluna de vínculos explícitos. Registros antigos
// gravaram o array serializado como texto JSON; registros novos gravam o array
// nativo. Decode normaliza as duas formas em um único passo na borda.
type LinkList json.RawMessage

// MarshalJSON preserva o conteúdo bruto (ou null quando vazio).
func (l LinkList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return json.RawMessage(l).MarshalJSON()
}

// UnmarshalJSON guarda o conteúdo bruto sem interpretar.
func (l *LinkList) UnmarshalJSON(data []byte) error {
	*l = LinkList(append([]byte(nil), data...))
	return nil
}

// Decode devolve os vínculos explícitos normalizados. Aceita tanto o array JSON
// nativo quanto o array serializado como string JSON ("[{...}]" com aspas).
// Qualquer falha de parse resulta em lista vazia — a ambiguidade nunca passa
// desta borda; cabe ao chamador logar e seguir para as estratégias de fallback.
func (l LinkList) Decode() ([]ExplicitLink, error) {
	raw := strings.TrimSpace(string(l))
	if raw == "" || raw == "null" {
		return nil, nil
	}

	// Forma 1: array nativo.
	var links []ExplicitLink
	if err := json.Unmarshal([]byte(raw), &links); err == nil {
		return compactLinks(links), nil
	}

	// Forma 2: string JSON contendo o array.
	var text string
	if err := json.Unmarshal([]byte(raw), &text); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(text), &links); err != nil {
		return nil, err
	}
	return compactLinks(links), nil
}

// compactLinks descarta entradas sem item ou com quantidade não positiva.
func compactLinks(links []ExplicitLink) []ExplicitLink {
	out := links[:0]
	for _, ln := range links {
		if ln.ItemID == "" || !ln.PerUnitQty.GreaterThan(decimal.Zero) {
			continue
		}
		out = append(out, ln)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
