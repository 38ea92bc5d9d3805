package matching

// materialSynonyms mapeia a palavra-chave canônica de material para as formas
// de superfície encontradas em nomes de itens de estoque. Consultada apenas
// pelo fallback de matéria-prima da dedução; chaves e valores já normalizados.
var materialSynonyms = map[string][]string{
	"tecido":    {"malha", "algodao", "tricoline", "viscose", "linho", "jeans", "sarja", "pano"},
	"linha":     {"fio", "cone", "retros"},
	"botao":     {"botoes"},
	"ziper":     {"fecho", "zip"},
	"elastico":  {"cos"},
	"entretela": {"forro", "estabilizador"},
	"renda":     {"guipir", "chantilly"},
	"vies":      {"fita", "debrum"},
}

// SynonymsFor devolve as formas conhecidas para o material (já normalizado),
// incluindo o próprio termo canônico. Lista vazia quando o material não consta
// na tabela.
func SynonymsFor(material string) []string {
	canonical := Normalize(material)
	forms, ok := materialSynonyms[canonical]
	if !ok {
		return nil
	}
	return append([]string{canonical}, forms...)
}
