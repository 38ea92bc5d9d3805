package matching

import "strings"

// stopWords: artigos, conjunções e preposições comuns em nomes de produto.
var stopWords = map[string]struct{}{
	"com": {}, "para": {}, "por": {}, "sem": {}, "das": {}, "dos": {},
	"uma": {}, "uns": {}, "umas": {}, "nos": {}, "nas": {}, "pelo": {},
	"pela": {}, "sob": {}, "sobre": {}, "entre": {}, "ate": {}, "mas": {},
	"tipo": {},
}

// Keywords extrai os tokens relevantes de um texto: normaliza, separa por
// espaço e descarta tokens com até 2 caracteres, stop-words e tokens
// puramente numéricos. Entrada vazia devolve lista vazia.
func Keywords(s string) []string {
	fields := strings.Fields(Normalize(s))
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len([]rune(tok)) <= 2 {
			continue
		}
		if _, skip := stopWords[tok]; skip {
			continue
		}
		if numericOnly(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func numericOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
