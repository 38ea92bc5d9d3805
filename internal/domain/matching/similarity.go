package matching

import "strings"

// Similarity pontua a sobreposição de palavras-chave entre dois nomes livres.
// Cada token de um conjunto conta como casado quando algum token do outro o
// contém ou é contido por ele; a contenção nos dois sentidos é deliberadamente
// leniente (cobre singular/plural e variações de prefixo) ao custo de falsos
// positivos em substrings curtas. Score = casados / max(|A|,|B|), em [0,1].
// Simétrica: Similarity(a,b) == Similarity(b,a). Zero se qualquer lado não
// tiver palavras-chave extraíveis.
func Similarity(a, b string) float64 {
	ka := keywordSet(a)
	kb := keywordSet(b)
	if len(ka) == 0 || len(kb) == 0 {
		return 0
	}
	// Conta nos dois sentidos e usa o maior para garantir simetria quando os
	// conjuntos têm tamanhos diferentes.
	matches := matchedCount(ka, kb)
	if m := matchedCount(kb, ka); m > matches {
		matches = m
	}
	max := len(ka)
	if len(kb) > max {
		max = len(kb)
	}
	return float64(matches) / float64(max)
}

func keywordSet(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, tok := range Keywords(s) {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func matchedCount(from, against []string) int {
	n := 0
	for _, a := range from {
		for _, b := range against {
			if strings.Contains(a, b) || strings.Contains(b, a) {
				n++
				break
			}
		}
	}
	return n
}
