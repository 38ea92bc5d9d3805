// Package matching contém a heurística de casamento de nomes usada pela
// dedução automática de estoque: normalização de texto, extração de palavras-
// chave e pontuação de similaridade. Funções puras, sem I/O.
package matching

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks remove marcas combinantes após decomposição NFD ("ção" → "cao").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize devolve o texto em minúsculas, sem acentos e com espaços
// colapsados. Função total e idempotente: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	out, _, err := transform.String(stripMarks, s)
	if err != nil {
		// transform só falha com entrada inválida; segue com o original
		out = s
	}
	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}
