package matching

import "strings"

// garmentKeywords: tipos de peça que indicam consumo de tecido genérico no
// fallback por categoria. Já normalizados.
var garmentKeywords = []string{
	"blusa", "camisa", "camiseta", "vestido", "saia", "calca", "short",
	"bermuda", "jaqueta", "casaco", "uniforme", "avental", "conjunto",
}

// fabricHints: termos que sugerem tecido/pano genérico no nome de um item.
var fabricHints = []string{"tecido", "malha", "pano", "algodao", "tricoline"}

// HasGarmentKeyword indica se o nome do produto contém alguma palavra de tipo
// de peça de vestuário.
func HasGarmentKeyword(name string) bool {
	n := Normalize(name)
	for _, kw := range garmentKeywords {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// LooksLikeFabric indica se o nome de um item de estoque sugere tecido genérico.
func LooksLikeFabric(itemName string) bool {
	n := Normalize(itemName)
	for _, hint := range fabricHints {
		if strings.Contains(n, hint) {
			return true
		}
	}
	return false
}
