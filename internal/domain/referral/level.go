// Package referral contém a progressão de níveis do programa de indicações.
package referral

// Níveis do programa.
const (
	LevelBronze   = "bronze"
	LevelPrata    = "prata"
	LevelOuro     = "ouro"
	LevelDiamante = "diamante"
)

// PointsPerConversion: pontos creditados quando uma indicação vira assinatura paga.
const PointsPerConversion = 100

// thresholds em ordem decrescente; o primeiro limiar atingido define o nível.
var thresholds = []struct {
	min   int
	level string
}{
	{1000, LevelDiamante},
	{500, LevelOuro},
	{200, LevelPrata},
	{0, LevelBronze},
}

// LevelFor devolve o nível correspondente ao total de pontos acumulados.
func LevelFor(points int) string {
	for _, t := range thresholds {
		if points >= t.min {
			return t.level
		}
	}
	return LevelBronze
}

// NextThreshold devolve os pontos necessários para o próximo nível e o nome
// dele; (0, "") quando já está no topo.
func NextThreshold(points int) (int, string) {
	for i := len(thresholds) - 1; i >= 0; i-- {
		if points < thresholds[i].min {
			return thresholds[i].min, thresholds[i].level
		}
	}
	return 0, ""
}
