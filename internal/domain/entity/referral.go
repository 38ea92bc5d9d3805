package entity

import "time"

// Status de indicação.
const (
	ReferralStatusPendente   = "pendente"   // indicado se cadastrou, ainda sem assinatura
	ReferralStatusConvertida = "convertida" // indicado assinou um plano pago
)

// Referral representa uma indicação feita por um ateliê.
type Referral struct {
	ID                string
	EmpresaID         string // quem indicou
	ReferredEmpresaID string // quem foi indicado
	Status            string
	Points            int // pontos creditados na conversão
	CreatedAt         time.Time
	ConvertedAt       *time.Time
}

// ReferralAccount acumula os pontos e o nível de um ateliê no programa.
type ReferralAccount struct {
	EmpresaID   string
	TotalPoints int
	Level       string // ver internal/domain/referral
	UpdatedAt   time.Time
}

// Reward é um benefício resgatável por pontos.
type Reward struct {
	ID          string
	EmpresaID   string
	Description string
	PointsCost  int
	RedeemedAt  time.Time
}
