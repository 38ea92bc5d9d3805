package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Planos de assinatura disponíveis (tabela fixa; os IDs são os aceitos pelo
// provedor de cobrança externo).
const (
	PlanGratuito     = "gratuito"
	PlanProfissional = "profissional"
	PlanPremium      = "premium"
)

// Plan descreve um plano da tabela fixa.
type Plan struct {
	ID           string
	Name         string
	MonthlyPrice decimal.Decimal
	MaxOrders    int // 0 = ilimitado
	MaxUsers     int
	FiscalModule bool // emissão de NFe incluída
}

// Plans é a tabela fixa de planos, indexada por ID.
var Plans = map[string]Plan{
	PlanGratuito: {
		ID: PlanGratuito, Name: "Gratuito",
		MonthlyPrice: decimal.Zero,
		MaxOrders:    20, MaxUsers: 1,
	},
	PlanProfissional: {
		ID: PlanProfissional, Name: "Profissional",
		MonthlyPrice: decimal.NewFromInt(79),
		MaxOrders:    0, MaxUsers: 3, FiscalModule: true,
	},
	PlanPremium: {
		ID: PlanPremium, Name: "Premium",
		MonthlyPrice: decimal.NewFromInt(149),
		MaxOrders:    0, MaxUsers: 10, FiscalModule: true,
	},
}

// Status de assinatura.
const (
	SubStatusPendente     = "pendente" // aguardando pagamento do link
	SubStatusAtiva        = "ativa"
	SubStatusCancelada    = "cancelada"
	SubStatusInadimplente = "inadimplente"
)

// Subscription representa a assinatura do ateliê junto ao provedor de cobrança.
type Subscription struct {
	ID          string
	EmpresaID   string
	PlanID      string
	Status      string
	ProviderID  string // identificador no provedor externo
	PaymentLink string
	StartedAt   *time.Time
	CanceledAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
