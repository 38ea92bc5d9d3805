package entity

import "time"

// Empresa representa um ateliê/tenant do sistema (multi-tenant).
// Todo registro de negócio carrega EmpresaID; o isolamento é aplicado nas queries.
type Empresa struct {
	ID           string
	Name         string
	TradeName    string // nome fantasia exibido em orçamentos e notas
	CNPJ         string // com ou sem pontuação
	Address      string
	Phone        string
	Email        string
	Status       string // active, suspended, inactive
	ReferralCode string // código de indicação próprio do ateliê
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Módulos SaaS disponíveis (devem coincidir com o CHECK da tabela empresa_modules).
const (
	ModuleOrders    = "orders"
	ModuleInventory = "inventory"
	ModuleFinance   = "finance"
	ModuleFiscal    = "fiscal"
	ModuleBilling   = "billing"
	ModuleReferral  = "referral"
)

// EmpresaModule representa a ativação de um módulo SaaS em um ateliê.
type EmpresaModule struct {
	ID          string
	EmpresaID   string
	ModuleName  string // ver constantes Module*
	IsActive    bool
	ActivatedAt time.Time
	ExpiresAt   *time.Time // nil = sem vencimento
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
