package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanResponse um plano da tabela fixa.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	MaxOrders    int             `json:"max_orders"`
	MaxUsers     int             `json:"max_users"`
	FiscalModule bool            `json:"fiscal_module"`
}

// CreateSubscriptionRequest entrada para assinar um plano.
type CreateSubscriptionRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// ChangePlanRequest entrada para trocar de plano.
type ChangePlanRequest struct {
	PlanID string `json:"plan_id" validate:"required"`
}

// SubscriptionResponse saída de uma assinatura.
type SubscriptionResponse struct {
	ID          string     `json:"id"`
	EmpresaID   string     `json:"empresa_id"`
	PlanID      string     `json:"plan_id"`
	Status      string     `json:"status"`
	PaymentLink string     `json:"payment_link,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
