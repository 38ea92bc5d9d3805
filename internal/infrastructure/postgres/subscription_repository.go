package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/atelieplus/atelie-api/internal/domain/entity"
	"github.com/atelieplus/atelie-api/internal/domain/repository"
)

var _ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)

// SubscriptionRepo implementação sobre PostgreSQL.
type SubscriptionRepo struct {
	q Querier
}

func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

const subscriptionColumns = `id, empresa_id, plan_id, status, provider_id, payment_link, started_at, canceled_at, created_at, updated_at`

func (r *SubscriptionRepo) Create(sub *entity.Subscription) error {
	query := `
		INSERT INTO subscriptions (` + subscriptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.EmpresaID, sub.PlanID, sub.Status, sub.ProviderID,
		sub.PaymentLink, sub.StartedAt, sub.CanceledAt, sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) GetByID(id string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetCurrentByEmpresa devolve a assinatura não cancelada mais recente.
func (r *SubscriptionRepo) GetCurrentByEmpresa(empresaID string) (*entity.Subscription, error) {
	query := `SELECT ` + subscriptionColumns + ` FROM subscriptions
		WHERE empresa_id = $1 AND status <> $2
		ORDER BY created_at DESC LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, empresaID, entity.SubStatusCancelada))
}

func (r *SubscriptionRepo) Update(sub *entity.Subscription) error {
	query := `
		UPDATE subscriptions SET
			plan_id = $2, status = $3, provider_id = $4, payment_link = $5,
			started_at = $6, canceled_at = $7, updated_at = now()
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		sub.ID, sub.PlanID, sub.Status, sub.ProviderID, sub.PaymentLink,
		sub.StartedAt, sub.CanceledAt,
	)
	if err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepo) scanOne(row pgx.Row) (*entity.Subscription, error) {
	var s entity.Subscription
	err := row.Scan(&s.ID, &s.EmpresaID, &s.PlanID, &s.Status, &s.ProviderID,
		&s.PaymentLink, &s.StartedAt, &s.CanceledAt, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}
	return &s, nil
}
