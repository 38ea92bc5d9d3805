package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// SubscriptionRepository define o porto de persistência para Subscription.
type SubscriptionRepository interface {
	Create(sub *entity.Subscription) error
	GetByID(id string) (*entity.Subscription, error)
	// GetCurrentByEmpresa devolve a assinatura não cancelada mais recente (nil se não há).
	GetCurrentByEmpresa(empresaID string) (*entity.Subscription, error)
	Update(sub *entity.Subscription) error
}
