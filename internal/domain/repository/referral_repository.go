package repository

import "github.com/atelieplus/atelie-api/internal/domain/entity"

// ReferralRepository define o porto de persistência do programa de indicações.
type ReferralRepository interface {
	CreateReferral(ref *entity.Referral) error
	GetReferral(id string) (*entity.Referral, error)
	// GetByReferred localiza a indicação pelo tenant indicado (nil se não há).
	GetByReferred(referredEmpresaID string) (*entity.Referral, error)
	ListByEmpresa(empresaID string, limit, offset int) ([]*entity.Referral, error)
	MarkConverted(ref *entity.Referral) error

	GetAccount(empresaID string) (*entity.ReferralAccount, error)
	UpsertAccount(acc *entity.ReferralAccount) error

	CreateReward(rw *entity.Reward) error
	ListRewards(empresaID string, limit, offset int) ([]*entity.Reward, error)
}
